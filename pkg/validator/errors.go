package validator

import (
	"errors"
	"fmt"
)

// ConfigError signals caller misuse: inverted or negative bounds, malformed
// option values, a non-list additional_validators entry. A ConfigError always
// aborts the whole run before any finding is produced and is never part of a
// Violations list.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
