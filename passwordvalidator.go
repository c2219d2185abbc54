package passwordvalidator

import "github.com/mrdotb/password-validator/pkg/validator"

// ValidatePassword runs the configured rules against password. It returns nil
// when every rule passes, a validator.Violations error carrying every finding
// otherwise, or a validator.ConfigError when the configuration itself is
// invalid. Plain-string callers can flatten the findings with
// validator.ExtractViolations(err).Messages().
func ValidatePassword(password string, cfg validator.Config) error {
	return validator.Run(password, cfg)
}
