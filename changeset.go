package passwordvalidator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mrdotb/password-validator/pkg/validator"
)

// Metadata keys attached to every error recorded on a Record.
const (
	MetaValidator = "validator"
	MetaErrorType = "error_type"
)

// Record is the minimal surface this package needs from a form or changeset
// implementation: read a field's current value and attach an error to it. The
// engine never depends on the host framework's types.
type Record interface {
	Value(field string) string
	AddError(field, message string, meta map[string]string)
}

// Validate runs the configured rules against the named field of rec. Each
// finding is attached to the record with the producing rule under
// MetaValidator and the symbolic kind under MetaErrorType; on success the
// record is left untouched. The returned error is non-nil only for
// configuration misuse.
func Validate(rec Record, field string, cfg validator.Config) error {
	err := validator.Run(rec.Value(field), cfg)
	if err == nil {
		return nil
	}

	violations := validator.ExtractViolations(err)
	if violations == nil {
		return err
	}

	for _, v := range violations {
		rec.AddError(field, v.Message, map[string]string{
			MetaValidator: v.Rule,
			MetaErrorType: string(v.Kind),
		})
	}
	return nil
}

// FieldError is one recorded error with its metadata.
type FieldError struct {
	Message string
	Meta    map[string]string
}

// Changeset is a ready-made Record implementation for callers without a form
// framework of their own: field values plus ordered per-field error lists.
type Changeset struct {
	values map[string]string
	errors map[string][]FieldError
}

// NewChangeset creates a changeset over the given field values.
func NewChangeset(values map[string]string) *Changeset {
	return &Changeset{
		values: values,
		errors: make(map[string][]FieldError),
	}
}

func (c *Changeset) Value(field string) string {
	return c.values[field]
}

func (c *Changeset) AddError(field, message string, meta map[string]string) {
	c.errors[field] = append(c.errors[field], FieldError{Message: message, Meta: meta})
}

// Valid reports whether no errors have been recorded.
func (c *Changeset) Valid() bool {
	return len(c.errors) == 0
}

// FieldErrors returns the recorded errors for a field in insertion order.
func (c *Changeset) FieldErrors(field string) []FieldError {
	return c.errors[field]
}

// Fields returns the fields with at least one recorded error, sorted.
func (c *Changeset) Fields() []string {
	fields := make([]string, 0, len(c.errors))
	for field := range c.errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Error implements the error interface, summarizing the first recorded error
// per field.
func (c *Changeset) Error() string {
	if c.Valid() {
		return "Validation failed"
	}

	var parts []string
	for _, field := range c.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, c.errors[field][0].Message))
	}
	return "validation error: " + strings.Join(parts, ", ")
}
