package validator

import (
	"errors"
	"strings"
)

// Kind is a symbolic, closed identifier for a violation so callers can branch
// on the failure reason without parsing message text.
type Kind string

const (
	KindTooShort Kind = "too_short"
	KindTooLong  Kind = "too_long"

	// KindInvalid is assigned to findings from message-only custom rules.
	KindInvalid Kind = "invalid"
)

// KindTooFew returns the kind reported when a class has fewer characters than
// its configured minimum, e.g. "too_few_numbers".
func KindTooFew(class CharClass) Kind {
	return Kind("too_few_" + string(class))
}

// KindTooMany returns the kind reported when a class has more characters than
// its configured maximum, e.g. "too_many_special".
func KindTooMany(class CharClass) Kind {
	return Kind("too_many_" + string(class))
}

// Violation is a single validation finding. It is created by a rule during a
// run and immutable afterwards.
type Violation struct {
	Rule    string
	Kind    Kind
	Message string
}

// Violations is an ordered collection of findings that satisfies the error
// interface. Order is rule-registration order, then within-rule order; a
// non-nil Violations returned from a run is never empty.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, v := range vs {
		parts = append(parts, v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Messages returns the plain message strings, dropping rule and kind
// metadata. This is the simple output mode.
func (vs Violations) Messages() []string {
	messages := make([]string, len(vs))
	for i, v := range vs {
		messages[i] = v.Message
	}
	return messages
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

func (vs Violations) Has(kind Kind) bool {
	for _, v := range vs {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// ByRule returns the findings produced by the named rule, preserving order.
func (vs Violations) ByRule(name string) Violations {
	var matched Violations
	for _, v := range vs {
		if v.Rule == name {
			matched = append(matched, v)
		}
	}
	return matched
}

// ExtractViolations extracts a Violations list from an error. It returns nil
// for nil errors and for errors that are not validation findings, such as
// configuration errors.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var violations Violations
	if errors.As(err, &violations) {
		return violations
	}

	return nil
}

func IsViolations(err error) bool {
	if err == nil {
		return false
	}

	var violations Violations
	return errors.As(err, &violations)
}

// Rule is a single pluggable check. Implementations must be pure: no shared
// mutable state, no I/O, the same input and configuration always produce the
// same result.
type Rule interface {
	// Name identifies the rule in violation metadata.
	Name() string

	// Validate checks input against cfg. Violations are data findings; a
	// non-nil error signals caller misuse and aborts the whole run.
	Validate(input string, cfg Config) (Violations, error)
}

// RuleFunc adapts a function to the Rule interface for custom rules that
// produce structured findings.
type RuleFunc struct {
	RuleName string
	Fn       func(input string, cfg Config) (Violations, error)
}

func (r RuleFunc) Name() string {
	return r.RuleName
}

func (r RuleFunc) Validate(input string, cfg Config) (Violations, error) {
	return r.Fn(input, cfg)
}

// MessageRule adapts a plain-message check to the Rule contract. Each
// returned message becomes a Violation with KindInvalid, so message-only and
// structured custom rules aggregate uniformly.
func MessageRule(name string, fn func(input string) []string) Rule {
	return RuleFunc{
		RuleName: name,
		Fn: func(input string, _ Config) (Violations, error) {
			var violations Violations
			for _, message := range fn(input) {
				violations = append(violations, Violation{
					Rule:    name,
					Kind:    KindInvalid,
					Message: message,
				})
			}
			return violations, nil
		},
	}
}

// Validator holds an ordered list of rules. It is immutable after
// construction and safe for concurrent use.
type Validator struct {
	rules []Rule
}

// New builds a Validator running the given additional rules before the
// built-ins (length, then character set), so a custom rule can enforce
// domain-specific policy ahead of the generic checks.
func New(additional ...Rule) *Validator {
	rules := make([]Rule, 0, len(additional)+2)
	rules = append(rules, additional...)
	rules = append(rules, LengthRule{}, CharacterSetRule{})
	return &Validator{rules: rules}
}

// Run validates input against every registered rule and collects all
// findings in one pass. It returns nil when every rule passes, the combined
// Violations otherwise. The configuration itself is checked first; a
// ConfigError aborts the run before any rule executes.
func (v *Validator) Run(input string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var all Violations
	for _, rule := range v.rules {
		violations, err := rule.Validate(input, cfg)
		if err != nil {
			return err
		}
		all = append(all, violations...)
	}

	if all.IsEmpty() {
		return nil
	}

	return all
}

// Run validates input with the built-in rules plus cfg.AdditionalRules.
func Run(input string, cfg Config) error {
	return New(cfg.AdditionalRules...).Run(input, cfg)
}
