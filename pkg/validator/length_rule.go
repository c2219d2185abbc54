package validator

import "fmt"

// LengthRule enforces the configured length bound on the input, counted in
// grapheme clusters. It is skipped entirely when no length bound is
// configured and reports at most one violation, since min <= max makes the
// two failures mutually exclusive.
type LengthRule struct{}

func (LengthRule) Name() string {
	return "length"
}

func (LengthRule) Validate(input string, cfg Config) (Violations, error) {
	if cfg.Length == nil {
		return nil, nil
	}

	bound := *cfg.Length
	count := Length(input)

	switch {
	case count < bound.Min:
		return Violations{{
			Rule:    "length",
			Kind:    KindTooShort,
			Message: fmt.Sprintf("String is too short. Only %d characters instead of %d", count, bound.Min),
		}}, nil
	case !bound.unbounded() && count > bound.Max:
		return Violations{{
			Rule:    "length",
			Kind:    KindTooLong,
			Message: fmt.Sprintf("String is too long. %d but maximum is %d", count, bound.Max),
		}}, nil
	}

	return nil, nil
}
