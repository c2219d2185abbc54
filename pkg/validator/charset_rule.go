package validator

import "fmt"

// CharacterSetRule classifies every character of the input into exactly one
// class and compares the per-class counts against the configured bounds.
// Classes without a configured bound are counted but never reported.
// Violations are emitted in canonical class order (lower_case, upper_case,
// numbers, special) so the output does not depend on map iteration order.
type CharacterSetRule struct{}

func (CharacterSetRule) Name() string {
	return "character_set"
}

func (CharacterSetRule) Validate(input string, cfg Config) (Violations, error) {
	if len(cfg.CharacterSet) == 0 {
		return nil, nil
	}

	counts := countClasses(input)

	var violations Violations
	for _, class := range canonicalClasses {
		bound, ok := cfg.CharacterSet[class]
		if !ok {
			continue
		}

		count := counts[class]
		switch {
		case count < bound.Min:
			violations = append(violations, Violation{
				Rule:    "character_set",
				Kind:    KindTooFew(class),
				Message: fmt.Sprintf("Not enough %s characters (only %d instead of at least %d)", class, count, bound.Min),
			})
		case !bound.unbounded() && count > bound.Max:
			violations = append(violations, Violation{
				Rule:    "character_set",
				Kind:    KindTooMany(class),
				Message: fmt.Sprintf("Too many %s (%d but maximum is %d)", class, count, bound.Max),
			})
		}
	}

	return violations, nil
}
