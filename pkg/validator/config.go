package validator

import "sort"

// Config selects and parameterizes the rules to run. A nil Length and an
// empty CharacterSet each skip the corresponding rule entirely.
// AdditionalRules run before the built-ins in the order given.
type Config struct {
	Length          *Bound
	CharacterSet    map[CharClass]Bound
	AdditionalRules []Rule
}

// Validate checks the configuration itself. A violated invariant is caller
// misuse, reported as a ConfigError before any rule runs; it is never part of
// the validation findings.
func (c Config) Validate() error {
	if c.Length != nil {
		if c.Length.Min < 0 || (!c.Length.unbounded() && c.Length.Max < 0) {
			return configErrorf("Length bounds cannot be negative")
		}
		if !c.Length.unbounded() && c.Length.Min > c.Length.Max {
			return &ConfigError{Reason: "Min length cannot be greater than the max"}
		}
	}

	for _, class := range sortedClasses(c.CharacterSet) {
		if !knownClass(class) {
			return configErrorf("Unknown character class %q", string(class))
		}
		bound := c.CharacterSet[class]
		if bound.Min < 0 || (!bound.unbounded() && bound.Max < 0) {
			return configErrorf("Bounds cannot be negative for %s", class)
		}
		if !bound.unbounded() && bound.Min > bound.Max {
			return configErrorf("Min cannot be greater than the max for %s", class)
		}
	}

	return nil
}

func knownClass(class CharClass) bool {
	switch class {
	case LowerCase, UpperCase, Numbers, Special:
		return true
	}
	return false
}

// sortedClasses keeps config checking deterministic when several entries are
// invalid at once.
func sortedClasses(set map[CharClass]Bound) []CharClass {
	classes := make([]CharClass, 0, len(set))
	for class := range set {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	return classes
}
