// Package validator implements a composable rule engine for checking strings
// against configurable length and character-class constraints.
//
// Rules are small, pure values implementing the Rule interface. A Validator
// holds an ordered registry of rules (caller-supplied rules first, then the
// built-in length and character-set rules) and runs every rule in one pass,
// collecting all findings instead of stopping at the first:
//
//	cfg := validator.Config{
//	    Length:       &validator.Bound{Min: 8, Max: 64},
//	    CharacterSet: map[validator.CharClass]validator.Bound{
//	        validator.Numbers: validator.AtLeast(1),
//	        validator.Special: validator.Between(0, 0),
//	    },
//	}
//	if err := validator.Run(password, cfg); err != nil {
//	    for _, v := range validator.ExtractViolations(err) {
//	        // v.Rule, v.Kind, v.Message
//	    }
//	}
//
// # Error Handling
//
// Two error classes never mix. Violations are data findings: every configured
// rule runs, every failure is reported, and the result is returned as an
// error value that callers inspect with ExtractViolations or IsViolations.
// ConfigError is a programmer-misuse signal (inverted bounds, malformed
// options): it fails the whole run immediately, before any rule executes, and
// is detected with IsConfigError.
//
// # Unicode Policy
//
// Inputs are NFC-normalized and segmented into grapheme clusters, so a
// multi-byte or multi-rune character counts as one. Each cluster is
// classified by its leading rune using Unicode categories: cased letters by
// case, decimal digits as numbers, everything else as special.
//
// # Ordering
//
// Violation order is deterministic: rule-registration order first, then
// within-rule order. The character-set rule reports classes in the fixed
// canonical order lower_case, upper_case, numbers, special.
//
// The engine is synchronous and stateless; a Validator is safe for concurrent
// use once constructed.
package validator
