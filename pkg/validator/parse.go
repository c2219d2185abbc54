package validator

import "sort"

// unboundedToken is the spelling accepted for an explicit "no upper limit"
// maximum in dynamic configuration.
const unboundedToken = "unbounded"

// ParseConfig normalizes a dynamic configuration mapping, as decoded from a
// YAML document or assembled by hand, into a Config. Recognized top-level
// keys:
//
//   - "length": map with optional "min" and "max" ("max" may be "unbounded")
//   - "character_set": map of class name to a bare integer ("at least n") or
//     a {"min", "max"} map
//   - "additional_validators": list of Rule implementations
//
// Any other key, malformed value, or violated bound invariant is caller
// misuse and fails fast with a ConfigError.
func ParseConfig(raw map[string]any) (Config, error) {
	var cfg Config

	for _, key := range sortedKeys(raw) {
		value := raw[key]
		switch key {
		case "length":
			bound, err := parseLength(value)
			if err != nil {
				return Config{}, err
			}
			cfg.Length = &bound
		case "character_set":
			set, err := parseCharacterSet(value)
			if err != nil {
				return Config{}, err
			}
			cfg.CharacterSet = set
		case "additional_validators":
			rules, err := parseAdditionalValidators(value)
			if err != nil {
				return Config{}, err
			}
			cfg.AdditionalRules = rules
		default:
			return Config{}, configErrorf("Unknown configuration key %q", key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func parseLength(value any) (Bound, error) {
	options, ok := value.(map[string]any)
	if !ok {
		return Bound{}, configErrorf("Expected a map of length options, instead received %v", value)
	}

	bound := AtLeast(0)
	for _, key := range sortedKeys(options) {
		switch key {
		case "min":
			n, err := parseInt(options[key])
			if err != nil {
				return Bound{}, err
			}
			bound.Min = n
		case "max":
			max, err := parseMax(options[key])
			if err != nil {
				return Bound{}, err
			}
			bound.Max = max
		default:
			return Bound{}, configErrorf("Unknown length option %q", key)
		}
	}

	return bound, nil
}

func parseCharacterSet(value any) (map[CharClass]Bound, error) {
	options, ok := value.(map[string]any)
	if !ok {
		return nil, configErrorf("Expected a map of character set options, instead received %v", value)
	}

	set := make(map[CharClass]Bound, len(options))
	for _, key := range sortedKeys(options) {
		class := CharClass(key)
		if !knownClass(class) {
			return nil, configErrorf("Unknown character class %q", key)
		}
		bound, err := parseBound(options[key])
		if err != nil {
			return nil, err
		}
		set[class] = bound
	}

	return set, nil
}

// parseBound accepts either a bare integer n, shorthand for "at least n", or
// a {"min", "max"} map.
func parseBound(value any) (Bound, error) {
	if n, err := parseInt(value); err == nil {
		return AtLeast(n), nil
	}

	options, ok := value.(map[string]any)
	if !ok {
		return Bound{}, configErrorf("Expected an integer or a {min, max} map, instead received %v", value)
	}

	bound := AtLeast(0)
	for _, key := range sortedKeys(options) {
		switch key {
		case "min":
			n, err := parseInt(options[key])
			if err != nil {
				return Bound{}, err
			}
			bound.Min = n
		case "max":
			max, err := parseMax(options[key])
			if err != nil {
				return Bound{}, err
			}
			bound.Max = max
		default:
			return Bound{}, configErrorf("Unknown bound option %q", key)
		}
	}

	return bound, nil
}

func parseAdditionalValidators(value any) ([]Rule, error) {
	switch list := value.(type) {
	case []Rule:
		return list, nil
	case []any:
		rules := make([]Rule, 0, len(list))
		for _, item := range list {
			rule, ok := item.(Rule)
			if !ok {
				return nil, configErrorf("Expected a validator, instead received %v", item)
			}
			rules = append(rules, rule)
		}
		return rules, nil
	default:
		return nil, configErrorf("Expected a list of validators, instead received %v", value)
	}
}

func parseMax(value any) (int, error) {
	if token, ok := value.(string); ok && token == unboundedToken {
		return Unbounded, nil
	}
	return parseInt(value)
}

// parseInt accepts the integer representations produced by the common
// decoders: int from YAML, float64 from JSON.
func parseInt(value any) (int, error) {
	switch n := value.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, configErrorf("Expected an integer, instead received %v", value)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
