package policy

import (
	"errors"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mrdotb/password-validator/pkg/validator"
)

var defaultEnvLoaded sync.Once

// Parse decodes a YAML policy document into a validator configuration.
func Parse(data []byte) (validator.Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return validator.Config{}, errors.Join(ErrParsePolicy, err)
	}
	return validator.ParseConfig(raw)
}

// LoadFile reads and decodes a YAML policy file.
func LoadFile(path string) (validator.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return validator.Config{}, errors.Join(ErrReadPolicy, err)
	}
	return Parse(data)
}

// envPolicy maps PASSWORD_* variables onto rule bounds. The -1 defaults mean
// "unset", so absent variables skip the corresponding rule or bound end.
type envPolicy struct {
	MinLength  int `env:"PASSWORD_MIN_LENGTH" envDefault:"-1"`
	MaxLength  int `env:"PASSWORD_MAX_LENGTH" envDefault:"-1"`
	MinLower   int `env:"PASSWORD_MIN_LOWER_CASE" envDefault:"-1"`
	MaxLower   int `env:"PASSWORD_MAX_LOWER_CASE" envDefault:"-1"`
	MinUpper   int `env:"PASSWORD_MIN_UPPER_CASE" envDefault:"-1"`
	MaxUpper   int `env:"PASSWORD_MAX_UPPER_CASE" envDefault:"-1"`
	MinNumbers int `env:"PASSWORD_MIN_NUMBERS" envDefault:"-1"`
	MaxNumbers int `env:"PASSWORD_MAX_NUMBERS" envDefault:"-1"`
	MinSpecial int `env:"PASSWORD_MIN_SPECIAL" envDefault:"-1"`
	MaxSpecial int `env:"PASSWORD_MAX_SPECIAL" envDefault:"-1"`
}

// FromEnv builds a validator configuration from PASSWORD_* environment
// variables. A .env file is loaded once if present; missing files are fine.
func FromEnv() (validator.Config, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var p envPolicy
	if err := env.Parse(&p); err != nil {
		return validator.Config{}, errors.Join(ErrParseEnv, err)
	}

	var cfg validator.Config
	if bound, ok := envBound(p.MinLength, p.MaxLength); ok {
		cfg.Length = &bound
	}

	set := make(map[validator.CharClass]validator.Bound)
	classBounds := []struct {
		class    validator.CharClass
		min, max int
	}{
		{validator.LowerCase, p.MinLower, p.MaxLower},
		{validator.UpperCase, p.MinUpper, p.MaxUpper},
		{validator.Numbers, p.MinNumbers, p.MaxNumbers},
		{validator.Special, p.MinSpecial, p.MaxSpecial},
	}
	for _, cb := range classBounds {
		if bound, ok := envBound(cb.min, cb.max); ok {
			set[cb.class] = bound
		}
	}
	if len(set) > 0 {
		cfg.CharacterSet = set
	}

	if err := cfg.Validate(); err != nil {
		return validator.Config{}, err
	}

	return cfg, nil
}

func envBound(min, max int) (validator.Bound, bool) {
	if min < 0 && max < 0 {
		return validator.Bound{}, false
	}

	bound := validator.AtLeast(0)
	if min >= 0 {
		bound.Min = min
	}
	if max >= 0 {
		bound.Max = max
	}
	return bound, true
}
