package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrdotb/password-validator/pkg/validator"
)

func TestViolations_Error(t *testing.T) {
	t.Run("returns default message when no violations", func(t *testing.T) {
		var vs validator.Violations
		assert.Equal(t, "validation failed", vs.Error())
	})

	t.Run("joins messages in order", func(t *testing.T) {
		vs := validator.Violations{
			{Rule: "length", Kind: validator.KindTooShort, Message: "too short"},
			{Rule: "character_set", Kind: validator.KindTooFew(validator.Numbers), Message: "not enough numbers"},
		}
		assert.Equal(t, "validation failed: too short; not enough numbers", vs.Error())
	})
}

func TestViolations_Messages(t *testing.T) {
	t.Run("drops rule and kind metadata", func(t *testing.T) {
		vs := validator.Violations{
			{Rule: "length", Kind: validator.KindTooShort, Message: "too short"},
			{Rule: "custom", Kind: validator.KindInvalid, Message: "nope"},
		}
		assert.Equal(t, []string{"too short", "nope"}, vs.Messages())
	})

	t.Run("returns empty slice for no violations", func(t *testing.T) {
		var vs validator.Violations
		assert.Empty(t, vs.Messages())
	})
}

func TestViolations_Has(t *testing.T) {
	vs := validator.Violations{
		{Rule: "length", Kind: validator.KindTooShort, Message: "too short"},
	}

	assert.True(t, vs.Has(validator.KindTooShort))
	assert.False(t, vs.Has(validator.KindTooLong))
}

func TestViolations_ByRule(t *testing.T) {
	vs := validator.Violations{
		{Rule: "length", Kind: validator.KindTooShort, Message: "too short"},
		{Rule: "character_set", Kind: validator.KindTooFew(validator.Numbers), Message: "not enough numbers"},
		{Rule: "character_set", Kind: validator.KindTooMany(validator.Special), Message: "too many special"},
	}

	t.Run("returns matching violations in order", func(t *testing.T) {
		matched := vs.ByRule("character_set")
		require.Len(t, matched, 2)
		assert.Equal(t, validator.KindTooFew(validator.Numbers), matched[0].Kind)
		assert.Equal(t, validator.KindTooMany(validator.Special), matched[1].Kind)
	})

	t.Run("returns empty for unknown rule", func(t *testing.T) {
		assert.Empty(t, vs.ByRule("nope"))
	})
}

func TestExtractViolations(t *testing.T) {
	t.Run("extracts violations from error", func(t *testing.T) {
		var err error = validator.Violations{
			{Rule: "length", Kind: validator.KindTooShort, Message: "too short"},
		}

		vs := validator.ExtractViolations(err)
		require.NotNil(t, vs)
		assert.True(t, vs.Has(validator.KindTooShort))
	})

	t.Run("returns nil for regular error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractViolations(errors.New("boom")))
	})

	t.Run("returns nil for config error", func(t *testing.T) {
		cfg := validator.Config{Length: &validator.Bound{Min: 9, Max: 6}}
		err := validator.Run("whatever", cfg)
		require.Error(t, err)
		assert.Nil(t, validator.ExtractViolations(err))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractViolations(nil))
	})
}

func TestIsViolations(t *testing.T) {
	t.Run("true for violations", func(t *testing.T) {
		var err error = validator.Violations{{Rule: "custom", Kind: validator.KindInvalid, Message: "nope"}}
		assert.True(t, validator.IsViolations(err))
	})

	t.Run("false for regular error", func(t *testing.T) {
		assert.False(t, validator.IsViolations(errors.New("boom")))
	})

	t.Run("false for nil", func(t *testing.T) {
		assert.False(t, validator.IsViolations(nil))
	})
}

func TestIsConfigError(t *testing.T) {
	t.Run("true for config error", func(t *testing.T) {
		cfg := validator.Config{Length: &validator.Bound{Min: 9, Max: 6}}
		err := validator.Run("whatever", cfg)
		assert.True(t, validator.IsConfigError(err))
	})

	t.Run("false for violations", func(t *testing.T) {
		cfg := validator.Config{Length: &validator.Bound{Min: 100, Max: validator.Unbounded}}
		err := validator.Run("short", cfg)
		require.Error(t, err)
		assert.False(t, validator.IsConfigError(err))
	})

	t.Run("false for nil", func(t *testing.T) {
		assert.False(t, validator.IsConfigError(nil))
	})
}

func TestRun(t *testing.T) {
	t.Run("empty configuration always passes", func(t *testing.T) {
		for _, input := range []string{"", "a", "anything at all", "🙂"} {
			assert.NoError(t, validator.Run(input, validator.Config{}))
		}
	})

	t.Run("collects violations from every rule in registration order", func(t *testing.T) {
		cfg := validator.Config{
			Length: &validator.Bound{Min: 20, Max: validator.Unbounded},
			CharacterSet: map[validator.CharClass]validator.Bound{
				validator.Numbers: validator.AtLeast(1),
			},
		}

		err := validator.Run("abcdef", cfg)
		require.Error(t, err)

		vs := validator.ExtractViolations(err)
		require.Len(t, vs, 2)
		assert.Equal(t, "length", vs[0].Rule)
		assert.Equal(t, "character_set", vs[1].Rule)
	})

	t.Run("is idempotent", func(t *testing.T) {
		cfg := validator.Config{
			Length: &validator.Bound{Min: 10, Max: validator.Unbounded},
			CharacterSet: map[validator.CharClass]validator.Bound{
				validator.UpperCase: validator.AtLeast(1),
			},
		}

		first := validator.Run("abc", cfg)
		second := validator.Run("abc", cfg)
		require.Error(t, first)
		require.Error(t, second)
		assert.Equal(t, validator.ExtractViolations(first), validator.ExtractViolations(second))
	})

	t.Run("additional rules run before built-ins", func(t *testing.T) {
		custom := validator.MessageRule("custom", func(string) []string {
			return []string{"Invalid password"}
		})
		cfg := validator.Config{
			Length:          &validator.Bound{Min: 100, Max: validator.Unbounded},
			AdditionalRules: []validator.Rule{custom},
		}

		err := validator.Run("short", cfg)
		require.Error(t, err)

		vs := validator.ExtractViolations(err)
		require.Len(t, vs, 2)
		assert.Equal(t, "custom", vs[0].Rule)
		assert.Equal(t, "length", vs[1].Rule)
	})

	t.Run("config error aborts before any rule runs", func(t *testing.T) {
		ran := false
		spy := validator.RuleFunc{
			RuleName: "spy",
			Fn: func(string, validator.Config) (validator.Violations, error) {
				ran = true
				return nil, nil
			},
		}
		cfg := validator.Config{
			Length:          &validator.Bound{Min: 9, Max: 6},
			AdditionalRules: []validator.Rule{spy},
		}

		err := validator.Run("whatever", cfg)
		require.Error(t, err)
		assert.True(t, validator.IsConfigError(err))
		assert.False(t, ran)
	})

	t.Run("rule error propagates immediately", func(t *testing.T) {
		boom := errors.New("boom")
		failing := validator.RuleFunc{
			RuleName: "failing",
			Fn: func(string, validator.Config) (validator.Violations, error) {
				return nil, boom
			},
		}
		cfg := validator.Config{AdditionalRules: []validator.Rule{failing}}

		err := validator.Run("whatever", cfg)
		assert.ErrorIs(t, err, boom)
	})
}

func TestMessageRule(t *testing.T) {
	t.Run("normalizes plain messages into violations", func(t *testing.T) {
		rule := validator.MessageRule("custom", func(string) []string {
			return []string{"first", "second"}
		})

		vs, err := rule.Validate("anything", validator.Config{})
		require.NoError(t, err)
		require.Len(t, vs, 2)
		assert.Equal(t, validator.Violation{Rule: "custom", Kind: validator.KindInvalid, Message: "first"}, vs[0])
		assert.Equal(t, validator.Violation{Rule: "custom", Kind: validator.KindInvalid, Message: "second"}, vs[1])
	})

	t.Run("returns no violations when the check passes", func(t *testing.T) {
		rule := validator.MessageRule("custom", func(string) []string { return nil })

		vs, err := rule.Validate("anything", validator.Config{})
		require.NoError(t, err)
		assert.Empty(t, vs)
	})
}
