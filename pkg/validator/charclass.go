package validator

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// CharClass identifies the character class a single character belongs to.
// The four classes are mutually exclusive and exhaustive: every character
// falls into exactly one of them.
type CharClass string

const (
	LowerCase CharClass = "lower_case"
	UpperCase CharClass = "upper_case"
	Numbers   CharClass = "numbers"
	Special   CharClass = "special"
)

// canonicalClasses fixes the reporting order for character-set violations so
// the output is reproducible regardless of configuration shape.
var canonicalClasses = [...]CharClass{LowerCase, UpperCase, Numbers, Special}

// Classify assigns a grapheme cluster to exactly one class based on its
// leading rune, using Unicode categories: cased letters by case, decimal
// digits as numbers, and everything else (caseless letters, marks,
// punctuation, symbols, whitespace) as special.
func Classify(cluster string) CharClass {
	r, _ := utf8.DecodeRuneInString(cluster)
	switch {
	case unicode.IsLower(r):
		return LowerCase
	case unicode.IsUpper(r):
		return UpperCase
	case unicode.IsDigit(r):
		return Numbers
	default:
		return Special
	}
}

// Length counts logical characters rather than bytes: the input is
// NFC-normalized and segmented into grapheme clusters, so a multi-byte or
// multi-rune character counts once.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(norm.NFC.String(s))
}

func countClasses(s string) map[CharClass]int {
	counts := make(map[CharClass]int, len(canonicalClasses))
	graphemes := uniseg.NewGraphemes(norm.NFC.String(s))
	for graphemes.Next() {
		counts[Classify(graphemes.Str())]++
	}
	return counts
}
