package acronym

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CleanPhrase strips every rune that is not a letter, number, mark,
// underscore or whitespace, then collapses whitespace runs to a single
// space and trims both ends.
func CleanPhrase(phrase string) string {
	stripped := strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, phrase)

	// Composed form so "e" + U+0301 counts as one character downstream.
	// Runs after stripping: removing a rune can bring a base letter and
	// its mark together.
	composed := norm.NFC.String(stripped)

	return strings.Join(strings.Fields(composed), " ")
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}
