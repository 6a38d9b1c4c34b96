// Package acronym turns phrases into acronyms, either from the first
// letter of each word or from a short syllable-like prefix of each word.
//
// Every function in this package is pure and safe for concurrent use.
package acronym

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CreateBasic concatenates the first character of each selected word.
// An empty result means no acronym could be formed.
func CreateBasic(phrase string, opts Options) string {
	return assemble(SelectWords(phrase, opts), opts, firstChar)
}

// CreateSyllable concatenates a short prefix of each selected word,
// chosen by SyllableFragment.
func CreateSyllable(phrase string, opts Options) string {
	return assemble(SelectWords(phrase, opts), opts, SyllableFragment)
}

// Create dispatches on opts.Mode. An empty Mode means ModeBasic.
func Create(phrase string, opts Options) string {
	if opts.Mode == ModeSyllable {
		return CreateSyllable(phrase, opts)
	}
	return CreateBasic(phrase, opts)
}

func assemble(words []string, opts Options, fragment func(string) string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(fragment(w))
	}

	acronym := b.String()
	if opts.ForceUppercase {
		acronym = cases.Upper(language.Und).String(acronym)
	}
	return acronym
}

func firstChar(word string) string {
	for _, r := range word {
		return string(r)
	}
	return ""
}

// SyllableFragment picks the prefix of word used in syllable mode:
//
//	1-2 characters: the whole word
//	3-4 characters: the first 2
//	5+ characters:  the first 3 if the first or second character is a
//	                vowel, otherwise the first 2
func SyllableFragment(word string) string {
	runes := []rune(word)
	switch {
	case len(runes) <= 2:
		return word
	case len(runes) <= 4:
		return string(runes[:2])
	case isVowel(runes[0]), isVowel(runes[1]):
		return string(runes[:3])
	default:
		return string(runes[:2])
	}
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouAEIOU", r)
}
