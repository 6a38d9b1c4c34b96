package acronym

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

const phraseRunes = "aeiouAEIOUbcdkmnrstxyzBCDKMNRSTXYZéÉǘ019_ \t\n,.;:-!?'\"()"

func phraseGen() *rapid.Generator[string] {
	return rapid.StringOf(rapid.RuneFrom([]rune(phraseRunes)))
}

// wordPhraseGen builds phrases out of stop words and plain words
func wordPhraseGen() *rapid.Generator[string] {
	word := rapid.OneOf(
		rapid.SampledFrom(StopWords()),
		rapid.StringMatching(`[A-Za-z0-9]{1,9}`),
	)
	return rapid.Custom(func(t *rapid.T) string {
		return strings.Join(rapid.SliceOf(word).Draw(t, "words"), " ")
	})
}

func optionsGen() *rapid.Generator[Options] {
	return rapid.Custom(func(t *rapid.T) Options {
		opts := Options{
			IncludeArticles: rapid.Bool().Draw(t, "include_articles"),
			MinWordLength:   rapid.IntRange(1, 6).Draw(t, "min_word_length"),
			ForceUppercase:  rapid.Bool().Draw(t, "force_uppercase"),
			Mode:            rapid.SampledFrom([]Mode{ModeBasic, ModeSyllable}).Draw(t, "mode"),
		}
		if rapid.Bool().Draw(t, "capped") {
			opts.MaxWords = MaxWords(rapid.IntRange(1, 5).Draw(t, "max_words"))
		}
		return opts
	})
}

func TestCleanPhrase_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		once := CleanPhrase(phraseGen().Draw(t, "phrase"))
		assert.Equal(t, once, CleanPhrase(once))
	})
}

func TestCreateBasic_OneCharacterPerWord(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		phrase := phraseGen().Draw(t, "phrase")
		opts := optionsGen().Draw(t, "opts")
		opts.MaxWords = Unbounded
		opts.ForceUppercase = false

		words := ExtractWords(phrase, opts)
		assert.Equal(t, len(words), utf8.RuneCountInString(CreateBasic(phrase, opts)))
	})
}

func TestCreate_EmptyPhrase(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		opts := optionsGen().Draw(t, "opts")
		blank := rapid.StringOf(rapid.RuneFrom([]rune(" \t\n\r"))).Draw(t, "blank")

		assert.Empty(t, CreateBasic("", opts))
		assert.Empty(t, CreateSyllable("", opts))
		assert.Empty(t, Create(blank, opts))
	})
}

func TestExtractWords_StopWordsIgnoreCase(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		phrase := wordPhraseGen().Draw(t, "phrase")
		opts := optionsGen().Draw(t, "opts")
		opts.IncludeArticles = false

		lower := ExtractWords(strings.ToLower(phrase), opts)
		upper := ExtractWords(strings.ToUpper(phrase), opts)

		assert.Len(t, upper, len(lower))
		for i := range lower {
			assert.Equal(t, lower[i], strings.ToLower(upper[i]))
		}
		for _, w := range lower {
			assert.False(t, IsStopWord(w), "stop word %q survived", w)
		}
	})
}

func TestSelectWords_TruncatesFilteredList(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		phrase := wordPhraseGen().Draw(t, "phrase")
		opts := optionsGen().Draw(t, "opts")
		n := rapid.IntRange(1, 8).Draw(t, "n")
		opts.MaxWords = MaxWords(n)

		filtered := ExtractWords(phrase, opts)
		want := filtered[:min(n, len(filtered))]
		assert.Equal(t, want, SelectWords(phrase, opts))
	})
}

func TestExtractWords_MinLengthMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		phrase := phraseGen().Draw(t, "phrase")
		opts := optionsGen().Draw(t, "opts")
		shorter := rapid.IntRange(1, 6).Draw(t, "shorter")
		longer := rapid.IntRange(shorter, 8).Draw(t, "longer")

		opts.MinWordLength = shorter
		loose := ExtractWords(phrase, opts)
		opts.MinWordLength = longer
		strict := ExtractWords(phrase, opts)

		assert.LessOrEqual(t, len(strict), len(loose))
	})
}

func TestSyllableFragment_IsPrefix(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[A-Za-zé]{1,12}`).Draw(t, "word")
		frag := SyllableFragment(word)

		assert.True(t, strings.HasPrefix(word, frag))
		n := utf8.RuneCountInString(frag)
		assert.GreaterOrEqual(t, n, min(utf8.RuneCountInString(word), 2))
		assert.LessOrEqual(t, n, 3)
	})
}
