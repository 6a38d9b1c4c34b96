package acronym

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dominikbraun/graph"
	"golang.org/x/text/cases"
)

// stopWords are skipped unless Options.IncludeArticles is set
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "up": {}, "about": {}, "into": {}, "through": {}, "during": {},
}

// IsStopWord reports whether word is a stop word, ignoring case
func IsStopWord(word string) bool {
	_, ok := stopWords[cases.Fold().String(word)]
	return ok
}

// StopWords returns the stop words, sorted
func StopWords() []string {
	words := make([]string, 0, len(stopWords))
	for w := range stopWords {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

const (
	stageStopWords = "stop-words"
	stageMinLength = "min-length"
	stageMaxWords  = "max-words"
)

// stage is one step applied to the token list. Truncating stages run only
// when building an acronym, never during plain extraction.
type stage struct {
	name     string
	after    []string
	truncate bool
	apply    func(words []string, opts Options) []string
}

var stages = []stage{
	{name: stageStopWords, apply: dropStopWords},
	{name: stageMinLength, apply: dropShortWords},
	{
		name:     stageMaxWords,
		after:    []string{stageStopWords, stageMinLength},
		truncate: true,
		apply:    func(words []string, opts Options) []string { return opts.MaxWords.apply(words) },
	},
}

// plan is stages in execution order
var plan = mustPlan(stages)

func stageHash(s stage) string {
	return s.name
}

// buildPlan orders stages so each runs after the stages it names in
// after. Ties are broken by name so the order is deterministic.
func buildPlan(stages []stage) ([]stage, error) {
	g := graph.New(stageHash, graph.Directed(), graph.PreventCycles())

	for _, s := range stages {
		if err := g.AddVertex(s); err != nil {
			return nil, fmt.Errorf("failed to add stage %s: %w", s.name, err)
		}
	}

	for _, s := range stages {
		for _, dep := range s.after {
			if err := g.AddEdge(dep, s.name); err != nil {
				return nil, fmt.Errorf("failed to order stage %s after %s: %w", s.name, dep, err)
			}
		}
	}

	order, err := graph.StableTopologicalSort(g, func(a, b string) bool { return a < b })
	if err != nil {
		return nil, fmt.Errorf("failed to sort stages: %w", err)
	}

	ordered := make([]stage, 0, len(order))
	truncated := ""
	for _, name := range order {
		s, err := g.Vertex(name)
		if err != nil {
			return nil, fmt.Errorf("failed to get stage %s: %w", name, err)
		}
		// Filters must see the whole list, so nothing may follow a truncation
		if truncated != "" && !s.truncate {
			return nil, fmt.Errorf("stage %s must not run after truncating stage %s", s.name, truncated)
		}
		if s.truncate {
			truncated = s.name
		}
		ordered = append(ordered, s)
	}
	return ordered, nil
}

func mustPlan(stages []stage) []stage {
	p, err := buildPlan(stages)
	if err != nil {
		panic(err)
	}
	return p
}

// ExtractWords returns the words of phrase that survive stop-word and
// length filtering, in phrase order. Options.MaxWords is not applied.
func ExtractWords(phrase string, opts Options) []string {
	return runPlan(phrase, opts, false)
}

// SelectWords returns the words an acronym is built from: ExtractWords
// truncated to Options.MaxWords.
func SelectWords(phrase string, opts Options) []string {
	return runPlan(phrase, opts, true)
}

func runPlan(phrase string, opts Options, truncate bool) []string {
	if strings.TrimSpace(phrase) == "" {
		return []string{}
	}

	words := strings.Fields(CleanPhrase(phrase))
	for _, s := range plan {
		if s.truncate && !truncate {
			continue
		}
		words = s.apply(words, opts)
	}
	return words
}

func dropStopWords(words []string, opts Options) []string {
	if opts.IncludeArticles {
		return words
	}
	fold := cases.Fold()
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := stopWords[fold.String(w)]; ok {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}

func dropShortWords(words []string, opts Options) []string {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) < opts.MinWordLength {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}
