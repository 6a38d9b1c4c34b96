package acronym

import (
	"errors"
	"fmt"
	"strconv"
)

// Mode selects how a fragment is taken from each word
type Mode string

const (
	ModeBasic    Mode = "basic"
	ModeSyllable Mode = "syllable"
)

// Limit caps how many words are used. The zero Limit is unbounded.
type Limit struct {
	n     int
	isSet bool
}

// Unbounded is the Limit that keeps every word
var Unbounded = Limit{}

// MaxWords returns a Limit keeping at most n words
func MaxWords(n int) Limit {
	return Limit{n: n, isSet: true}
}

// Get returns the cap and whether one is set
func (l Limit) Get() (int, bool) {
	return l.n, l.isSet
}

func (l Limit) String() string {
	if !l.isSet {
		return "unbounded"
	}
	return strconv.Itoa(l.n)
}

// apply truncates words to the limit. Negative caps keep nothing.
func (l Limit) apply(words []string) []string {
	if !l.isSet {
		return words
	}
	n := max(l.n, 0)
	if n < len(words) {
		return words[:n]
	}
	return words
}

// Options configures acronym generation. It is passed by value and never
// mutated by the engine.
type Options struct {
	IncludeArticles bool
	MinWordLength   int
	MaxWords        Limit
	ForceUppercase  bool
	Mode            Mode
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		IncludeArticles: false,
		MinWordLength:   2,
		MaxWords:        Unbounded,
		ForceUppercase:  true,
		Mode:            ModeBasic,
	}
}

var (
	ErrMinWordLength = errors.New("minimum word length must be at least 1")
	ErrMaxWords      = errors.New("maximum word count must be at least 1")
	ErrUnknownMode   = errors.New("unknown mode")
)

// Validate reports values the command surface should reject. The builders
// themselves accept any Options.
func (o Options) Validate() error {
	if o.MinWordLength < 1 {
		return fmt.Errorf("%w, got %d", ErrMinWordLength, o.MinWordLength)
	}
	if n, ok := o.MaxWords.Get(); ok && n < 1 {
		return fmt.Errorf("%w, got %d", ErrMaxWords, n)
	}
	switch o.Mode {
	case ModeBasic, ModeSyllable, "":
	default:
		return fmt.Errorf("%w: %s (use basic or syllable)", ErrUnknownMode, o.Mode)
	}
	return nil
}
