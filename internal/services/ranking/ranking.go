// Package ranking orders candidate words by strategic value.
package ranking

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Comparator orders two words: negative when a ranks before b
type Comparator func(a, b string) int

// ByLength ranks shorter words first
func ByLength(a, b string) int {
	return utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
}

// ByLengthDesc ranks longer words first
func ByLengthDesc(a, b string) int {
	return ByLength(b, a)
}

// Config selects a ranking strategy
type Config struct {
	// Compare orders words within a group. Nil means ByLength.
	Compare Comparator

	// SortByLength enables sorting. When false, candidates keep their order.
	SortByLength bool

	// SortByEndWord moves words ending in one of EndWords to the back
	SortByEndWord bool

	// EndWords are the endings that hand the opponent an easy reply
	EndWords []string
}

// DefaultEndWords are the endings avoided out of the box
var DefaultEndWords = []string{"윰", "릇", "늣", "륨"}

// DefaultConfig sorts by length and pushes DefaultEndWords last
func DefaultConfig() Config {
	return Config{
		Compare:       ByLength,
		SortByLength:  true,
		SortByEndWord: true,
		EndWords:      slices.Clone(DefaultEndWords),
	}
}

// IsEndWord reports whether word ends with one of the configured endings
func (c Config) IsEndWord(word string) bool {
	for _, end := range c.EndWords {
		if strings.HasSuffix(word, end) {
			return true
		}
	}
	return false
}

// Rank returns a reordered copy of candidates. Sorting is stable, so ties
// keep candidate order.
func Rank(candidates []string, cfg Config) []string {
	out := slices.Clone(candidates)
	if !cfg.SortByLength {
		return out
	}

	cmp := cfg.Compare
	if cmp == nil {
		cmp = ByLength
	}

	if !cfg.SortByEndWord {
		slices.SortStableFunc(out, cmp)
		return out
	}

	var safe, end []string
	for _, w := range candidates {
		if cfg.IsEndWord(w) {
			end = append(end, w)
		} else {
			safe = append(safe, w)
		}
	}
	slices.SortStableFunc(safe, cmp)
	slices.SortStableFunc(end, cmp)

	out = out[:0]
	out = append(out, safe...)
	return append(out, end...)
}
