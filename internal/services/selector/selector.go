// Package selector picks the corpus words that satisfy a turn's start
// requirement.
package selector

import (
	"strings"
	"unicode/utf8"

	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
)

// Select returns every corpus word that is unused, at least two characters
// long and starts with the fragment's prefix, in corpus order. An empty
// prefix matches every eligible word.
func Select(corpus []string, used []string, fragment model.Fragment) []string {
	prefix := fragment.Prefix()

	usedSet := make(map[string]struct{}, len(used))
	for _, w := range used {
		usedSet[w] = struct{}{}
	}

	var result []string
	for _, word := range corpus {
		if utf8.RuneCountInString(word) <= 1 {
			continue
		}
		if !strings.HasPrefix(word, prefix) {
			continue
		}
		if _, ok := usedSet[word]; ok {
			continue
		}
		result = append(result, word)
	}
	return result
}
