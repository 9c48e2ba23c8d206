package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankUnsortedKeepsOrder(t *testing.T) {
	in := []string{"사과나무", "사자", "사"}
	got := Rank(in, Config{SortByLength: false, SortByEndWord: true, EndWords: []string{"자"}})
	assert.Equal(t, in, got)
}

func TestRankByLengthIsStable(t *testing.T) {
	got := Rank([]string{"사과나무", "사자", "사과즙", "사슴"}, Config{SortByLength: true})
	assert.Equal(t, []string{"사자", "사슴", "사과즙", "사과나무"}, got)
}

func TestRankCustomComparator(t *testing.T) {
	got := Rank([]string{"사자", "사과나무", "사과즙"}, Config{SortByLength: true, Compare: ByLengthDesc})
	assert.Equal(t, []string{"사과나무", "사과즙", "사자"}, got)
}

func TestRankEndWordsLast(t *testing.T) {
	cfg := Config{SortByLength: true, SortByEndWord: true, EndWords: []string{"자"}}
	got := Rank([]string{"사과", "사자", "사슴"}, cfg)
	assert.Equal(t, []string{"사과", "사슴", "사자"}, got)
}

func TestRankEndWordsLastRegardlessOfLength(t *testing.T) {
	cfg := Config{SortByLength: true, SortByEndWord: true, EndWords: []string{"윰", "릇"}}
	got := Rank([]string{"그릇", "사과나무", "요구르트", "쥬륨윰"}, cfg)
	assert.Equal(t, []string{"사과나무", "요구르트", "그릇", "쥬륨윰"}, got)
}

func TestRankIsPermutation(t *testing.T) {
	in := []string{"사과", "사자", "사슴", "그릇", "사과나무", "사자"}
	configs := []Config{
		{},
		{SortByLength: true},
		{SortByLength: true, SortByEndWord: true, EndWords: []string{"자", "릇"}},
		{SortByLength: true, SortByEndWord: true, Compare: ByLengthDesc},
		DefaultConfig(),
	}
	for _, cfg := range configs {
		assert.ElementsMatch(t, in, Rank(in, cfg))
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := []string{"사과나무", "사자"}
	_ = Rank(in, Config{SortByLength: true, SortByEndWord: true, EndWords: []string{"무"}})
	assert.Equal(t, []string{"사과나무", "사자"}, in)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.IsEndWord("그릇"))
	assert.False(t, cfg.IsEndWord("사과"))
	assert.Empty(t, Rank(nil, cfg))
}
