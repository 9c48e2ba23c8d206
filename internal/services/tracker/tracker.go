// Package tracker keeps the round's used-word list in step with the game.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/nunnu1028/kkutu-korea-hack/internal/game"
	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
)

// Tracker records the words played in the current round
type Tracker struct {
	mu   sync.RWMutex
	used []string
	seen map[string]struct{}
}

// New creates an empty Tracker
func New() *Tracker {
	return &Tracker{seen: make(map[string]struct{})}
}

// Refresh reads the game once. A chain length below one starts a new round
// and clears the list before this tick's history entry is considered. An
// unreadable counter leaves the list alone but still records the entry.
func (t *Tracker) Refresh(ctx context.Context, gs game.GameState) error {
	chain, err := gs.ChainLength(ctx)
	switch {
	case errors.Is(err, model.ErrChainUnreadable):
	case err != nil:
		return fmt.Errorf("read chain length: %w", err)
	case chain < 1:
		t.Reset()
	}

	word, ok, err := gs.LastPlayedWord(ctx)
	if err != nil {
		return fmt.Errorf("read last played word: %w", err)
	}
	if !ok || word == "" {
		return nil
	}

	t.Add(word)
	return nil
}

// Add appends word unless it is already recorded, reporting whether it was
// added
func (t *Tracker) Add(word string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.seen[word]; ok {
		return false
	}
	t.seen[word] = struct{}{}
	t.used = append(t.used, word)
	return true
}

// Reset forgets every recorded word
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.used = nil
	t.seen = make(map[string]struct{})
}

// UsedWords returns the recorded words in the order they were played
func (t *Tracker) UsedWords() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.used)
}

// Contains reports whether word has been played this round
func (t *Tracker) Contains(word string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.seen[word]
	return ok
}

// Len returns the number of recorded words
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.used)
}
