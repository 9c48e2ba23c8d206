package memory

import (
	"context"
	"sync"

	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
	"github.com/nunnu1028/kkutu-korea-hack/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu    sync.RWMutex
	words []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetCorpusWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.words == nil {
		return nil, model.ErrCorpusNotLoaded
	}
	result := make([]string, len(s.words))
	copy(result, s.words)
	return result, nil
}

func (s *Storage) SaveCorpusWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = make([]string, len(words))
	copy(s.words, words)
	return nil
}

func (s *Storage) CorpusSize(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words), nil
}
