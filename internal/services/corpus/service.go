package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
)

// Source produces the candidate vocabulary
type Source interface {
	Load(ctx context.Context) ([]string, error)
}

// Service holds the loaded corpus. A snapshot is never mutated once loaded,
// and a reload swaps in a new one.
type Service struct {
	source Source
	logger *slog.Logger

	mu     sync.RWMutex
	words  []string
	loaded bool
}

// New creates a corpus Service backed by source
func New(source Source, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		logger: logger.With(slog.String("component", "corpus")),
	}
}

// Load fetches the corpus from the source, replacing any previous snapshot.
// Failures match model.ErrCorpusLoad.
func (s *Service) Load(ctx context.Context) error {
	words, err := s.Fetch(ctx)
	if err != nil {
		return err
	}
	s.LoadWords(words)
	s.logger.Info("corpus loaded", slog.Int("words", len(words)))
	return nil
}

// Fetch reads the source without installing the result. Failures match
// model.ErrCorpusLoad.
func (s *Service) Fetch(ctx context.Context) ([]string, error) {
	words, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrCorpusLoad, err)
	}
	return words, nil
}

// LoadWords installs words directly (useful for testing)
func (s *Service) LoadWords(words []string) {
	snapshot := make([]string, len(words))
	copy(snapshot, words)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = snapshot
	s.loaded = true
}

// Words returns a copy of the loaded corpus in source order
func (s *Service) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, len(s.words))
	copy(result, s.words)
	return result
}

// IsLoaded returns whether a corpus has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the corpus
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}
