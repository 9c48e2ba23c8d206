package storage

import (
	"context"
)

// Storage defines the interface for corpus persistence
type Storage interface {
	// GetCorpusWords returns the saved corpus in its original order, or
	// model.ErrCorpusNotLoaded when nothing has been saved
	GetCorpusWords(ctx context.Context) ([]string, error)

	// SaveCorpusWords replaces the saved corpus
	SaveCorpusWords(ctx context.Context, words []string) error

	// CorpusSize returns the number of saved words, zero when none are saved
	CorpusSize(ctx context.Context) (int, error)
}
