package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/nunnu1028/kkutu-korea-hack/internal/dependencies/clock"
	"github.com/nunnu1028/kkutu-korea-hack/internal/dependencies/random"
	"github.com/nunnu1028/kkutu-korea-hack/internal/game"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/automation"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/corpus"
	"github.com/nunnu1028/kkutu-korea-hack/internal/storage"
	"github.com/nunnu1028/kkutu-korea-hack/internal/storage/memory"
	redisstorage "github.com/nunnu1028/kkutu-korea-hack/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Corpus *corpus.Service

	logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// CorpusSource is where words are fetched from (optional)
	// If nil, the published word list is downloaded
	CorpusSource corpus.Source
	// CacheCorpus serves the corpus from storage when present and fills
	// storage after a fetch
	CacheCorpus bool
	// RandomSeed makes random word emission repeatable when non-zero
	RandomSeed uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	source := cfg.CorpusSource
	if source == nil {
		source = corpus.NewHTTPSource("")
	}
	if cfg.CacheCorpus {
		source = corpus.CachedSource{Cache: store, Upstream: source, Logger: logger}
	}

	var rnd random.Random = random.New()
	if cfg.RandomSeed != 0 {
		rnd = random.NewSeeded(cfg.RandomSeed)
	}

	return newWithDependencies(store, clock.New(), rnd, source, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, source corpus.Source, logger *slog.Logger) *App {
	return &App{
		Storage: store,
		Clock:   clk,
		Random:  rnd,
		Corpus:  corpus.New(source, logger),
		logger:  logger,
	}
}

// NewLoop creates an automation loop over the app's corpus
func (a *App) NewLoop(collaborators game.Collaborators, opts automation.Options) (*automation.Loop, error) {
	return automation.New(a.Corpus, collaborators, a.Clock, a.Random, opts, a.logger)
}

// Close releases storage connections
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
