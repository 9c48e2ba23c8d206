package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
	"github.com/nunnu1028/kkutu-korea-hack/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// The corpus is kept as a LIST so duplicates and order survive.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetCorpusWords(ctx context.Context) ([]string, error) {
	key := corpusKey()

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrCorpusNotLoaded
	}

	return s.client.LRange(ctx, key, 0, -1).Result()
}

func (s *Storage) SaveCorpusWords(ctx context.Context, words []string) error {
	key := corpusKey()

	// Replace the list atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		values := make([]interface{}, len(words))
		for i, w := range words {
			values[i] = w
		}
		pipe.RPush(ctx, key, values...)
		if s.cfg.CorpusTTL > 0 {
			pipe.Expire(ctx, key, s.cfg.CorpusTTL)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) CorpusSize(ctx context.Context) (int, error) {
	n, err := s.client.LLen(ctx, corpusKey()).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
