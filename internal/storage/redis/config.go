package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// CorpusTTL expires the cached corpus. Zero keeps it forever.
	CorpusTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     4,
		MinIdleConns: 1,
		CorpusTTL:    7 * 24 * time.Hour,
	}
}
