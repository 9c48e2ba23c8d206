package redis

import "fmt"

// Key prefix for all cached data
const keyPrefix = "kkutu"

// corpusKey returns the Redis key for the corpus LIST
func corpusKey() string {
	return fmt.Sprintf("%s:corpus", keyPrefix)
}
