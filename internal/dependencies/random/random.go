package random

import (
	"math/rand/v2"
	"sync"
)

// Random picks indexes and can be replaced in tests
type Random interface {
	// Intn returns an int in [0, n)
	Intn(n int) int
}

// Source draws from math/rand/v2
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source seeded from the runtime
func New() *Source {
	return &Source{}
}

// NewSeeded returns a Source that repeats the same sequence for a seed
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns 0 when n <= 0
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.rng == nil {
		return rand.IntN(n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
