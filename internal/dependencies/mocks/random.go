package mocks

import (
	"sync"

	"github.com/nunnu1028/kkutu-korea-hack/internal/dependencies/random"
)

// MockRandom returns queued values from Intn, then 0
type MockRandom struct {
	mu    sync.Mutex
	queue []int

	// Calls records the n of every Intn call
	Calls []int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn pops the next queued value. Values are returned as queued even when
// outside [0, n), so tests see exactly what they asked for.
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Calls = append(r.Calls, n)
	if len(r.queue) == 0 {
		return 0
	}
	v := r.queue[0]
	r.queue = r.queue[1:]
	return v
}

// QueueIntn appends values for later Intn calls
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, values...)
}

// Reset drops queued values and recorded calls
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = nil
	r.Calls = nil
}
