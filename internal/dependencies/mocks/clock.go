package mocks

import (
	"sync"
	"time"

	"github.com/nunnu1028/kkutu-korea-hack/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing.
// Timers and tickers only fire when the clock is advanced.
type MockClock struct {
	mu      sync.Mutex
	now     time.Time
	waiters []*mockWaiter
}

type mockWaiter struct {
	at      time.Time
	period  time.Duration // zero for one-shot timers
	ch      chan time.Time
	stopped bool
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// After returns a channel that receives once the clock has been advanced by d
func (c *MockClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := &mockWaiter{at: c.now.Add(d), ch: make(chan time.Time, 1)}
	if d <= 0 {
		w.ch <- c.now
		return w.ch
	}
	c.waiters = append(c.waiters, w)
	return w.ch
}

// NewTicker returns a ticker driven by Advance
func (c *MockClock) NewTicker(d time.Duration) clock.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := &mockWaiter{at: c.now.Add(d), period: d, ch: make(chan time.Time, 1)}
	c.waiters = append(c.waiters, w)
	return &mockTicker{clock: c, waiter: w}
}

// Advance moves the clock forward by the given duration, firing any timers
// and tickers that become due. Like time.Ticker, a tick is dropped if the
// previous one has not been received.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)

	pending := c.waiters[:0]
	for _, w := range c.waiters {
		if w.stopped {
			continue
		}
		for !w.at.After(c.now) {
			select {
			case w.ch <- w.at:
			default:
			}
			if w.period == 0 {
				w.stopped = true
				break
			}
			w.at = w.at.Add(w.period)
		}
		if !w.stopped {
			pending = append(pending, w)
		}
	}
	c.waiters = pending
}

// Set sets the clock to the given time without firing timers
func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Waiters returns the number of one-shot timers that have not fired yet
func (c *MockClock) Waiters() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, w := range c.waiters {
		if !w.stopped && w.period == 0 {
			n++
		}
	}
	return n
}

// Tickers returns the number of active tickers
func (c *MockClock) Tickers() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, w := range c.waiters {
		if !w.stopped && w.period > 0 {
			n++
		}
	}
	return n
}

type mockTicker struct {
	clock  *MockClock
	waiter *mockWaiter
}

func (t *mockTicker) C() <-chan time.Time {
	return t.waiter.ch
}

func (t *mockTicker) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.waiter.stopped = true
}
