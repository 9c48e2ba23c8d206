package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time

	// After waits for the duration to elapse and then sends the current time
	After(d time.Duration) <-chan time.Time

	// NewTicker returns a Ticker that fires every d
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks at a fixed interval until stopped
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// After delegates to time.After
func (c *RealClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// NewTicker wraps a time.Ticker
func (c *RealClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(d)}
}

type realTicker struct {
	ticker *time.Ticker
}

func (t *realTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *realTicker) Stop() {
	t.ticker.Stop()
}
