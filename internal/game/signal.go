package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nunnu1028/kkutu-korea-hack/internal/dependencies/clock"
)

// DefaultPollInterval is how often PollingSignal checks the page
const DefaultPollInterval = 100 * time.Millisecond

// VisibilityCheck reports whether the turn input is currently shown
type VisibilityCheck func(ctx context.Context) (bool, error)

// PollingSignal turns a visibility check into turn-start events. A turn
// starts when the check goes from hidden to visible.
type PollingSignal struct {
	check    VisibilityCheck
	interval time.Duration
	clock    clock.Clock
	logger   *slog.Logger
}

// NewPollingSignal creates a PollingSignal. A non-positive interval uses
// DefaultPollInterval.
func NewPollingSignal(check VisibilityCheck, interval time.Duration, clk clock.Clock, logger *slog.Logger) *PollingSignal {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &PollingSignal{
		check:    check,
		interval: interval,
		clock:    clk,
		logger:   logger.With(slog.String("component", "turn-signal")),
	}
}

var _ TurnSignal = (*PollingSignal)(nil)

// Subscribe starts polling until the subscription is cancelled or ctx ends.
// The first check only records the current visibility, so a turn already in
// progress when subscribing is not reported.
func (s *PollingSignal) Subscribe(ctx context.Context, onTurnStart func()) (Subscription, error) {
	visible, err := s.check(ctx)
	if err != nil {
		return nil, err
	}

	pollCtx, cancel := context.WithCancel(ctx)
	sub := &pollingSubscription{cancel: cancel, done: make(chan struct{})}
	ticker := s.clock.NewTicker(s.interval)

	go func() {
		defer close(sub.done)
		defer ticker.Stop()

		for {
			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C():
				now, err := s.check(pollCtx)
				if err != nil {
					if pollCtx.Err() == nil {
						s.logger.Debug("turn check failed", slog.String("error", err.Error()))
					}
					continue
				}
				if now && !visible {
					onTurnStart()
				}
				visible = now
			}
		}
	}()

	return sub, nil
}

type pollingSubscription struct {
	once   sync.Once
	cancel context.CancelFunc
	done   chan struct{}
}

// Unsubscribe stops polling and waits for the poller to exit
func (p *pollingSubscription) Unsubscribe() {
	p.once.Do(p.cancel)
	<-p.done
}
