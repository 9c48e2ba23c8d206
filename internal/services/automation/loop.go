// Package automation drives word selection from live game observations.
//
// A Loop moves through uninitialized, initialized, running and stopped
// states. While running it refreshes the used-word list on a fixed cadence
// and, on every turn start, ranks the candidates for the displayed fragment
// and either shows them or types one into the game.
package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/nunnu1028/kkutu-korea-hack/internal/dependencies/clock"
	"github.com/nunnu1028/kkutu-korea-hack/internal/dependencies/random"
	"github.com/nunnu1028/kkutu-korea-hack/internal/game"
	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/corpus"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/ranking"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/selector"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/tracker"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/typing"
)

// Status is a point-in-time view of a Loop
type Status struct {
	State        model.LoopState  `json:"state"`
	RunID        string           `json:"run_id,omitempty"`
	Mode         model.OutputMode `json:"mode"`
	CorpusSize   int              `json:"corpus_size"`
	UsedWords    []string         `json:"used_words"`
	TurnsHandled int64            `json:"turns_handled"`
	TurnsDropped int64            `json:"turns_dropped"`
}

// Loop is the automation controller
type Loop struct {
	corpus  *corpus.Service
	game    game.Collaborators
	tracker *tracker.Tracker
	clock   clock.Clock
	random  random.Random
	opts    Options
	logger  *slog.Logger

	mu          sync.Mutex
	state       model.LoopState
	runID       string
	sub         game.Subscription
	cancel      context.CancelFunc
	refreshDone chan struct{}

	inFlight atomic.Bool
	handlers sync.WaitGroup
	handled  atomic.Int64
	dropped  atomic.Int64
}

// New creates a Loop in the uninitialized state
func New(
	corpus *corpus.Service,
	collaborators game.Collaborators,
	clock clock.Clock,
	random random.Random,
	opts Options,
	logger *slog.Logger,
) (*Loop, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Loop{
		corpus:  corpus,
		game:    collaborators,
		tracker: tracker.New(),
		clock:   clock,
		random:  random,
		opts:    opts,
		logger:  logger.With(slog.String("component", "automation")),
		state:   model.LoopStateUninitialized,
	}, nil
}

// Init loads the corpus. It may be repeated while not running to reload it.
// The download happens outside the lock, so State and Status stay
// responsive; a Run that wins the race keeps the corpus it started with.
func (l *Loop) Init(ctx context.Context) error {
	if l.State() == model.LoopStateRunning {
		return model.ErrAlreadyRunning
	}

	words, err := l.corpus.Fetch(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == model.LoopStateRunning {
		return model.ErrAlreadyRunning
	}
	l.corpus.LoadWords(words)
	l.state = model.LoopStateInitialized
	l.logger.Info("loop initialized", slog.Int("corpus_size", l.corpus.WordCount()))
	return nil
}

// Run subscribes to turn starts and begins refreshing used words. A running
// Loop is stopped first. ctx only scopes the subscription call; the run lasts
// until Stop.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.state {
	case model.LoopStateUninitialized:
		return model.ErrNotInitialized
	case model.LoopStateRunning:
		l.stopLocked()
	}

	runID := uuid.NewString()
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	logger := l.logger.With(slog.String("run_id", runID))

	sub, err := l.game.Signal.Subscribe(runCtx, func() { l.onTurnStart(runCtx, logger) })
	if err != nil {
		cancel()
		return fmt.Errorf("subscribe to turn start: %w", err)
	}

	ticker := l.clock.NewTicker(l.opts.RefreshInterval)
	done := make(chan struct{})
	go l.refreshLoop(runCtx, ticker, done, logger)

	l.runID = runID
	l.sub = sub
	l.cancel = cancel
	l.refreshDone = done
	l.state = model.LoopStateRunning

	logger.Info("loop running",
		slog.String("mode", string(l.opts.Mode)),
		slog.Duration("refresh_interval", l.opts.RefreshInterval),
	)
	return nil
}

// Stop cancels the turn subscription and the refresh timer. A turn already
// being handled still completes; use Wait to block on it.
func (l *Loop) Stop() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.state {
	case model.LoopStateUninitialized:
		return model.ErrNotInitialized
	case model.LoopStateRunning:
		l.stopLocked()
		return nil
	default:
		return model.ErrNotRunning
	}
}

func (l *Loop) stopLocked() {
	l.sub.Unsubscribe()
	l.cancel()
	<-l.refreshDone

	l.sub = nil
	l.cancel = nil
	l.refreshDone = nil
	l.state = model.LoopStateStopped

	l.logger.Info("loop stopped", slog.String("run_id", l.runID))
}

// Wait blocks until every turn handler started so far has finished
func (l *Loop) Wait() {
	l.handlers.Wait()
}

// Suggest ranks the candidates for fragment against the current used words
func (l *Loop) Suggest(fragment string) ([]string, error) {
	if !l.corpus.IsLoaded() {
		return nil, model.ErrNotInitialized
	}
	return l.candidates(model.Fragment(fragment)), nil
}

// ResetUsedWords forgets the words recorded for the current round
func (l *Loop) ResetUsedWords() error {
	if l.State() == model.LoopStateUninitialized {
		return model.ErrNotInitialized
	}
	l.tracker.Reset()
	return nil
}

// State returns the current lifecycle state
func (l *Loop) State() model.LoopState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Status returns a snapshot of the Loop
func (l *Loop) Status() Status {
	l.mu.Lock()
	state, runID := l.state, l.runID
	l.mu.Unlock()

	if state != model.LoopStateRunning {
		runID = ""
	}
	return Status{
		State:        state,
		RunID:        runID,
		Mode:         l.opts.Mode,
		CorpusSize:   l.corpus.WordCount(),
		UsedWords:    l.tracker.UsedWords(),
		TurnsHandled: l.handled.Load(),
		TurnsDropped: l.dropped.Load(),
	}
}

func (l *Loop) candidates(fragment model.Fragment) []string {
	matches := selector.Select(l.corpus.Words(), l.tracker.UsedWords(), fragment)
	return ranking.Rank(matches, l.opts.Ranking)
}

func (l *Loop) refreshLoop(ctx context.Context, ticker clock.Ticker, done chan<- struct{}, logger *slog.Logger) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if err := l.tracker.Refresh(ctx, l.game.State); err != nil && ctx.Err() == nil {
				logger.Warn("used word refresh failed", slog.String("error", err.Error()))
			}
		}
	}
}

// onTurnStart runs on the signal's goroutine and must not block. Only one
// turn is handled at a time; signals arriving meanwhile are dropped.
func (l *Loop) onTurnStart(runCtx context.Context, logger *slog.Logger) {
	if !l.inFlight.CompareAndSwap(false, true) {
		l.dropped.Add(1)
		logger.Info("turn signal dropped, previous turn still in progress")
		return
	}

	l.handlers.Add(1)
	go func() {
		defer l.handlers.Done()
		defer l.inFlight.Store(false)

		// Stop does not abort a turn in progress
		ctx := context.WithoutCancel(runCtx)
		if err := l.handleTurn(ctx, logger); err != nil {
			logger.Warn("turn handling failed", slog.String("error", err.Error()))
			return
		}
		l.handled.Add(1)
	}()
}

func (l *Loop) handleTurn(ctx context.Context, logger *slog.Logger) error {
	raw, err := l.game.State.RequiredFragment(ctx)
	if err != nil {
		return fmt.Errorf("read required fragment: %w", err)
	}

	ranked := l.candidates(model.Fragment(raw))
	logger.Debug("turn started",
		slog.String("fragment", raw),
		slog.Int("candidates", len(ranked)),
	)

	if l.opts.Mode == model.OutputModeInput {
		return l.typeWord(ctx, raw, ranked, logger)
	}
	return l.display(ranked)
}

func (l *Loop) display(ranked []string) error {
	var errs []error
	for start := 0; start < len(ranked); start += l.opts.BatchSize {
		end := min(start+l.opts.BatchSize, len(ranked))
		if err := l.game.Lines.WriteLines(ranked[start:end]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (l *Loop) typeWord(ctx context.Context, fragment string, ranked []string, logger *slog.Logger) error {
	if len(ranked) == 0 {
		return fmt.Errorf("%w for %q", model.ErrNoCandidates, fragment)
	}

	word := l.pick(ranked)
	delay, err := typing.Delay(word, l.opts.TypingSpeed)
	if err != nil {
		return err
	}

	<-l.clock.After(delay)

	if err := l.game.Input.SetValue(ctx, word); err != nil {
		return fmt.Errorf("set answer %q: %w", word, err)
	}
	logger.Info("answer entered",
		slog.String("fragment", fragment),
		slog.String("word", word),
		slog.Duration("delay", delay),
	)
	return nil
}

func (l *Loop) pick(ranked []string) string {
	switch l.opts.Emit {
	case model.EmitFirst:
		return ranked[0]
	case model.EmitRandom:
		return ranked[l.random.Intn(len(ranked))]
	default:
		return ranked[len(ranked)-1]
	}
}
