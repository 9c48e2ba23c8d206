package mocks

import (
	"context"
	"sync"

	"github.com/nunnu1028/kkutu-korea-hack/internal/game"
)

// MockGameState is a scriptable GameState for testing
type MockGameState struct {
	mu sync.Mutex

	Chain      int
	LastPlayed string
	HasLast    bool
	Fragment   string

	ChainErr    error
	LastErr     error
	FragmentErr error

	FragmentCalls int
}

var _ game.GameState = (*MockGameState)(nil)

// NewMockGameState creates a MockGameState with an empty history
func NewMockGameState() *MockGameState {
	return &MockGameState{}
}

// SetChain sets the chain length returned by ChainLength
func (g *MockGameState) SetChain(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Chain = n
}

// SetLastPlayed sets the most recent history entry
func (g *MockGameState) SetLastPlayed(word string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.LastPlayed = word
	g.HasLast = true
}

// ClearHistory removes the most recent history entry
func (g *MockGameState) ClearHistory() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.LastPlayed = ""
	g.HasLast = false
}

// SetFragment sets the required fragment
func (g *MockGameState) SetFragment(f string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Fragment = f
}

// SetErrors sets the errors returned by each accessor
func (g *MockGameState) SetErrors(chain, last, fragment error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ChainErr = chain
	g.LastErr = last
	g.FragmentErr = fragment
}

func (g *MockGameState) ChainLength(ctx context.Context) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ChainErr != nil {
		return 0, g.ChainErr
	}
	return g.Chain, nil
}

func (g *MockGameState) LastPlayedWord(ctx context.Context) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.LastErr != nil {
		return "", false, g.LastErr
	}
	return g.LastPlayed, g.HasLast, nil
}

func (g *MockGameState) RequiredFragment(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.FragmentCalls++
	if g.FragmentErr != nil {
		return "", g.FragmentErr
	}
	return g.Fragment, nil
}

// MockTurnSignal lets tests fire turn-start events by hand
type MockTurnSignal struct {
	mu           sync.Mutex
	callback     func()
	subscribed   bool
	Subscribes   int
	Unsubscribes int
	SubscribeErr error
}

var _ game.TurnSignal = (*MockTurnSignal)(nil)

// NewMockTurnSignal creates a MockTurnSignal
func NewMockTurnSignal() *MockTurnSignal {
	return &MockTurnSignal{}
}

func (s *MockTurnSignal) Subscribe(ctx context.Context, onTurnStart func()) (game.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SubscribeErr != nil {
		return nil, s.SubscribeErr
	}
	s.callback = onTurnStart
	s.subscribed = true
	s.Subscribes++
	return &mockSubscription{signal: s}, nil
}

// Fire invokes the subscribed callback, if any, and reports whether it ran
func (s *MockTurnSignal) Fire() bool {
	s.mu.Lock()
	cb := s.callback
	active := s.subscribed
	s.mu.Unlock()

	if !active || cb == nil {
		return false
	}
	cb()
	return true
}

// Subscribed reports whether a subscription is active
func (s *MockTurnSignal) Subscribed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscribed
}

type mockSubscription struct {
	once   sync.Once
	signal *MockTurnSignal
}

func (m *mockSubscription) Unsubscribe() {
	m.once.Do(func() {
		m.signal.mu.Lock()
		defer m.signal.mu.Unlock()
		m.signal.subscribed = false
		m.signal.callback = nil
		m.signal.Unsubscribes++
	})
}

// MockInput records values set on the answer input
type MockInput struct {
	mu     sync.Mutex
	values []string
	Err    error
}

var _ game.InputEmitter = (*MockInput)(nil)

// NewMockInput creates a MockInput
func NewMockInput() *MockInput {
	return &MockInput{}
}

func (i *MockInput) SetValue(ctx context.Context, word string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.Err != nil {
		return i.Err
	}
	i.values = append(i.values, word)
	return nil
}

// Values returns every value set so far
func (i *MockInput) Values() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]string(nil), i.values...)
}

// MockLines records displayed batches
type MockLines struct {
	mu      sync.Mutex
	batches [][]string
}

var _ game.LineWriter = (*MockLines)(nil)

// NewMockLines creates a MockLines
func NewMockLines() *MockLines {
	return &MockLines{}
}

func (l *MockLines) WriteLines(words []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.batches = append(l.batches, append([]string(nil), words...))
	return nil
}

// Batches returns every batch written so far
func (l *MockLines) Batches() [][]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([][]string, len(l.batches))
	copy(out, l.batches)
	return out
}
