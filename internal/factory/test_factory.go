package factory

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/nunnu1028/kkutu-korea-hack/internal/dependencies/mocks"
	"github.com/nunnu1028/kkutu-korea-hack/internal/game"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/automation"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/corpus"
	"github.com/nunnu1028/kkutu-korea-hack/internal/storage/memory"
)

// TestCorpus is the word list served by NewTestApp
var TestCorpus = []string{
	"사과", "사자", "사슴", "개미", "사", "과자", "과일", "자두", "두부", "부자",
	"일기", "기차", "차표", "그릇", "릇", "쥬륨", "사과나무", "자동차",
}

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockState  *mocks.MockGameState
	MockSignal *mocks.MockTurnSignal
	MockInput  *mocks.MockInput
	MockLines  *mocks.MockLines

	// Upstream counts corpus fetches that missed the cache
	Upstream *CountingSource
}

// CountingSource serves a fixed word list and counts loads
type CountingSource struct {
	Words []string
	Loads int
}

func (c *CountingSource) Load(ctx context.Context) ([]string, error) {
	c.Loads++
	return append([]string(nil), c.Words...), nil
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The corpus is cached in memory storage in front of TestCorpus.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	upstream := &CountingSource{Words: TestCorpus}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	source := corpus.CachedSource{Cache: store, Upstream: upstream, Logger: logger}
	app := newWithDependencies(store, mockClock, mockRandom, source, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockState:  mocks.NewMockGameState(),
		MockSignal: mocks.NewMockTurnSignal(),
		MockInput:  mocks.NewMockInput(),
		MockLines:  mocks.NewMockLines(),
		Upstream:   upstream,
	}
}

// Collaborators returns the mock game collaborators
func (t *TestApp) Collaborators() game.Collaborators {
	return game.Collaborators{
		State:  t.MockState,
		Signal: t.MockSignal,
		Input:  t.MockInput,
		Lines:  t.MockLines,
	}
}

// NewTestLoop creates a loop over the mock collaborators
func (t *TestApp) NewTestLoop(opts automation.Options) (*automation.Loop, error) {
	return t.NewLoop(t.Collaborators(), opts)
}
