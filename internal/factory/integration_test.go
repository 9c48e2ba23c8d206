package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/automation"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/ranking"
)

type IntegrationSuite struct {
	suite.Suite
	app  *TestApp
	ctx  context.Context
	loop *automation.Loop
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.loop = nil
}

func (s *IntegrationSuite) TearDownTest() {
	if s.loop == nil {
		return
	}
	if s.loop.State() == model.LoopStateRunning {
		s.Require().NoError(s.loop.Stop())
	}
	s.app.MockClock.Advance(time.Hour)
	s.loop.Wait()
}

func (s *IntegrationSuite) start(opts automation.Options) *automation.Loop {
	loop, err := s.app.NewTestLoop(opts)
	s.Require().NoError(err)
	s.loop = loop
	s.Require().NoError(loop.Init(s.ctx))
	s.Require().NoError(loop.Run(s.ctx))
	return loop
}

// tick advances one refresh interval and waits for the refresh to apply
func (s *IntegrationSuite) tick(loop *automation.Loop, wantUsed int) {
	s.app.MockClock.Advance(time.Second)
	s.Eventually(func() bool { return len(loop.Status().UsedWords) == wantUsed }, time.Second, time.Millisecond)
}

// Test: a round played in input mode, from a fresh corpus to a new round
func (s *IntegrationSuite) TestRoundInInputMode() {
	opts := automation.DefaultOptions()
	opts.Mode = model.OutputModeInput
	loop := s.start(opts)
	s.Equal(len(TestCorpus), loop.Status().CorpusSize)

	// Opponent opened with 사과
	s.app.MockState.SetChain(1)
	s.app.MockState.SetLastPlayed("사과")
	s.tick(loop, 1)

	// Our turn on 과: candidates 과자, 과일 (both length 2, corpus order)
	s.app.MockState.SetFragment("과")
	s.app.MockSignal.Fire()
	s.Eventually(func() bool { return s.app.MockClock.Waiters() == 1 }, time.Second, time.Millisecond)
	s.app.MockClock.Advance(500 * time.Millisecond)
	loop.Wait()
	s.Equal([]string{"과일"}, s.app.MockInput.Values())

	// The game records our answer
	s.app.MockState.SetChain(2)
	s.app.MockState.SetLastPlayed("과일")
	s.tick(loop, 2)
	s.Equal([]string{"사과", "과일"}, loop.Status().UsedWords)

	// New round
	s.app.MockState.SetChain(0)
	s.app.MockState.ClearHistory()
	s.tick(loop, 0)
}

// Test: display mode pushes avoided endings to the back
func (s *IntegrationSuite) TestDisplayModeRanking() {
	opts := automation.DefaultOptions()
	opts.Ranking.EndWords = append(opts.Ranking.EndWords, "자")
	loop := s.start(opts)

	s.app.MockState.SetFragment("사(삭)")
	s.app.MockSignal.Fire()
	loop.Wait()

	s.Equal([][]string{{"사과", "사슴", "사과나무", "사자"}}, s.app.MockLines.Batches())
}

// Test: the corpus is fetched once and then served from storage
func (s *IntegrationSuite) TestCorpusIsCached() {
	loop, err := s.app.NewTestLoop(automation.DefaultOptions())
	s.Require().NoError(err)
	s.loop = loop

	s.Require().NoError(loop.Init(s.ctx))
	s.Require().NoError(loop.Init(s.ctx))
	s.Equal(1, s.app.Upstream.Loads)

	size, err := s.app.Storage.CorpusSize(s.ctx)
	s.Require().NoError(err)
	s.Equal(len(TestCorpus), size)
}

// Test: longest-first ordering through the app wiring
func (s *IntegrationSuite) TestSuggestLongestFirst() {
	opts := automation.DefaultOptions()
	opts.Ranking.Compare = ranking.ByLengthDesc
	loop, err := s.app.NewTestLoop(opts)
	s.Require().NoError(err)
	s.loop = loop
	s.Require().NoError(loop.Init(s.ctx))

	words, err := loop.Suggest("자")
	s.Require().NoError(err)
	s.Equal([]string{"자동차", "자두"}, words)
}

func (s *IntegrationSuite) TestNewRejectsUnknownStorage() {
	_, err := New(Config{StorageType: "sqlite"})
	s.Error(err)

	_, err = New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewMemoryApp() {
	app, err := New(Config{CorpusSource: &CountingSource{Words: []string{"사과"}}, CacheCorpus: true})
	s.Require().NoError(err)
	defer app.Close()

	s.Require().NoError(app.Corpus.Load(s.ctx))
	s.Equal(1, app.Corpus.WordCount())
}

func (s *IntegrationSuite) TestSeededRandomRepeats() {
	first, err := New(Config{CorpusSource: &CountingSource{}, RandomSeed: 99})
	s.Require().NoError(err)
	second, err := New(Config{CorpusSource: &CountingSource{}, RandomSeed: 99})
	s.Require().NoError(err)

	for range 10 {
		s.Equal(first.Random.Intn(50), second.Random.Intn(50))
	}
}
