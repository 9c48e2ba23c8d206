package tracker

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nunnu1028/kkutu-korea-hack/internal/dependencies/mocks"
	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
)

type TrackerSuite struct {
	suite.Suite
	ctx     context.Context
	state   *mocks.MockGameState
	tracker *Tracker
}

func TestTrackerSuite(t *testing.T) {
	suite.Run(t, new(TrackerSuite))
}

func (s *TrackerSuite) SetupTest() {
	s.ctx = context.Background()
	s.state = mocks.NewMockGameState()
	s.tracker = New()
}

func (s *TrackerSuite) TestAppendsNewHistoryEntry() {
	s.state.SetChain(1)
	s.state.SetLastPlayed("사과")

	s.Require().NoError(s.tracker.Refresh(s.ctx, s.state))
	s.Equal([]string{"사과"}, s.tracker.UsedWords())
	s.True(s.tracker.Contains("사과"))
}

func (s *TrackerSuite) TestRepeatedEntryIsNotDuplicated() {
	s.state.SetChain(2)
	s.state.SetLastPlayed("사과")

	s.Require().NoError(s.tracker.Refresh(s.ctx, s.state))
	s.Require().NoError(s.tracker.Refresh(s.ctx, s.state))
	s.Equal([]string{"사과"}, s.tracker.UsedWords())
}

func (s *TrackerSuite) TestKeepsPlayOrder() {
	s.state.SetChain(1)
	for _, w := range []string{"사과", "과자", "자두"} {
		s.state.SetLastPlayed(w)
		s.Require().NoError(s.tracker.Refresh(s.ctx, s.state))
	}
	s.Equal([]string{"사과", "과자", "자두"}, s.tracker.UsedWords())
	s.Equal(3, s.tracker.Len())
}

func (s *TrackerSuite) TestZeroChainClearsEverything() {
	s.tracker.Add("사과")
	s.tracker.Add("과자")

	s.state.SetChain(0)
	s.Require().NoError(s.tracker.Refresh(s.ctx, s.state))
	s.Empty(s.tracker.UsedWords())
	s.False(s.tracker.Contains("사과"))
}

func (s *TrackerSuite) TestChainDropClearsThenAppends() {
	s.state.SetChain(3)
	s.state.SetLastPlayed("사과")
	s.Require().NoError(s.tracker.Refresh(s.ctx, s.state))
	s.Equal([]string{"사과"}, s.tracker.UsedWords())

	// Same tick reports the reset and a stale history entry
	s.state.SetChain(0)
	s.Require().NoError(s.tracker.Refresh(s.ctx, s.state))
	s.Equal([]string{"사과"}, s.tracker.UsedWords())

	s.state.ClearHistory()
	s.Require().NoError(s.tracker.Refresh(s.ctx, s.state))
	s.Empty(s.tracker.UsedWords())
}

func (s *TrackerSuite) TestMissingHistoryIsNoop() {
	s.tracker.Add("사과")
	s.state.SetChain(4)
	s.state.ClearHistory()

	s.Require().NoError(s.tracker.Refresh(s.ctx, s.state))
	s.Equal([]string{"사과"}, s.tracker.UsedWords())
}

func (s *TrackerSuite) TestChainReadFailure() {
	s.state.SetErrors(model.ErrElementNotFound, nil, nil)
	s.tracker.Add("사과")

	err := s.tracker.Refresh(s.ctx, s.state)
	s.ErrorIs(err, model.ErrElementNotFound)
	s.Equal([]string{"사과"}, s.tracker.UsedWords())
}

func (s *TrackerSuite) TestUnreadableChainStillRecordsEntry() {
	s.tracker.Add("사과")
	s.state.SetErrors(fmt.Errorf("%w: %w", model.ErrElementNotFound, model.ErrChainUnreadable), nil, nil)
	s.state.SetLastPlayed("과자")

	s.Require().NoError(s.tracker.Refresh(s.ctx, s.state))
	s.Equal([]string{"사과", "과자"}, s.tracker.UsedWords())
}

func (s *TrackerSuite) TestHistoryReadFailure() {
	boom := errors.New("boom")
	s.state.SetChain(1)
	s.state.SetErrors(nil, boom, nil)

	s.ErrorIs(s.tracker.Refresh(s.ctx, s.state), boom)
}

func (s *TrackerSuite) TestUsedWordsReturnsCopy() {
	s.tracker.Add("사과")
	words := s.tracker.UsedWords()
	words[0] = "mutated"
	s.Equal([]string{"사과"}, s.tracker.UsedWords())
}
