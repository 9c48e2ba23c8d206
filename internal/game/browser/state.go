package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/nunnu1028/kkutu-korea-hack/internal/game"
	"github.com/nunnu1028/kkutu-korea-hack/internal/game/dom"
	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
)

// pageState answers game queries from fresh HTML snapshots
type pageState struct {
	html      func(ctx context.Context) (string, error)
	setAnswer func(ctx context.Context, index int, word string) error
}

var (
	_ game.GameState    = pageState{}
	_ game.InputEmitter = pageState{}
)

func (p pageState) snapshot(ctx context.Context) (*dom.Snapshot, error) {
	raw, err := p.html(ctx)
	if err != nil {
		return nil, fmt.Errorf("read game page: %w", err)
	}
	return dom.Parse(strings.NewReader(raw))
}

func (p pageState) ChainLength(ctx context.Context) (int, error) {
	snap, err := p.snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return snap.ChainLength()
}

func (p pageState) LastPlayedWord(ctx context.Context) (string, bool, error) {
	snap, err := p.snapshot(ctx)
	if err != nil {
		return "", false, err
	}
	word, ok := snap.LastPlayedWord()
	return word, ok, nil
}

func (p pageState) RequiredFragment(ctx context.Context) (string, error) {
	snap, err := p.snapshot(ctx)
	if err != nil {
		return "", err
	}
	return snap.RequiredFragment()
}

// TurnVisible reports whether the turn input is displayed
func (p pageState) TurnVisible(ctx context.Context) (bool, error) {
	snap, err := p.snapshot(ctx)
	if err != nil {
		return false, err
	}
	return snap.TurnVisible, nil
}

// SetValue writes word into the answer input
func (p pageState) SetValue(ctx context.Context, word string) error {
	snap, err := p.snapshot(ctx)
	if err != nil {
		return err
	}
	if snap.AnswerIndex < 0 {
		return fmt.Errorf("%w: answer input", model.ErrElementNotFound)
	}
	return p.setAnswer(ctx, snap.AnswerIndex, word)
}
