// Package game defines the boundary between the automation loop and the live
// game page: reading state, learning when a turn starts, and emitting output.
package game

import "context"

// GameState reads the current game UI. Each call may fail with
// model.ErrElementNotFound when the expected page structure is absent.
type GameState interface {
	// ChainLength returns the number of turns played in the current round
	ChainLength(ctx context.Context) (int, error)

	// LastPlayedWord returns the most recent history entry. ok is false when
	// the history is empty.
	LastPlayedWord(ctx context.Context) (word string, ok bool, err error)

	// RequiredFragment returns the start requirement displayed for this turn
	RequiredFragment(ctx context.Context) (string, error)
}

// TurnSignal notifies subscribers when a new turn begins
type TurnSignal interface {
	// Subscribe registers onTurnStart. The callback may be invoked from
	// another goroutine and must not block.
	Subscribe(ctx context.Context, onTurnStart func()) (Subscription, error)
}

// Subscription is a handle returned by TurnSignal.Subscribe
type Subscription interface {
	// Unsubscribe stops future callbacks. It is safe to call more than once.
	Unsubscribe()
}

// InputEmitter places a word into the game's answer input
type InputEmitter interface {
	SetValue(ctx context.Context, word string) error
}

// LineWriter displays a batch of words, one per line
type LineWriter interface {
	WriteLines(words []string) error
}

// Collaborators bundles everything the automation loop needs from the game
type Collaborators struct {
	State  GameState
	Signal TurnSignal
	Input  InputEmitter
	Lines  LineWriter
}
