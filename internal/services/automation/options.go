package automation

import (
	"fmt"
	"time"

	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/ranking"
	"github.com/nunnu1028/kkutu-korea-hack/internal/services/typing"
)

// Defaults
const (
	DefaultTypingSpeed     = 1000
	DefaultBatchSize       = 2000
	DefaultRefreshInterval = time.Second
)

// Options configure a Loop. They are fixed for the Loop's lifetime.
type Options struct {
	Ranking ranking.Config

	// Mode selects between displaying the ranked list and typing one word
	Mode model.OutputMode

	// TypingSpeed is in units per minute and only applies to input mode
	TypingSpeed int

	// Emit picks the ranked candidate typed in input mode
	Emit model.EmitPosition

	// BatchSize bounds each display write
	BatchSize int

	// RefreshInterval is the cadence of used-word refreshes
	RefreshInterval time.Duration
}

// DefaultOptions returns display mode with the default ranking
func DefaultOptions() Options {
	return Options{
		Ranking:         ranking.DefaultConfig(),
		Mode:            model.OutputModeDisplay,
		TypingSpeed:     DefaultTypingSpeed,
		Emit:            model.EmitLast,
		BatchSize:       DefaultBatchSize,
		RefreshInterval: DefaultRefreshInterval,
	}
}

// Validate checks the options, returning an error matching
// model.ErrInvalidOptions
func (o Options) Validate() error {
	if _, ok := model.ParseOutputMode(string(o.Mode)); !ok {
		return fmt.Errorf("%w: unknown output mode %q", model.ErrInvalidOptions, o.Mode)
	}
	if _, ok := model.ParseEmitPosition(string(o.Emit)); !ok {
		return fmt.Errorf("%w: unknown emit position %q", model.ErrInvalidOptions, o.Emit)
	}
	if o.Mode == model.OutputModeInput && o.TypingSpeed < typing.MinSpeed {
		return fmt.Errorf("%w: typing speed must be at least %d", model.ErrInvalidOptions, typing.MinSpeed)
	}
	if o.BatchSize < 1 {
		return fmt.Errorf("%w: batch size must be positive", model.ErrInvalidOptions)
	}
	if o.RefreshInterval <= 0 {
		return fmt.Errorf("%w: refresh interval must be positive", model.ErrInvalidOptions)
	}
	return nil
}
