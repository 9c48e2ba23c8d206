package model

// LoopState represents the lifecycle phase of the automation loop
type LoopState string

const (
	LoopStateUninitialized LoopState = "uninitialized" // Corpus not loaded yet
	LoopStateInitialized   LoopState = "initialized"   // Ready to run
	LoopStateRunning       LoopState = "running"       // Watching turns and refreshing used words
	LoopStateStopped       LoopState = "stopped"       // Subscription and timer cancelled
)

// OutputMode selects where a turn's ranked candidates go
type OutputMode string

const (
	OutputModeDisplay OutputMode = "display" // Log the ranked list in batches
	OutputModeInput   OutputMode = "input"   // Type the chosen word into the game
)

// ParseOutputMode converts a configuration string into an OutputMode
func ParseOutputMode(s string) (OutputMode, bool) {
	switch OutputMode(s) {
	case OutputModeDisplay, OutputModeInput:
		return OutputMode(s), true
	}
	return "", false
}

// EmitPosition selects which ranked candidate is typed in input mode
type EmitPosition string

const (
	EmitLast   EmitPosition = "last"   // Last ranked candidate
	EmitFirst  EmitPosition = "first"  // First ranked candidate
	EmitRandom EmitPosition = "random" // Uniformly chosen ranked candidate
)

// ParseEmitPosition converts a configuration string into an EmitPosition
func ParseEmitPosition(s string) (EmitPosition, bool) {
	switch EmitPosition(s) {
	case EmitLast, EmitFirst, EmitRandom:
		return EmitPosition(s), true
	}
	return "", false
}
