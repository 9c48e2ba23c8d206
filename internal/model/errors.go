package model

import "errors"

// Common errors used across the application
var (
	// Corpus errors
	ErrCorpusLoad      = errors.New("corpus could not be loaded")
	ErrCorpusNotLoaded = errors.New("corpus not loaded")

	// Game page errors
	ErrElementNotFound = errors.New("game element not found")
	ErrChainUnreadable = errors.New("chain counter is not a number")

	// Lifecycle errors
	ErrNotInitialized = errors.New("not initialized")
	ErrNotRunning     = errors.New("not running")
	ErrAlreadyRunning = errors.New("already running")

	// Turn errors
	ErrNoCandidates = errors.New("no candidate words")

	// Configuration errors
	ErrInvalidOptions = errors.New("invalid options")
)
