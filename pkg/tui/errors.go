package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrGenerationAbandoned is returned when the user declines to correct
	// invalid fields after a failed generation.
	ErrGenerationAbandoned = errors.New("tui: generation abandoned")
)
