package rounddb

import "errors"

var (
	// ErrRoundNotFound is returned when a round ID does not exist.
	ErrRoundNotFound = errors.New("round not found")
	// ErrStaleRound is returned when an update loses the optimistic
	// concurrency check: another device saved the round since it was read.
	ErrStaleRound = errors.New("round was modified concurrently")
	// ErrTemplateNotFound is returned when a round template ID does not exist.
	ErrTemplateNotFound = errors.New("round template not found")
)
