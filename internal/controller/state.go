package controller

import "errors"

// RunState is the lifecycle position of the controller.
type RunState int

const (
	// StateIdle means no run is active and a start request is accepted.
	StateIdle RunState = iota
	// StateRunning means the engine is driving an algorithm.
	StateRunning
	// StateInterrupted means a resumable run stopped and kept its cursor.
	StateInterrupted
	// StateSorted means the last run finished naturally.
	StateSorted
)

// String returns the string representation of the state.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateInterrupted:
		return "interrupted"
	case StateSorted:
		return "sorted"
	default:
		return "unknown"
	}
}

// Refused requests. None of them change controller state, so callers are
// free to ignore them.
var (
	ErrRunInProgress = errors.New("a run is in progress")
	ErrNotRunning    = errors.New("no run is in progress")
	ErrAlreadySorted = errors.New("sequence is already sorted; shuffle first")
	ErrNeedsShuffle  = errors.New("interrupted run cannot resume; shuffle first")
	ErrInvalidSize   = errors.New("invalid element count")
	ErrNotIdle       = errors.New("only an idle sequence can be resized; shuffle first")
)
