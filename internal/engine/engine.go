// Package engine turns batch sorting algorithms into steppable state machines
// that cooperate with an external frame loop.
//
// The Engine drives one Algorithm at a time over a shared Sequence. Between
// elementary operations it polls the Host for cancellation (only where the
// algorithm holds no partially applied state) and, every SpeedTable[level]
// mutations, asks the Host to draw. Fast-forward suppresses drawing and
// feedback but keeps polling.
//
// Everything runs on the caller's goroutine; "suspension" means returning
// control to the Host through its callbacks.
package engine

import "github.com/thruflo/sortvis/internal/sequence"

// SpeedTable maps a speed level to the number of mutations between draws.
var SpeedTable = []int{1, 5, 10, 20, 50, 100}

// DefaultSpeedLevel is the starting index into SpeedTable.
const DefaultSpeedLevel = 3

// ClampSpeedLevel bounds level to the SpeedTable indices.
func ClampSpeedLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level >= len(SpeedTable) {
		return len(SpeedTable) - 1
	}
	return level
}

// Host is the frame loop the engine yields to.
type Host interface {
	// Cancelled is polled at the algorithm's poll points. Returning true
	// stops the run immediately.
	Cancelled() bool
	// Draw renders the current sequence and telemetry.
	Draw()
}

// Feedbacker is optionally implemented by a Host to receive a cue (for
// example an audible tick) alongside each Draw.
type Feedbacker interface {
	Feedback()
}

// Status is the outcome of driving an algorithm.
type Status int

const (
	// StatusRunning means the step was applied and more work remains.
	StatusRunning Status = iota
	// StatusSorted means the algorithm finished naturally.
	StatusSorted
	// StatusInterrupted means the host asked to stop at a poll point.
	StatusInterrupted
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSorted:
		return "sorted"
	case StatusInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Engine advances algorithms over a sequence.
type Engine struct {
	seq         *sequence.Sequence
	ops         *Ops
	host        Host
	feedback    Feedbacker
	speedLevel  int
	fastForward bool
}

// NewEngine creates an Engine over seq that yields to host.
func NewEngine(seq *sequence.Sequence, host Host) *Engine {
	e := &Engine{
		seq:        seq,
		ops:        NewOps(seq),
		host:       host,
		speedLevel: DefaultSpeedLevel,
	}
	if fb, ok := host.(Feedbacker); ok {
		e.feedback = fb
	}
	seq.Telemetry().SetSpeedLevel(e.speedLevel)
	return e
}

// SetSpeedLevel clamps and applies a new speed level, returning the level
// actually used.
func (e *Engine) SetSpeedLevel(level int) int {
	e.speedLevel = ClampSpeedLevel(level)
	e.seq.Telemetry().SetSpeedLevel(e.speedLevel)
	return e.speedLevel
}

// SpeedLevel returns the current speed level.
func (e *Engine) SpeedLevel() int {
	return e.speedLevel
}

// SetFastForward engages or releases fast-forward.
func (e *Engine) SetFastForward(on bool) {
	e.fastForward = on
}

// FastForward reports whether fast-forward is engaged.
func (e *Engine) FastForward() bool {
	return e.fastForward
}

// Step applies the shared step protocol once: poll at a poll point, perform
// one elementary operation, then draw if the mutation count hit the
// throttle.
func (e *Engine) Step(alg Algorithm) Status {
	if alg.Done() {
		return StatusSorted
	}
	if alg.AtPollPoint() && e.host.Cancelled() {
		return StatusInterrupted
	}

	tel := e.seq.Telemetry()
	before := tel.Swaps()
	alg.Step(e.ops)
	if after := tel.Swaps(); after != before && !e.fastForward && after%SpeedTable[e.speedLevel] == 0 {
		e.yield()
	}

	if alg.Done() {
		return StatusSorted
	}
	return StatusRunning
}

// Run steps alg until it completes or the host cancels it.
// Sequences shorter than two elements report StatusSorted without touching
// the host.
func (e *Engine) Run(alg Algorithm) Status {
	for {
		if status := e.Step(alg); status != StatusRunning {
			return status
		}
	}
}

func (e *Engine) yield() {
	e.host.Draw()
	if e.feedback != nil {
		e.feedback.Feedback()
	}
}
