package sequence

import (
	"time"

	"k8s.io/utils/clock"
)

// NoHighlight is the highlighted index when nothing has been touched yet.
const NoHighlight = -1

// Telemetry tracks progress of the current run.
// Counters only move through Sequence mutations and RecordComparison.
type Telemetry struct {
	clock clock.PassiveClock

	swaps       int
	comparisons int
	highlight   int
	speedLevel  int

	elapsed    time.Duration
	timingFrom time.Time
	timing     bool
	unreliable bool
}

// Snapshot is a point-in-time copy of Telemetry for rendering.
type Snapshot struct {
	Swaps       int
	Comparisons int
	Highlight   int
	SpeedLevel  int
	Elapsed     time.Duration
	// ElapsedUnreliable is set when the speed changed mid-run.
	ElapsedUnreliable bool
}

// NewTelemetry creates Telemetry reading time from c.
// A nil clock falls back to the real clock.
func NewTelemetry(c clock.PassiveClock) *Telemetry {
	if c == nil {
		c = clock.RealClock{}
	}
	return &Telemetry{clock: c, highlight: NoHighlight}
}

func (t *Telemetry) recordMutation(i int) {
	t.swaps++
	t.highlight = i
}

// RecordComparison counts one order comparison.
func (t *Telemetry) RecordComparison() {
	t.comparisons++
}

// Swaps returns the number of element mutations since the last reset.
func (t *Telemetry) Swaps() int { return t.swaps }

// Comparisons returns the number of comparisons since the last reset.
func (t *Telemetry) Comparisons() int { return t.comparisons }

// Highlight returns the last index touched by a mutation, or NoHighlight.
func (t *Telemetry) Highlight() int { return t.highlight }

// ClearHighlight drops the highlighted index.
func (t *Telemetry) ClearHighlight() { t.highlight = NoHighlight }

// SpeedLevel returns the current index into the speed table.
func (t *Telemetry) SpeedLevel() int { return t.speedLevel }

// SetSpeedLevel records the speed index shown to the user.
func (t *Telemetry) SetSpeedLevel(level int) { t.speedLevel = level }

// StartTiming begins accumulating elapsed time. It is a no-op while timing.
func (t *Telemetry) StartTiming() {
	if t.timing {
		return
	}
	t.timingFrom = t.clock.Now()
	t.timing = true
}

// StopTiming freezes elapsed time at its current value.
func (t *Telemetry) StopTiming() {
	if !t.timing {
		return
	}
	t.elapsed += t.clock.Since(t.timingFrom)
	t.timing = false
}

// Timing reports whether elapsed time is currently accumulating.
func (t *Telemetry) Timing() bool { return t.timing }

// Elapsed returns the accumulated run time.
func (t *Telemetry) Elapsed() time.Duration {
	if t.timing {
		return t.elapsed + t.clock.Since(t.timingFrom)
	}
	return t.elapsed
}

// MarkElapsedUnreliable flags the elapsed time as not comparable across runs.
func (t *Telemetry) MarkElapsedUnreliable() { t.unreliable = true }

// ElapsedUnreliable reports whether the speed changed during the run.
func (t *Telemetry) ElapsedUnreliable() bool { return t.unreliable }

// Reset clears counters, highlight and timing. The speed level survives.
func (t *Telemetry) Reset() {
	t.swaps = 0
	t.comparisons = 0
	t.highlight = NoHighlight
	t.elapsed = 0
	t.timing = false
	t.unreliable = false
}

// Snapshot copies the current values.
func (t *Telemetry) Snapshot() Snapshot {
	return Snapshot{
		Swaps:             t.swaps,
		Comparisons:       t.comparisons,
		Highlight:         t.highlight,
		SpeedLevel:        t.speedLevel,
		Elapsed:           t.Elapsed(),
		ElapsedUnreliable: t.unreliable,
	}
}
