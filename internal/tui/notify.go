package tui

import (
	"fmt"
	"io"
	"time"

	"k8s.io/utils/clock"
)

// DefaultBellGap is the shortest interval between two bells.
const DefaultBellGap = 50 * time.Millisecond

// Notifier rings the terminal bell as audible feedback. Bells closer
// together than the gap are dropped so fast redraws do not flood the
// terminal.
type Notifier struct {
	out     io.Writer
	clock   clock.PassiveClock
	gap     time.Duration
	enabled bool
	last    time.Time
	rung    bool
}

// NewNotifier creates a disabled Notifier writing to out.
func NewNotifier(out io.Writer, c clock.PassiveClock) *Notifier {
	if c == nil {
		c = clock.RealClock{}
	}
	return &Notifier{out: out, clock: c, gap: DefaultBellGap}
}

// SetEnabled turns the bell on or off.
func (n *Notifier) SetEnabled(on bool) {
	n.enabled = on
}

// Enabled reports whether the bell is on.
func (n *Notifier) Enabled() bool {
	return n.enabled
}

// Toggle flips the bell and returns the new setting.
func (n *Notifier) Toggle() bool {
	n.enabled = !n.enabled
	return n.enabled
}

// Tick rings the bell if enabled and the gap has passed.
func (n *Notifier) Tick() {
	if !n.enabled {
		return
	}
	now := n.clock.Now()
	if n.rung && now.Sub(n.last) < n.gap {
		return
	}
	n.last, n.rung = now, true
	fmt.Fprint(n.out, Bell)
}
