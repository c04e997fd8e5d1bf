package testutil

// RecordingHost is an engine.Host that records every callback.
type RecordingHost struct {
	Polls     int
	Draws     int
	Feedbacks int

	// CancelAtPoll makes the Nth poll (1-based) report cancellation.
	// Zero never cancels.
	CancelAtPoll int

	// OnPoll, when set, runs on every poll after the counter moves. Returning
	// true cancels.
	OnPoll func(poll int) bool

	// OnDraw, when set, runs on every draw.
	OnDraw func()
}

// Cancelled implements engine.Host.
func (h *RecordingHost) Cancelled() bool {
	h.Polls++
	if h.OnPoll != nil && h.OnPoll(h.Polls) {
		return true
	}
	return h.CancelAtPoll > 0 && h.Polls == h.CancelAtPoll
}

// Draw implements engine.Host.
func (h *RecordingHost) Draw() {
	h.Draws++
	if h.OnDraw != nil {
		h.OnDraw()
	}
}

// Feedback implements engine.Feedbacker.
func (h *RecordingHost) Feedback() {
	h.Feedbacks++
}

// Reset zeroes the counters and keeps the hooks.
func (h *RecordingHost) Reset() {
	h.Polls, h.Draws, h.Feedbacks = 0, 0, 0
}
