package engine

// bubble compares adjacent pairs left to right, one comparison per step.
// A pass without swaps ends the sort early.
type bubble struct {
	n       int
	pass    int
	j       int
	swapped bool
	done    bool
}

func newBubble(n int) *bubble {
	return &bubble{n: n, done: n < 2}
}

func (b *bubble) Kind() Kind        { return Bubble }
func (b *bubble) Done() bool        { return b.done }
func (b *bubble) AtPollPoint() bool { return true }

func (b *bubble) Step(o *Ops) {
	if o.Greater(o.At(b.j), o.At(b.j+1)) {
		o.Swap(b.j, b.j+1)
		b.swapped = true
	}
	b.j++
	if b.j < b.n-b.pass-1 {
		return
	}

	if !b.swapped {
		b.done = true
		return
	}
	b.pass++
	b.j = 0
	b.swapped = false
	if b.pass >= b.n-1 {
		b.done = true
	}
}

// Cursor records the outer pass index. Resuming re-enters that pass from
// its first pair.
func (b *bubble) Cursor() Cursor {
	return newCursor(Bubble, b.n, b.pass)
}

func (b *bubble) Restore(c Cursor) error {
	if c.IsZero() {
		return nil
	}
	if err := c.check(Bubble, b.n, 1); err != nil {
		return err
	}
	pass := c.marks[0]
	if pass < 0 || pass >= b.n-1 {
		return errBadMark(Bubble, pass)
	}
	b.pass, b.j, b.swapped = pass, 0, false
	return nil
}
