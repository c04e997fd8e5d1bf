package engine

// gnome walks a single cursor forward, stepping back after each swap with
// its predecessor.
type gnome struct {
	n    int
	pos  int
	done bool
}

func newGnome(n int) *gnome {
	return &gnome{n: n, done: n < 2}
}

func (g *gnome) Kind() Kind        { return Gnome }
func (g *gnome) Done() bool        { return g.done }
func (g *gnome) AtPollPoint() bool { return true }

func (g *gnome) Step(o *Ops) {
	if g.pos > 0 && o.Less(o.At(g.pos), o.At(g.pos-1)) {
		o.Swap(g.pos, g.pos-1)
		g.pos--
		return
	}
	g.pos++
	if g.pos >= g.n {
		g.done = true
	}
}

// Cursor records the walking position.
func (g *gnome) Cursor() Cursor {
	return newCursor(Gnome, g.n, g.pos)
}

func (g *gnome) Restore(c Cursor) error {
	if c.IsZero() {
		return nil
	}
	if err := c.check(Gnome, g.n, 1); err != nil {
		return err
	}
	pos := c.marks[0]
	if pos < 0 || pos >= g.n {
		return errBadMark(Gnome, pos)
	}
	g.pos = pos
	return nil
}
