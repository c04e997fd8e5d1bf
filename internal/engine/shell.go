package engine

// shell runs a gapped insertion sort for gaps n/2, n/4, ..., 1.
type shell struct {
	n       int
	gap     int
	i       int
	j       int
	key     int
	holding bool
	done    bool
}

func newShell(n int) *shell {
	return &shell{n: n, gap: n / 2, i: n / 2, done: n < 2}
}

func (s *shell) Kind() Kind        { return Shell }
func (s *shell) Done() bool        { return s.done }
func (s *shell) AtPollPoint() bool { return !s.holding }

func (s *shell) Step(o *Ops) {
	if !s.holding {
		s.key = o.At(s.i)
		s.j = s.i
		s.holding = true
	}

	if s.j >= s.gap && o.Greater(o.At(s.j-s.gap), s.key) {
		o.Set(s.j, o.At(s.j-s.gap))
		s.j -= s.gap
		return
	}

	if s.j != s.i {
		o.Set(s.j, s.key)
	}
	s.holding = false
	s.i++
	if s.i < s.n {
		return
	}
	s.gap /= 2
	s.i = s.gap
	if s.gap == 0 {
		s.done = true
	}
}

// Cursor records the gap and the next index within it.
func (s *shell) Cursor() Cursor {
	return newCursor(Shell, s.n, s.gap, s.i)
}

func (s *shell) Restore(c Cursor) error {
	if c.IsZero() {
		return nil
	}
	if err := c.check(Shell, s.n, 2); err != nil {
		return err
	}
	gap, i := c.marks[0], c.marks[1]
	if gap < 1 || gap > s.n/2 || i < gap || i >= s.n {
		return errBadMark(Shell, gap, i)
	}
	s.gap, s.i, s.holding = gap, i, false
	return nil
}
