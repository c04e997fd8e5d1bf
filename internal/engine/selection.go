package engine

// selection scans the unsorted suffix for its minimum one comparison per
// step and swaps it into place when the scan finishes.
type selection struct {
	n    int
	i    int
	j    int
	min  int
	done bool
}

func newSelection(n int) *selection {
	return &selection{n: n, j: 1, done: n < 2}
}

func (s *selection) Kind() Kind        { return Selection }
func (s *selection) Done() bool        { return s.done }
func (s *selection) AtPollPoint() bool { return true }

func (s *selection) Step(o *Ops) {
	// Strict less keeps the first occurrence of the minimum.
	if o.Less(o.At(s.j), o.At(s.min)) {
		s.min = s.j
	}
	s.j++
	if s.j < s.n {
		return
	}

	if s.min != s.i {
		o.Swap(s.min, s.i)
	}
	s.begin(s.i + 1)
}

func (s *selection) begin(i int) {
	s.i, s.min, s.j = i, i, i+1
	if s.i >= s.n-1 {
		s.done = true
	}
}

// Cursor records the position being filled. Resuming rescans its suffix.
func (s *selection) Cursor() Cursor {
	return newCursor(Selection, s.n, s.i)
}

func (s *selection) Restore(c Cursor) error {
	if c.IsZero() {
		return nil
	}
	if err := c.check(Selection, s.n, 1); err != nil {
		return err
	}
	i := c.marks[0]
	if i < 0 || i >= s.n-1 {
		return errBadMark(Selection, i)
	}
	s.begin(i)
	return nil
}
