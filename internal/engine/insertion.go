package engine

// insertion lifts a[i] out as the key, shifts larger predecessors right one
// step at a time, then drops the key into the hole.
type insertion struct {
	n       int
	i       int
	j       int
	key     int
	holding bool
	done    bool
}

func newInsertion(n int) *insertion {
	return &insertion{n: n, i: 1, done: n < 2}
}

func (s *insertion) Kind() Kind { return Insertion }
func (s *insertion) Done() bool { return s.done }

// AtPollPoint is false while the key is out of the sequence.
func (s *insertion) AtPollPoint() bool { return !s.holding }

func (s *insertion) Step(o *Ops) {
	if !s.holding {
		s.key = o.At(s.i)
		s.j = s.i - 1
		s.holding = true
	}

	if s.j >= 0 && o.Greater(o.At(s.j), s.key) {
		o.Set(s.j+1, o.At(s.j))
		s.j--
		return
	}

	if s.j+1 != s.i {
		o.Set(s.j+1, s.key)
	}
	s.holding = false
	s.i++
	if s.i >= s.n {
		s.done = true
	}
}

// Cursor records the index of the next key to insert.
func (s *insertion) Cursor() Cursor {
	return newCursor(Insertion, s.n, s.i)
}

func (s *insertion) Restore(c Cursor) error {
	if c.IsZero() {
		return nil
	}
	if err := c.check(Insertion, s.n, 1); err != nil {
		return err
	}
	i := c.marks[0]
	if i < 1 || i >= s.n {
		return errBadMark(Insertion, i)
	}
	s.i, s.holding = i, false
	return nil
}
