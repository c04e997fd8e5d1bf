package engine

// cocktail alternates left-to-right and right-to-left bubble passes over a
// window [start, end] that shrinks from both ends.
type cocktail struct {
	n        int
	start    int
	end      int
	i        int
	backward bool
	swapped  bool
	done     bool
}

func newCocktail(n int) *cocktail {
	c := &cocktail{n: n, end: n - 1, done: n < 2}
	return c
}

func (c *cocktail) Kind() Kind        { return Cocktail }
func (c *cocktail) Done() bool        { return c.done }
func (c *cocktail) AtPollPoint() bool { return true }

func (c *cocktail) Step(o *Ops) {
	if o.Greater(o.At(c.i), o.At(c.i+1)) {
		o.Swap(c.i, c.i+1)
		c.swapped = true
	}

	if !c.backward {
		c.i++
		if c.i < c.end {
			return
		}
		// Largest element of the window is now at end.
		if !c.swapped {
			c.done = true
			return
		}
		c.swapped = false
		c.end--
		c.backward = true
		c.i = c.end - 1
		if c.i < c.start {
			c.done = true
		}
		return
	}

	c.i--
	if c.i >= c.start {
		return
	}
	c.start++
	if !c.swapped {
		c.done = true
		return
	}
	c.swapped = false
	c.backward = false
	c.i = c.start
	if c.i >= c.end {
		c.done = true
	}
}

// Cursor records the window. Resuming restarts with a forward pass over it.
func (c *cocktail) Cursor() Cursor {
	return newCursor(Cocktail, c.n, c.start, c.end)
}

func (c *cocktail) Restore(cur Cursor) error {
	if cur.IsZero() {
		return nil
	}
	if err := cur.check(Cocktail, c.n, 2); err != nil {
		return err
	}
	start, end := cur.marks[0], cur.marks[1]
	if start < 0 || end >= c.n || start >= end {
		return errBadMark(Cocktail, start, end)
	}
	c.start, c.end, c.i = start, end, start
	c.backward, c.swapped = false, false
	return nil
}
