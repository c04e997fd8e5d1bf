package engine

// quick is Lomuto-partition quicksort with the last element as pivot. The
// recursion is simulated with an explicit stack of [lo, hi] ranges, left
// range on top so sub-ranges are visited in recursive order.
type quick struct {
	n     int
	stack []int

	partitioning bool
	lo, hi       int
	pivot        int
	i, j         int
	done         bool
}

func newQuick(n int) *quick {
	q := &quick{n: n, done: n < 2}
	if !q.done {
		q.stack = []int{0, n - 1}
	}
	return q
}

func (q *quick) Kind() Kind { return Quick }
func (q *quick) Done() bool { return q.done }

// AtPollPoint is true before each partition.
func (q *quick) AtPollPoint() bool { return !q.partitioning }

func (q *quick) Step(o *Ops) {
	if !q.partitioning {
		top := len(q.stack) - 2
		q.lo, q.hi = q.stack[top], q.stack[top+1]
		q.stack = q.stack[:top]
		q.pivot = o.At(q.hi)
		q.i, q.j = q.lo-1, q.lo
		q.partitioning = true
	}

	if q.j <= q.hi-1 {
		// Only elements strictly below the pivot move left.
		if o.Less(o.At(q.j), q.pivot) {
			q.i++
			o.Swap(q.i, q.j)
		}
		q.j++
		return
	}

	p := q.i + 1
	o.Swap(p, q.hi)
	q.partitioning = false
	q.push(p+1, q.hi)
	q.push(q.lo, p-1)
	if len(q.stack) == 0 {
		q.done = true
	}
}

func (q *quick) push(lo, hi int) {
	if lo < hi {
		q.stack = append(q.stack, lo, hi)
	}
}

// Cursor records the pending ranges.
func (q *quick) Cursor() Cursor {
	return newCursor(Quick, q.n, q.stack...)
}

func (q *quick) Restore(c Cursor) error {
	if c.IsZero() {
		return nil
	}
	if err := c.check(Quick, q.n, -1); err != nil {
		return err
	}
	if len(c.marks) == 0 || len(c.marks)%2 != 0 {
		return errBadMark(Quick, c.marks...)
	}
	for i := 0; i < len(c.marks); i += 2 {
		lo, hi := c.marks[i], c.marks[i+1]
		if lo < 0 || hi >= q.n || lo >= hi {
			return errBadMark(Quick, c.marks...)
		}
	}
	q.stack = append(q.stack[:0], c.marks...)
	q.partitioning = false
	return nil
}
