package engine

// span is one merge of a[lo..mid] with a[mid+1..hi].
type span struct {
	lo, mid, hi int
}

// planMerges lists merges in the order a top-down recursive merge sort
// performs them: left half, right half, then the merge of both.
func planMerges(lo, hi int, out []span) []span {
	if lo >= hi {
		return out
	}
	mid := lo + (hi-lo)/2
	out = planMerges(lo, mid, out)
	out = planMerges(mid+1, hi, out)
	return append(out, span{lo: lo, mid: mid, hi: hi})
}

// mergeSort performs the planned merges, writing one element per step.
type mergeSort struct {
	n       int
	plan    []span
	next    int
	merging bool
	left    []int
	right   []int
	li, ri  int
	k       int
	done    bool
}

func newMerge(n int) *mergeSort {
	m := &mergeSort{n: n}
	if n > 0 {
		m.plan = planMerges(0, n-1, nil)
	}
	m.done = len(m.plan) == 0
	return m
}

func (m *mergeSort) Kind() Kind { return Merge }
func (m *mergeSort) Done() bool { return m.done }

// AtPollPoint is true between merges, when every element is back in the
// sequence.
func (m *mergeSort) AtPollPoint() bool { return !m.merging }

func (m *mergeSort) Step(o *Ops) {
	if !m.merging {
		m.begin(o, m.plan[m.next])
	}

	switch {
	case m.li < len(m.left) && m.ri < len(m.right):
		// <= prefers the left run on equal keys.
		if o.LessOrEqual(m.left[m.li], m.right[m.ri]) {
			o.Set(m.k, m.left[m.li])
			m.li++
		} else {
			o.Set(m.k, m.right[m.ri])
			m.ri++
		}
	case m.li < len(m.left):
		o.Set(m.k, m.left[m.li])
		m.li++
	default:
		o.Set(m.k, m.right[m.ri])
		m.ri++
	}
	m.k++

	if m.li == len(m.left) && m.ri == len(m.right) {
		m.merging = false
		m.next++
		if m.next == len(m.plan) {
			m.done = true
		}
	}
}

func (m *mergeSort) begin(o *Ops, s span) {
	m.left = m.left[:0]
	for i := s.lo; i <= s.mid; i++ {
		m.left = append(m.left, o.At(i))
	}
	m.right = m.right[:0]
	for i := s.mid + 1; i <= s.hi; i++ {
		m.right = append(m.right, o.At(i))
	}
	m.li, m.ri, m.k = 0, 0, s.lo
	m.merging = true
}

// Cursor records how many planned merges have completed.
func (m *mergeSort) Cursor() Cursor {
	return newCursor(Merge, m.n, m.next)
}

func (m *mergeSort) Restore(c Cursor) error {
	if c.IsZero() {
		return nil
	}
	if err := c.check(Merge, m.n, 1); err != nil {
		return err
	}
	next := c.marks[0]
	if next < 0 || next >= len(m.plan) {
		return errBadMark(Merge, next)
	}
	m.next, m.merging = next, false
	return nil
}
