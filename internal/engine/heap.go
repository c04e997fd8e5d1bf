package engine

const (
	heapBuild = iota
	heapExtract
)

// heapSort builds a max-heap by sifting down every parent from the last one
// to the root, then repeatedly swaps the root behind the heap and sifts the
// reduced heap. Each step handles one level of a sift-down.
type heapSort struct {
	n     int
	phase int
	// next is the parent to sift while building, or the last heap slot
	// while extracting.
	next    int
	root    int
	size    int
	sifting bool
	done    bool
}

func newHeap(n int) *heapSort {
	return &heapSort{n: n, phase: heapBuild, next: n/2 - 1, done: n < 2}
}

func (h *heapSort) Kind() Kind { return Heap }
func (h *heapSort) Done() bool { return h.done }

// AtPollPoint is true before each sift-down and before each extraction.
func (h *heapSort) AtPollPoint() bool { return !h.sifting }

func (h *heapSort) Step(o *Ops) {
	if !h.sifting {
		if h.phase == heapExtract {
			o.Swap(0, h.next)
			h.root, h.size, h.sifting = 0, h.next, true
			return
		}
		h.root, h.size, h.sifting = h.next, h.n, true
	}

	largest := h.root
	left := 2*h.root + 1
	right := left + 1
	if left < h.size && o.Greater(o.At(left), o.At(largest)) {
		largest = left
	}
	// Strict comparison keeps the left child on ties.
	if right < h.size && o.Greater(o.At(right), o.At(largest)) {
		largest = right
	}
	if largest != h.root {
		o.Swap(h.root, largest)
		h.root = largest
		return
	}

	h.sifting = false
	h.next--
	switch h.phase {
	case heapBuild:
		if h.next < 0 {
			h.phase = heapExtract
			h.next = h.n - 1
		}
	case heapExtract:
		if h.next < 1 {
			h.done = true
		}
	}
}

// Cursor records the phase and the next parent or heap end.
func (h *heapSort) Cursor() Cursor {
	return newCursor(Heap, h.n, h.phase, h.next)
}

func (h *heapSort) Restore(c Cursor) error {
	if c.IsZero() {
		return nil
	}
	if err := c.check(Heap, h.n, 2); err != nil {
		return err
	}
	phase, next := c.marks[0], c.marks[1]
	switch {
	case phase == heapBuild && next >= 0 && next <= h.n/2-1:
	case phase == heapExtract && next >= 1 && next < h.n:
	default:
		return errBadMark(Heap, phase, next)
	}
	h.phase, h.next, h.sifting = phase, next, false
	return nil
}
