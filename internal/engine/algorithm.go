package engine

import (
	"fmt"
	"strings"
)

// Algorithm is a sorting algorithm expressed as a state machine that
// advances by one elementary operation per Step.
type Algorithm interface {
	Kind() Kind
	// Step performs the next compare and/or mutation. It must not be called
	// once Done reports true.
	Step(o *Ops)
	Done() bool
	// AtPollPoint reports whether the machine holds no partially applied
	// state, so the run may stop here without corrupting the permutation.
	AtPollPoint() bool
	// Cursor captures the minimal state needed to continue from the current
	// poll point.
	Cursor() Cursor
	// Restore continues from a cursor captured on a machine of the same kind
	// and size.
	Restore(c Cursor) error
}

// Cursor is an algorithm-specific resume marker. The zero Cursor means
// "start from the beginning".
type Cursor struct {
	kind  Kind
	size  int
	marks []int
}

func newCursor(k Kind, size int, marks ...int) Cursor {
	m := make([]int, len(marks))
	copy(m, marks)
	return Cursor{kind: k, size: size, marks: m}
}

// IsZero reports whether c carries no progress.
func (c Cursor) IsZero() bool {
	return c.marks == nil
}

// Kind returns the algorithm the cursor belongs to.
func (c Cursor) Kind() Kind {
	return c.kind
}

// String renders the cursor for logs.
func (c Cursor) String() string {
	if c.IsZero() {
		return "none"
	}
	parts := make([]string, len(c.marks))
	for i, m := range c.marks {
		parts[i] = fmt.Sprint(m)
	}
	return fmt.Sprintf("%s[%s]", c.kind, strings.Join(parts, ","))
}

// check validates that c was captured on a machine matching k and size and
// carries want marks (or at least want when want is negative).
func (c Cursor) check(k Kind, size, want int) error {
	if c.kind != k {
		return fmt.Errorf("cursor for %s cannot resume %s", c.kind, k)
	}
	if c.size != size {
		return fmt.Errorf("cursor for %d elements cannot resume %d", c.size, size)
	}
	if want >= 0 && len(c.marks) != want {
		return fmt.Errorf("malformed %s cursor: %d marks", k, len(c.marks))
	}
	return nil
}

// Policy decides which algorithms keep their cursor across an interruption.
// Algorithms outside the policy must restart from a fresh shuffle.
type Policy map[Kind]bool

// DefaultPolicy resumes bubble and cocktail sort only.
func DefaultPolicy() Policy {
	return Policy{Bubble: true, Cocktail: true}
}

// FullPolicy resumes every algorithm.
func FullPolicy() Policy {
	p := Policy{}
	for _, k := range Kinds {
		p[k] = true
	}
	return p
}

// Resumable reports whether k keeps its cursor when interrupted.
func (p Policy) Resumable(k Kind) bool {
	return p[k]
}

// Kinds returns the resumable kinds in menu order.
func (p Policy) Kinds() []Kind {
	var out []Kind
	for _, k := range Kinds {
		if p[k] {
			out = append(out, k)
		}
	}
	return out
}

// New creates a fresh state machine of kind k for a sequence of n elements.
func New(k Kind, n int) (Algorithm, error) {
	switch k {
	case Bubble:
		return newBubble(n), nil
	case Quick:
		return newQuick(n), nil
	case Cocktail:
		return newCocktail(n), nil
	case Shell:
		return newShell(n), nil
	case Heap:
		return newHeap(n), nil
	case Merge:
		return newMerge(n), nil
	case Selection:
		return newSelection(n), nil
	case Insertion:
		return newInsertion(n), nil
	case Gnome:
		return newGnome(n), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %d", int(k))
	}
}

func errBadMark(k Kind, marks ...int) error {
	return fmt.Errorf("cursor %v out of range for %s", marks, k)
}
