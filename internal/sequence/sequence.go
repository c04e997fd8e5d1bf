// Package sequence holds the permutation being sorted and the telemetry
// counters that every mutation and comparison feeds.
//
// A Sequence always holds a permutation of 1..N between elementary
// operations. Swap and Set are the only mutators and both are counted by the
// attached Telemetry.
package sequence

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an index falls outside [0, N).
var ErrOutOfRange = errors.New("index out of range")

// Sequence is an ordered run of the integers 1..N.
type Sequence struct {
	values []int
	tel    *Telemetry
}

// New creates an ascending sequence 1..n observed by tel.
// A nil tel gets a private Telemetry.
func New(n int, tel *Telemetry) (*Sequence, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid sequence size %d", n)
	}
	if tel == nil {
		tel = NewTelemetry(nil)
	}
	s := &Sequence{tel: tel}
	s.fill(n)
	return s, nil
}

// FromValues wraps a copy of values. It is intended for tests and fixtures;
// the caller is responsible for passing a permutation of 1..len(values).
func FromValues(values []int, tel *Telemetry) *Sequence {
	if tel == nil {
		tel = NewTelemetry(nil)
	}
	v := make([]int, len(values))
	copy(v, values)
	return &Sequence{values: v, tel: tel}
}

func (s *Sequence) fill(n int) {
	s.values = make([]int, n)
	for i := range s.values {
		s.values[i] = i + 1
	}
}

// Len returns N.
func (s *Sequence) Len() int {
	return len(s.values)
}

// Telemetry returns the counters attached to this sequence.
func (s *Sequence) Telemetry() *Telemetry {
	return s.tel
}

func (s *Sequence) check(i int) error {
	if i < 0 || i >= len(s.values) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(s.values))
	}
	return nil
}

// Get returns the value at index i.
func (s *Sequence) Get(i int) (int, error) {
	if err := s.check(i); err != nil {
		return 0, err
	}
	return s.values[i], nil
}

// Set writes v at index i. It counts as one mutation.
func (s *Sequence) Set(i, v int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.values[i] = v
	s.tel.recordMutation(i)
	return nil
}

// Swap exchanges the values at i and j. It counts as one mutation and
// highlights j.
func (s *Sequence) Swap(i, j int) error {
	if err := s.check(i); err != nil {
		return err
	}
	if err := s.check(j); err != nil {
		return err
	}
	s.values[i], s.values[j] = s.values[j], s.values[i]
	s.tel.recordMutation(j)
	return nil
}

// Resize replaces the contents with a fresh ascending run 1..n.
// Callers must only resize while no run is in progress.
func (s *Sequence) Resize(n int) error {
	if n < 1 {
		return fmt.Errorf("invalid sequence size %d", n)
	}
	s.fill(n)
	s.tel.ClearHighlight()
	return nil
}

// Values returns a copy of the current contents.
func (s *Sequence) Values() []int {
	out := make([]int, len(s.values))
	copy(out, s.values)
	return out
}

// IsSorted reports whether the values are in ascending order.
func (s *Sequence) IsSorted() bool {
	for i := 1; i < len(s.values); i++ {
		if s.values[i-1] > s.values[i] {
			return false
		}
	}
	return true
}

// IsPermutation reports whether the values are exactly 1..N in some order.
func (s *Sequence) IsPermutation() bool {
	seen := make([]bool, len(s.values)+1)
	for _, v := range s.values {
		if v < 1 || v > len(s.values) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
