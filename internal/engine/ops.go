package engine

import "github.com/thruflo/sortvis/internal/sequence"

// Ops is the mutable view of a sequence handed to an algorithm for one run.
// Index errors are programming errors in the step logic and panic.
type Ops struct {
	seq *sequence.Sequence
	tel *sequence.Telemetry
}

// NewOps wraps seq for use by an Algorithm.
func NewOps(seq *sequence.Sequence) *Ops {
	return &Ops{seq: seq, tel: seq.Telemetry()}
}

// Len returns the sequence length.
func (o *Ops) Len() int {
	return o.seq.Len()
}

// At returns the value at i.
func (o *Ops) At(i int) int {
	v, err := o.seq.Get(i)
	if err != nil {
		panic(err)
	}
	return v
}

// Greater reports a > b and counts one comparison.
func (o *Ops) Greater(a, b int) bool {
	o.tel.RecordComparison()
	return a > b
}

// Less reports a < b and counts one comparison.
func (o *Ops) Less(a, b int) bool {
	o.tel.RecordComparison()
	return a < b
}

// LessOrEqual reports a <= b and counts one comparison.
func (o *Ops) LessOrEqual(a, b int) bool {
	o.tel.RecordComparison()
	return a <= b
}

// Swap exchanges two elements.
func (o *Ops) Swap(i, j int) {
	if err := o.seq.Swap(i, j); err != nil {
		panic(err)
	}
}

// Set writes a single element.
func (o *Ops) Set(i, v int) {
	if err := o.seq.Set(i, v); err != nil {
		panic(err)
	}
}
