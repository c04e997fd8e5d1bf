package testutil

import "math/rand/v2"

// Ascending returns 1..n in order.
func Ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Reversed returns n..1.
func Reversed(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}
	return out
}

// Shuffled returns a permutation of 1..n that depends only on seed.
func Shuffled(n int, seed uint64) []int {
	out := Ascending(n)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Case is a named input sequence.
type Case struct {
	Name   string
	Values []int
}

// ConcreteCases returns the inputs every algorithm is checked against.
func ConcreteCases() []Case {
	return []Case{
		{Name: "two ascending", Values: []int{1, 2}},
		{Name: "two descending", Values: []int{2, 1}},
		{Name: "three rotated", Values: []int{2, 3, 1}},
		{Name: "reversed 5", Values: Reversed(5)},
		{Name: "ascending 10", Values: Ascending(10)},
		{Name: "reversed 17", Values: Reversed(17)},
		{Name: "shuffled 31", Values: Shuffled(31, 1)},
		{Name: "shuffled 64", Values: Shuffled(64, 2)},
		{Name: "shuffled 100", Values: Shuffled(100, 3)},
		{Name: "shuffled 257", Values: Shuffled(257, 4)},
	}
}
