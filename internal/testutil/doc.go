// Package testutil provides shared test utilities for sortvis.
//
// # Fixtures
//
// The fixtures.go file provides sample sequences:
//
//   - Ascending(n), Reversed(n) - sorted and worst-case inputs
//   - Shuffled(n, seed) - a deterministic permutation of 1..n
//   - ConcreteCases() - the named inputs used by the algorithm tables
//
// # Hosts
//
// The host.go file provides engine.Host implementations:
//
//   - RecordingHost - counts polls, draws and feedback cues and can cancel at
//     a chosen poll
//
// # Assertions
//
// The assertions.go file provides custom test assertions:
//
//   - AssertSorted(t, seq) - ascending order
//   - AssertPermutation(t, seq) - values are exactly 1..N
//   - AssertSameValues(t, want, got) - same multiset, any order
//
// # Timeouts
//
// The timeout.go file bounds tests that drive the terminal loop:
//
//   - ContextWithTestDeadline(t, fallback) - respects the test deadline
//   - ShortOperationContext(t) - a few seconds for loop tests
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//	    seq := sequence.FromValues(testutil.Reversed(5), nil)
//	    host := &testutil.RecordingHost{}
//	    engine.NewEngine(seq, host).Run(alg)
//	    testutil.AssertSorted(t, seq)
//	}
package testutil
