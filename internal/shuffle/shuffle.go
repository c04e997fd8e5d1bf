// Package shuffle produces fresh random permutations between runs and yields
// to the host while it works so the shuffle itself is visible.
package shuffle

import (
	"math/rand/v2"

	"github.com/thruflo/sortvis/internal/engine"
	"github.com/thruflo/sortvis/internal/sequence"
	"k8s.io/utils/clock"
)

// yieldFraction is how much of the sequence is processed between draws.
const yieldFraction = 10

// Options configures a Shuffler.
type Options struct {
	// Seed fixes the random source. Zero reseeds from the clock on every
	// shuffle.
	Seed uint64
	// Clock supplies the reseed time. Defaults to the real clock.
	Clock clock.PassiveClock
}

// Shuffler permutes a sequence in place.
type Shuffler struct {
	seed  uint64
	clock clock.PassiveClock
}

// New creates a Shuffler.
func New(opts Options) *Shuffler {
	c := opts.Clock
	if c == nil {
		c = clock.RealClock{}
	}
	return &Shuffler{seed: opts.Seed, clock: c}
}

func (s *Shuffler) source() *rand.Rand {
	seed := s.seed
	if seed == 0 {
		seed = uint64(s.clock.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}

// YieldEvery returns how many elements are processed between draws for a
// sequence of n elements. It is never less than one.
func YieldEvery(n int) int {
	return max(1, n/yieldFraction)
}

// Shuffle runs a Fisher-Yates pass over seq, drawing through host every
// YieldEvery elements and once more at the end. Telemetry is reset
// afterwards so the shuffle's own swaps are not reported.
//
// Position i swaps with a partner drawn from [i, n), not [0, n), so every
// permutation is equally likely.
func (s *Shuffler) Shuffle(seq *sequence.Sequence, host engine.Host) {
	rng := s.source()
	fb, _ := host.(engine.Feedbacker)

	n := seq.Len()
	step := YieldEvery(n)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(n-i)
		if err := seq.Swap(i, j); err != nil {
			panic(err)
		}
		if i%step == 0 {
			host.Draw()
			if fb != nil {
				fb.Feedback()
			}
		}
	}

	seq.Telemetry().Reset()
	host.Draw()
}
