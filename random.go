package rough

import "time"

// parkMillerModulus is the Mersenne prime 2^31-1 used by the Park-Miller
// minimal standard generator.
const (
	parkMillerModulus    = 2147483647
	parkMillerMultiplier = 48271
)

// Random is a deterministic source of floating-point values in [0, 1).
//
// Two Random values constructed with the same nonzero seed produce identical
// sequences. A seed of 0 is explicit policy for "no reproducibility wanted":
// the state is derived from the wall clock at construction, so each zero-seed
// source yields a different stream.
//
// Random is the only source of non-determinism in the package and is always
// injected, never ambient. It is not safe for concurrent use; the package
// assumes single-threaded rendering per Options value.
type Random struct {
	state int64
}

// NewRandom creates a Random seeded with the given value.
// Seed 0 selects a time-based state (see type documentation).
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	state := seed % parkMillerModulus
	if state < 0 {
		state += parkMillerModulus
	}
	// The multiplicative generator has no zero state.
	if state == 0 {
		state = 1
	}
	return &Random{state: state}
}

// Next returns the next value in [0, 1).
func (r *Random) Next() float64 {
	r.state = (r.state * parkMillerMultiplier) % parkMillerModulus
	return float64(r.state) / parkMillerModulus
}
