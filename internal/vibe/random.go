package vibe

import "math"

// zeroSeedState stands in for a zero seed. xorshift32 never leaves state 0,
// so a literal zero seed would emit 0 forever.
const zeroSeedState uint32 = 0x9E3779B9

// maxBelowOne is the largest float64 strictly less than 1.
var maxBelowOne = math.Nextafter(1, 0)

// Random is a deterministic xorshift32 stream. It is not safe for
// concurrent use.
type Random struct {
	state uint32
}

// NewRandom returns a stream seeded with seed. Two streams built from the
// same seed produce identical sequences.
func NewRandom(seed uint32) *Random {
	if seed == 0 {
		seed = zeroSeedState
	}
	return &Random{state: seed}
}

// Next advances the stream and returns a value in [0, 1).
func (r *Random) Next() float64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x

	v := float64(x) / math.MaxUint32
	if v >= 1 {
		return maxBelowOne
	}
	return v
}

// Intn returns floor(Next() * n).
func (r *Random) Intn(n int) int {
	return int(math.Floor(r.Next() * float64(n)))
}
