// Package seeded provides the reproducible random source behind page
// variations. Sequences are bit-for-bit stable for a given seed.
package seeded

// Rand is a 32-bit mulberry32 generator.
type Rand struct {
	state uint32
}

// New returns a generator seeded with seed.
func New(seed uint32) *Rand {
	return &Rand{state: seed}
}

// FromInt folds an integer seed into 32 bits with wrapping semantics,
// so negative and oversized seeds map to the same state as a uint32 cast.
func FromInt(seed int64) *Rand {
	return New(uint32(seed))
}

// Uint32 advances the generator and returns the next raw output.
func (r *Rand) Uint32() uint32 {
	r.state += 0x6d2b79f5
	t := r.state
	z := (t ^ (t >> 15)) * (1 | t)
	z ^= z + (z^(z>>7))*(61|z)
	return z ^ (z >> 14)
}

// Float64 returns the next value in [0,1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / 4294967296
}

// Intn returns a value in [0,n) drawn the same way the shuffle draws indices.
func (r *Rand) Intn(n int) int {
	return int(r.Float64() * float64(n))
}
