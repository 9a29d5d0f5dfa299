package mtrng

// DefaultSeed is the canonical MT19937 default seed used by NewRNG when no seed is given.
const DefaultSeed uint32 = 5489

// RNG is a Deterministic Random Number Generator based on the 32-bit Mersenne Twister (MT19937).
// This random number generator is deterministic in the sequence of numbers it generates: two instances
// created with the same seed return the same values when the same accessors are called in the same order.
// Every accessor consumes exactly one raw 32-bit value of the underlying stream, so the n-th call of
// any accessor is always derived from the n-th raw value, regardless of which accessors were used before.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe. Use one instance per goroutine or synchronize access.
// This random number generator has a memory footprint of about 2.5 KB.
type RNG struct {
	mt    mt19937
	seed  uint32
	draws uint64 // for debugging purposes
}

// NewRNG creates a new RNG. Without an argument, it is seeded with DefaultSeed (5489).
// Otherwise the first argument is used as seed and further arguments are ignored.
// Every uint32 is a valid seed, including 0.
func NewRNG(seed ...uint32) *RNG {
	s := DefaultSeed
	if len(seed) > 0 {
		s = seed[0]
	}
	r := &RNG{seed: s}
	r.mt.seed(s)
	return r
}

// Seed returns the seed this RNG was created with.
func (r *RNG) Seed() uint32 {
	return r.seed
}

// Draws returns the number of raw 32-bit values consumed since the RNG was created.
func (r *RNG) Draws() uint64 {
	return r.draws
}

// Uint32 returns the next raw value of the MT19937 stream, in [0, 0xFFFFFFFF].
// All other accessors call this function exactly once.
func (r *RNG) Uint32() uint32 {
	r.draws++
	return r.mt.next()
}

// Int31 returns a non-negative int32 in [0, 0x7FFFFFFF]. See Int31From.
func (r *RNG) Int31() int32 {
	return Int31From(r.Uint32())
}

// Float64Closed returns a float64 in the closed interval [0.0, 1.0]. See Float64ClosedFrom.
func (r *RNG) Float64Closed() float64 {
	return Float64ClosedFrom(r.Uint32())
}

// Float64 returns a float64 in the half-open interval [0.0, 1.0). See Float64From.
// Only 32 random bits are used, i.e. the result is a multiple of 2^-32.
func (r *RNG) Float64() float64 {
	return Float64From(r.Uint32())
}

// Float64Open returns a float64 in the open interval (0.0, 1.0). See Float64OpenFrom.
func (r *RNG) Float64Open() float64 {
	return Float64OpenFrom(r.Uint32())
}

// Float32Closed returns a float32 in the closed interval [0.0, 1.0]. See Float32ClosedFrom.
func (r *RNG) Float32Closed() float32 {
	return Float32ClosedFrom(r.Uint32())
}

// Float32 returns a float32 in [0.0, 1.0). See Float32From for the rounding edge at the upper bound.
func (r *RNG) Float32() float32 {
	return Float32From(r.Uint32())
}

// Float32Open returns a float32 in (0.0, 1.0). See Float32OpenFrom for the rounding edge at the upper bound.
func (r *RNG) Float32Open() float32 {
	return Float32OpenFrom(r.Uint32())
}

// Bool returns the parity of the next raw value. See BoolFrom.
func (r *RNG) Bool() bool {
	return BoolFrom(r.Uint32())
}
