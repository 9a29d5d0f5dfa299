package mtrng

// The functions in this file map one raw 32-bit draw to the value returned by the
// corresponding RNG accessor. They are exported so that raw values recorded elsewhere
// (e.g. a replayed seed corpus) can be converted with exactly the same arithmetic.

const (
	inv2p32m1 = 1.0 / 4294967295.0 // 1/(2^32-1)
	inv2p32   = 1.0 / 4294967296.0 // 1/2^32
)

// Int31From returns raw shifted right by one bit, a value in [0, 0x7FFFFFFF].
func Int31From(raw uint32) int32 {
	return int32(raw >> 1)
}

// Float64ClosedFrom returns raw/(2^32-1), a value in [0.0, 1.0].
func Float64ClosedFrom(raw uint32) float64 {
	return float64(raw) * inv2p32m1
}

// Float64From returns raw/2^32, a value in [0.0, 1.0).
func Float64From(raw uint32) float64 {
	return float64(raw) * inv2p32
}

// Float64OpenFrom returns (raw+0.5)/2^32, a value in (0.0, 1.0).
func Float64OpenFrom(raw uint32) float64 {
	return (float64(raw) + 0.5) * inv2p32
}

// Float32ClosedFrom is the single precision variant of Float64ClosedFrom, a value in [0.0, 1.0].
// In single precision 1/(2^32-1) rounds to 2^-32, so the result equals Float32From(raw).
func Float32ClosedFrom(raw uint32) float32 {
	return float32(raw) * float32(inv2p32m1)
}

// Float32From returns raw/2^32 computed in single precision.
// The result is in [0.0, 1.0) except for raw >= 0xFFFFFF80: float32(raw) rounds up to 2^32
// for these 128 values and the result is exactly 1.0.
func Float32From(raw uint32) float32 {
	return float32(raw) * float32(inv2p32)
}

// Float32OpenFrom returns (raw+0.5)/2^32 computed in single precision.
// The result is never 0.0. Like Float32From it is exactly 1.0 for raw >= 0xFFFFFF80.
func Float32OpenFrom(raw uint32) float32 {
	return float32(float32(raw)+0.5) * float32(inv2p32)
}

// BoolFrom folds all 32 bits of raw into one by xor, i.e. it returns true iff raw has odd parity.
func BoolFrom(raw uint32) bool {
	bits := raw
	bits ^= bits >> 16
	bits ^= bits >> 8
	bits ^= bits >> 4
	bits ^= bits >> 2
	bits ^= bits >> 1
	return bits&1 == 1
}
