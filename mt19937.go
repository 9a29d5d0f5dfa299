package mtrng

const (
	mtN       = 624
	mtM       = 397
	matrixA   = 0x9908B0DF
	upperMask = 0x80000000
	lowerMask = 0x7FFFFFFF
)

// mt19937 is the 32-bit Mersenne Twister (see https://en.wikipedia.org/wiki/Mersenne_Twister).
// It produces the same sequence as the reference implementation (init_genrand / genrand_int32)
// and as std::mt19937, i.e. seeded with 5489 its first output is 3499211612.
// The state occupies 2.5 KB and is regenerated in blocks of 624 words.
type mt19937 struct {
	state [mtN]uint32
	index int
}

// seed initializes the state from a 32-bit value. Every seed is valid, including 0.
func (m *mt19937) seed(s uint32) {
	m.state[0] = s
	for i := 1; i < mtN; i++ {
		prev := m.state[i-1]
		m.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	m.index = mtN
}

// twist regenerates all 624 words of the state.
func (m *mt19937) twist() {
	s := &m.state
	var kk int
	for kk = 0; kk < mtN-mtM; kk++ {
		y := (s[kk] & upperMask) | (s[kk+1] & lowerMask)
		s[kk] = s[kk+mtM] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	}
	for ; kk < mtN-1; kk++ {
		y := (s[kk] & upperMask) | (s[kk+1] & lowerMask)
		s[kk] = s[kk+mtM-mtN] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	}
	y := (s[mtN-1] & upperMask) | (s[0] & lowerMask)
	s[mtN-1] = s[mtM-1] ^ (y >> 1) ^ (-(y & 1) & matrixA)
	m.index = 0
}

// next returns the next tempered 32-bit output. Amortized O(1).
func (m *mt19937) next() uint32 {
	if m.index >= mtN {
		m.twist()
	}
	y := m.state[m.index]
	m.index++

	// tempering
	y ^= y >> 11
	y ^= (y << 7) & 0x9D2C5680
	y ^= (y << 15) & 0xEFC60000
	y ^= y >> 18
	return y
}
