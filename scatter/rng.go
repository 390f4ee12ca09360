package scatter

// NewRNG returns a deterministic random stream seeded by a string key.
// The same seed always yields the same sequence, so re-rendering identical
// data places particles in identical positions.
//
// The seed is hashed with a djb2-style polynomial hash and drives a
// Mulberry32 generator. Values are uniform in [0, 1).
func NewRNG(seed string) func() float64 {
	state := hashSeed(seed)
	return func() float64 {
		state += 0x6D2B79F5
		z := state
		z = (z ^ (z >> 15)) * (z | 1)
		z ^= z + (z^(z>>7))*(z|61)
		z ^= z >> 14
		return float64(z) / 4294967296.0
	}
}

func hashSeed(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}
