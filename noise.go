package tex

import "math/rand"

// DefaultNoiseSeed is the seed Noise uses when none is supplied. The
// generator is reseeded at the start of every invocation, so the same
// intensity on a same-size buffer always produces the same pattern.
const DefaultNoiseSeed int64 = 1

// Noise perturbs every pixel's R, G and B channels by an independent
// uniform value in [-intensity/2, +intensity/2], then clamps each of them
// to [0, 1]. Alpha is untouched. Any intensity is accepted; large values
// simply clamp harder.
func (b *Buffer) Noise(intensity float64) {
	b.NoiseSeeded(intensity, DefaultNoiseSeed)
}

// NoiseSeeded is Noise with an explicit seed.
func (b *Buffer) NoiseSeeded(intensity float64, seed int64) {
	b.NoiseRand(intensity, rand.New(rand.NewSource(seed)))
}

// NoiseRand is Noise drawing from a caller-supplied generator. Exactly
// 3*width*height values are consumed, in row-major, R-G-B per-pixel order.
func (b *Buffer) NoiseRand(intensity float64, rng *rand.Rand) {
	for i := range b.pix {
		p := &b.pix[i]
		p.R = clamp01(p.R + intensity*(rng.Float64()-0.5))
		p.G = clamp01(p.G + intensity*(rng.Float64()-0.5))
		p.B = clamp01(p.B + intensity*(rng.Float64()-0.5))
	}
}
