package tex

// Grunge adds intensity to the blue channel of pixel (0, 0), without
// clamping. It is a placeholder for a full-buffer grunge overlay; until
// that exists it deliberately touches only the first pixel.
func (b *Buffer) Grunge(intensity float64) {
	b.pix[0].B += intensity
}

// Smear overwrites pixel (0, 0) with c. Like Grunge, it is a
// single-pixel placeholder for a future smearing blend.
func (b *Buffer) Smear(c RGBA) {
	b.pix[0] = c
}
