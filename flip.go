package tex

// Mirror flips the buffer horizontally: each row's pixel order is
// reversed, row order is unchanged. The buffer is rewritten in place via
// a transient scratch copy.
func (b *Buffer) Mirror() {
	scratch := make([]RGBA, len(b.pix))
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			scratch[row+x] = b.pix[row+(b.width-1-x)]
		}
	}
	copy(b.pix, scratch)
}

// Flip flips the buffer vertically: row order is reversed, each row's
// pixel order is unchanged. The buffer is rewritten in place via a
// transient scratch copy.
func (b *Buffer) Flip() {
	scratch := make([]RGBA, len(b.pix))
	for y := 0; y < b.height; y++ {
		copy(scratch[y*b.width:(y+1)*b.width], b.pix[(b.height-1-y)*b.width:(b.height-y)*b.width])
	}
	copy(b.pix, scratch)
}
