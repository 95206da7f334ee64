package tex

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSize is returned when a buffer allocation request cannot be
// satisfied.
var ErrInvalidSize = errors.New("tex: invalid buffer size")

// Buffer is a rectangular pixel buffer. Pixels are stored row-major: the
// pixel at (x, y) is Pix()[y*Width()+x]. Dimensions are fixed at creation;
// no operation resizes a buffer.
//
// A Buffer is exclusively owned by its creator. Operations mutate it in
// place and are not safe for concurrent use on the same buffer; distinct
// buffers are independent units of work.
type Buffer struct {
	width  int
	height int
	pix    []RGBA
}

// NewBuffer creates a width×height buffer with every pixel set to fill.
// It fails if either dimension is not positive or the pixel count would
// overflow.
func NewBuffer(width, height int, fill RGBA) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tex: %dx%d buffer: %w", width, height, ErrInvalidSize)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("tex: %dx%d buffer: %w", width, height, ErrInvalidSize)
	}

	b := &Buffer{
		width:  width,
		height: height,
		pix:    make([]RGBA, width*height),
	}
	for i := range b.pix {
		b.pix[i] = fill
	}
	return b, nil
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Pix returns the raw row-major pixel slice. The slice is owned by the
// buffer; callers must not resize it.
func (b *Buffer) Pix() []RGBA {
	return b.pix
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates are
// silently ignored.
func (b *Buffer) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = c
}

// GetPixel returns the color of a single pixel. Out-of-range coordinates
// return Transparent.
func (b *Buffer) GetPixel(x, y int) RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	return b.pix[y*b.width+x]
}

// Clear fills the entire buffer with a color.
func (b *Buffer) Clear(c RGBA) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]RGBA, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{
		width:  b.width,
		height: b.height,
		pix:    pix,
	}
}
