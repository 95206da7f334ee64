package tex

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
)

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage converts the buffer to an image.NRGBA, clamping each channel
// to [0, 1] during quantization.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for i, c := range b.pix {
		j := i * 4
		img.Pix[j+0] = uint8(clamp01(c.R) * 255)
		img.Pix[j+1] = uint8(clamp01(c.G) * 255)
		img.Pix[j+2] = uint8(clamp01(c.B) * 255)
		img.Pix[j+3] = uint8(clamp01(c.A) * 255)
	}
	return img
}

// FromImage creates a buffer from an already-decoded image.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	b, err := NewBuffer(bounds.Dx(), bounds.Dy(), Transparent)
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.pix[y*b.width+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return b, nil
}

// SavePNG saves the buffer to a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, b.ToImage())
}

// SaveBMP saves the buffer to a BMP file.
func (b *Buffer) SaveBMP(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return bmp.Encode(f, b.ToImage())
}
