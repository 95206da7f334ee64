package tex

import "fmt"

// Op is a single texture operation. Ops are plain values: a recipe is an
// ordered []Op that a [Builder] interprets against one buffer, and each
// op can equally be applied to a buffer on its own.
type Op interface {
	// Apply mutates the buffer in place. Dimensions are never changed.
	Apply(b *Buffer)

	// String names the operation and its arguments, e.g. "noise(1.5)".
	String() string
}

// NoiseOp perturbs R, G and B of every pixel. See [Buffer.Noise].
type NoiseOp struct {
	Intensity float64
	Seed      int64
}

func (op NoiseOp) Apply(b *Buffer) { b.NoiseSeeded(op.Intensity, op.Seed) }
func (op NoiseOp) String() string  { return fmt.Sprintf("noise(%g)", op.Intensity) }

// RectOp fills an axis-aligned rectangle. See [Buffer.FillRect].
type RectOp struct {
	X, Y, W, H int
	Color      RGBA
}

func (op RectOp) Apply(b *Buffer) { b.FillRect(op.X, op.Y, op.W, op.H, op.Color) }
func (op RectOp) String() string {
	return fmt.Sprintf("rect(%d, %d, %d, %d)", op.X, op.Y, op.W, op.H)
}

// CircleOp fills a disk. See [Buffer.FillCircle].
type CircleOp struct {
	X, Y, Radius int
	Color        RGBA
}

func (op CircleOp) Apply(b *Buffer) { b.FillCircle(op.X, op.Y, op.Radius, op.Color) }
func (op CircleOp) String() string {
	return fmt.Sprintf("circle(%d, %d, %d)", op.X, op.Y, op.Radius)
}

// LineOp draws a line segment. See [Buffer.Line].
type LineOp struct {
	X0, Y0, X1, Y1 int
	Color          RGBA
}

func (op LineOp) Apply(b *Buffer) { b.Line(op.X0, op.Y0, op.X1, op.Y1, op.Color) }
func (op LineOp) String() string {
	return fmt.Sprintf("line(%d, %d, %d, %d)", op.X0, op.Y0, op.X1, op.Y1)
}

// MirrorOp flips the buffer horizontally. See [Buffer.Mirror].
type MirrorOp struct{}

func (MirrorOp) Apply(b *Buffer) { b.Mirror() }
func (MirrorOp) String() string  { return "mirror()" }

// FlipOp flips the buffer vertically. See [Buffer.Flip].
type FlipOp struct{}

func (FlipOp) Apply(b *Buffer) { b.Flip() }
func (FlipOp) String() string  { return "flip()" }

// GrungeOp is the single-pixel grunge placeholder. See [Buffer.Grunge].
type GrungeOp struct {
	Intensity float64
}

func (op GrungeOp) Apply(b *Buffer) { b.Grunge(op.Intensity) }
func (op GrungeOp) String() string  { return fmt.Sprintf("grunge(%g)", op.Intensity) }

// SmearOp is the single-pixel smear placeholder. See [Buffer.Smear].
type SmearOp struct {
	Color RGBA
}

func (op SmearOp) Apply(b *Buffer) { b.Smear(op.Color) }
func (op SmearOp) String() string  { return "smear()" }

// BlitOp draws another buffer onto this one. See [Buffer.Blit].
type BlitOp struct {
	Src  *Buffer
	X, Y int
}

func (op BlitOp) Apply(b *Buffer) { b.Blit(op.Src, op.X, op.Y) }
func (op BlitOp) String() string  { return fmt.Sprintf("blit(%d, %d)", op.X, op.Y) }
