package tex

// Builder accumulates a texture recipe: an initial buffer specification
// plus an ordered list of operations. It is a thin sequencer — every
// bounds decision belongs to the individual operations.
//
// Methods chain:
//
//	buf, err := tex.New(64, 64, tex.Hex("#236f")).
//		Noise(4.5).
//		Noise(2.5).
//		Build()
type Builder struct {
	width     int
	height    int
	fill      RGBA
	ops       []Op
	noiseSeed int64
}

// New creates a builder for a width×height texture with the given base
// fill color. Dimension validation happens in Build, when the buffer is
// allocated.
func New(width, height int, fill RGBA, opts ...BuilderOption) *Builder {
	b := &Builder{
		width:     width,
		height:    height,
		fill:      fill,
		noiseSeed: DefaultNoiseSeed,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Apply appends arbitrary ops to the recipe.
func (b *Builder) Apply(ops ...Op) *Builder {
	b.ops = append(b.ops, ops...)
	return b
}

// Noise appends a noise op using the builder's noise seed.
func (b *Builder) Noise(intensity float64) *Builder {
	return b.Apply(NoiseOp{Intensity: intensity, Seed: b.noiseSeed})
}

// Rect appends a rectangle fill op.
func (b *Builder) Rect(x, y, w, h int, c RGBA) *Builder {
	return b.Apply(RectOp{X: x, Y: y, W: w, H: h, Color: c})
}

// Circle appends a filled-circle op.
func (b *Builder) Circle(x, y, radius int, c RGBA) *Builder {
	return b.Apply(CircleOp{X: x, Y: y, Radius: radius, Color: c})
}

// Line appends a line segment op.
func (b *Builder) Line(x0, y0, x1, y1 int, c RGBA) *Builder {
	return b.Apply(LineOp{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c})
}

// Mirror appends a horizontal flip op.
func (b *Builder) Mirror() *Builder {
	return b.Apply(MirrorOp{})
}

// Flip appends a vertical flip op.
func (b *Builder) Flip() *Builder {
	return b.Apply(FlipOp{})
}

// Grunge appends the single-pixel grunge placeholder op.
func (b *Builder) Grunge(intensity float64) *Builder {
	return b.Apply(GrungeOp{Intensity: intensity})
}

// Smear appends the single-pixel smear placeholder op.
func (b *Builder) Smear(c RGBA) *Builder {
	return b.Apply(SmearOp{Color: c})
}

// Blit appends a blit op drawing src at (x, y).
func (b *Builder) Blit(src *Buffer, x, y int) *Builder {
	return b.Apply(BlitOp{Src: src, X: x, Y: y})
}

// Ops returns the accumulated recipe in application order. The returned
// slice is the builder's own; treat it as read-only.
func (b *Builder) Ops() []Op {
	return b.ops
}

// Build allocates the buffer, applies every op in order and returns the
// finished buffer. Ownership transfers to the caller; the builder holds
// no reference to it. Build can be called again and runs the whole
// recipe on a fresh buffer each time.
func (b *Builder) Build() (*Buffer, error) {
	buf, err := NewBuffer(b.width, b.height, b.fill)
	if err != nil {
		return nil, err
	}
	Logger().Debug("texture buffer allocated", "width", b.width, "height", b.height)

	for i, op := range b.ops {
		op.Apply(buf)
		Logger().Debug("texture op applied", "step", i, "op", op.String())
	}
	return buf, nil
}
