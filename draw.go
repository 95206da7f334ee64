package tex

// FillRect overwrites every pixel in the half-open rectangle
// [x, x+w) × [y, y+h) with c. If any part of the rectangle falls outside
// the buffer the whole call is a silent no-op: the rectangle is drawn
// entirely or not at all.
func (b *Buffer) FillRect(x, y, w, h int, c RGBA) {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > b.width || y+h > b.height {
		return
	}
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.pix[row*b.width+col] = c
		}
	}
}

// FillCircle draws a filled disk of the given radius centered at (x, y)
// using the midpoint circle algorithm. Pixels outside the buffer are
// skipped individually, so a circle overlapping the edge is clipped
// rather than rejected. A radius of zero draws nothing; a negative radius
// is ignored.
func (b *Buffer) FillCircle(x, y, radius int, c RGBA) {
	if radius < 0 {
		return
	}

	cx := radius - 1
	cy := 0
	dx := 1
	dy := 1
	err := dx - radius*2

	for cx >= cy {
		b.hspan(x-cx, x+cx, y+cy, c)
		b.hspan(x-cx, x+cx, y-cy, c)
		b.hspan(x-cy, x+cy, y+cx, c)
		b.hspan(x-cy, x+cy, y-cx, c)

		if err <= 0 {
			cy++
			err += dy
			dy += 2
		}
		if err > 0 {
			cx--
			dx += 2
			err += dx - radius*2
		}
	}
}

// hspan fills the inclusive horizontal span [x0, x1] on row y, clipping
// each pixel to the buffer.
func (b *Buffer) hspan(x0, x1, y int, c RGBA) {
	if y < 0 || y >= b.height {
		return
	}
	for x := x0; x <= x1; x++ {
		if x < 0 || x >= b.width {
			continue
		}
		b.pix[y*b.width+x] = c
	}
}

// Line draws a line segment from (x0, y0) to (x1, y1) using Bresenham's
// algorithm. Off-canvas pixels are skipped individually.
func (b *Buffer) Line(x0, y0, x1, y1 int, c RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		b.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Blit overwrites pixels of b with the contents of src, placing src's
// top-left corner at (x, y). Covered pixels are replaced outright, there
// is no blending. Portions of src falling outside b are clipped.
func (b *Buffer) Blit(src *Buffer, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= b.height {
			continue
		}
		for sx := 0; sx < src.width; sx++ {
			dx := x + sx
			if dx < 0 || dx >= b.width {
				continue
			}
			b.pix[dy*b.width+dx] = src.pix[sy*src.width+sx]
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
