// Package tex provides a small procedural texture generator for Go.
//
// # Overview
//
// tex builds RGBA pixel buffers from a declarative chain of operations:
// a solid base fill followed by noise, rectangles, circles, lines, flips
// and blits. It is a companion to the GoGPU drawing stack: tex produces
// the pixels, encoding and display are left to its consumers.
//
// # Quick Start
//
//	import "github.com/gogpu/tex"
//
//	// Grass: flat green roughed up with a little noise.
//	buf, err := tex.New(64, 64, tex.Hex("#340f")).
//		Grunge(0.1).
//		Noise(1.5).
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// The buffer implements image.Image.
//	_ = buf.SavePNG("grass.png")
//
// Operations can also be applied directly to a Buffer, or represented as
// values ([NoiseOp], [RectOp], ...) and interpreted by a [Builder], which
// makes a texture recipe inspectable and testable step by step.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Pixels
// are stored row-major as float64 RGBA colors in [0, 1].
//
// # Clipping
//
// Geometry that falls outside the buffer is clipped silently: circles,
// lines and blits skip out-of-range pixels, rectangles that do not fit
// entirely are not drawn at all. Off-canvas drawing is never an error.
//
// # Determinism
//
// Noise reseeds its generator on every invocation, so the same recipe
// always produces the same pixels. See [Builder.Noise] and [WithNoiseSeed].
package tex
