// Package rough converts idealized geometric primitives into randomized,
// hand-drawn-looking stroke vectors.
//
// # Overview
//
// Given a shape and a deterministic seed, rough produces a reproducible set
// of drawing instructions whose jitter, double-stroking, and curve
// imperfections imitate pencil or pen sketching while preserving the shape's
// recognizable outline. The library is a pure, synchronous transform: it
// emits [OpSet] values and leaves rasterization or markup generation to a
// rendering backend of the caller's choosing.
//
// # Quick Start
//
//	import "github.com/cxz/rough"
//
//	o := rough.NewOptions(rough.WithSeed(42))
//
//	// A sketchy line: two overlapping, independently jittered strokes.
//	ops := rough.Line(0, 0, 200, 120, o)
//
//	// A sketchy circle.
//	ops = rough.Ellipse(100, 100, 80, 80, o)
//
//	// A full SVG-style path.
//	ops = rough.SketchPath("M10 10 C 20 20, 40 20, 50 10", o)
//
// # Determinism
//
// All randomness flows from the seeded [Random] source attached lazily to an
// [Options] value. Two runs with identical inputs and the same nonzero seed
// produce identical coordinate sequences. With Roughness 0 every emitted
// coordinate equals its unperturbed input exactly.
//
// # Output Contract
//
// Every operation returns an [OpSet]: an ordered list of move, lineTo,
// curve, and qcurveTo instructions tagged as an outline path or a fill path.
// See cmd/roughdemo for an example consumer that turns OpSets into SVG
// markup and rasterized PNGs.
//
// # Fill Strategies
//
// Solid fill is built in. Pattern fills (hatching, cross-hatching, ...) are
// delegated to a caller-supplied [PatternFiller]; fillers receive a
// [RenderHelper] so they can build their own sketchy strokes with the same
// perturbation engine.
package rough
