package rough

import "math"

// EllipseParams is the derived sizing for one ellipse call: jittered radii
// and the angular increment used to step around the perimeter. Computed once
// and shared between the outline and any fill pass so both agree on size.
type EllipseParams struct {
	RX, RY    float64
	Increment float64
}

// NewEllipseParams derives sampling parameters for an ellipse of the given
// size. The target point count scales with the square root of the
// approximate perimeter relative to the baseline step count, so large
// ellipses get more samples without over-sampling small ones. Radii are
// jittered proportionally to (1 - CurveFitting).
func NewEllipseParams(width, height float64, o *Options) EllipseParams {
	psq := math.Sqrt(math.Pi * 2 * math.Sqrt(((width/2)*(width/2)+(height/2)*(height/2))/2))
	stepCount := math.Max(o.CurveStepCount, o.CurveStepCount/math.Sqrt(200)*psq)
	increment := math.Pi * 2 / stepCount
	rx := math.Abs(width / 2)
	ry := math.Abs(height / 2)
	fitJitter := 1 - o.CurveFitting
	rx += jitter(rx*fitJitter, o)
	ry += jitter(ry*fitJitter, o)
	return EllipseParams{RX: rx, RY: ry, Increment: increment}
}

// Ellipse draws a sketchy ellipse centered at (x, y).
func Ellipse(x, y, width, height float64, o *Options) OpSet {
	params := NewEllipseParams(width, height, o)
	set, _ := EllipseWithParams(x, y, o, params)
	return set
}

// EllipseWithParams draws an ellipse from precomputed parameters. It walks
// the perimeter twice at different stroke offsets and feeds each walk to the
// spline fitter, layering two passes like the double-stroke line. The
// returned points are the first pass's core samples, for fill strategies
// that need the outline.
func EllipseWithParams(x, y float64, o *Options, params EllipseParams) (OpSet, []Point) {
	overlap := params.Increment * offsetRange(0.1, offsetRange(0.4, 1, o, 1), o, 1)
	ap1, cp1 := ellipsePoints(params.Increment, x, y, params.RX, params.RY, 1, overlap, o)
	ops := splineCurve(ap1, nil, o)
	ap2, _ := ellipsePoints(params.Increment, x, y, params.RX, params.RY, 1.5, 0, o)
	ops = append(ops, splineCurve(ap2, nil, o)...)
	return OpSet{Kind: KindPath, Ops: ops}, cp1
}

// checkIncrement guards the boundedness invariant: a zero or negative
// angular step would never terminate the perimeter walk.
func checkIncrement(increment float64) {
	if increment <= 0 {
		panic("rough: angular increment must be positive")
	}
}

// ellipsePoints samples one perimeter walk. With roughness enabled the walk
// starts at a jittered angle, overshoots a full revolution, and adds pulled-
// in joint points around the seam so the closure reads as deliberately
// imperfect. At roughness 0 the samples lie exactly on the ellipse (finer
// step, no joint points), preserving exact geometry.
func ellipsePoints(increment, cx, cy, rx, ry, offset, overlap float64, o *Options) (all, core []Point) {
	checkIncrement(increment)
	if o.Roughness == 0 {
		increment /= 4
		all = append(all, Point{X: cx + rx*math.Cos(-increment), Y: cy + ry*math.Sin(-increment)})
		for angle := 0.0; angle <= math.Pi*2; angle += increment {
			p := Point{X: cx + rx*math.Cos(angle), Y: cy + ry*math.Sin(angle)}
			core = append(core, p)
			all = append(all, p)
		}
		all = append(all, Point{X: cx + rx, Y: cy})
		all = append(all, Point{X: cx + rx*math.Cos(increment), Y: cy + ry*math.Sin(increment)})
		return all, core
	}

	radOffset := jitter(0.5, o) - math.Pi/2
	all = append(all, Point{
		X: jitter(offset, o) + cx + 0.9*rx*math.Cos(radOffset-increment),
		Y: jitter(offset, o) + cy + 0.9*ry*math.Sin(radOffset-increment),
	})
	endAngle := math.Pi*2 + radOffset - 0.01
	for angle := radOffset; angle < endAngle; angle += increment {
		p := Point{
			X: jitter(offset, o) + cx + rx*math.Cos(angle),
			Y: jitter(offset, o) + cy + ry*math.Sin(angle),
		}
		core = append(core, p)
		all = append(all, p)
	}
	all = append(all, Point{
		X: jitter(offset, o) + cx + rx*math.Cos(radOffset+math.Pi*2+overlap*0.5),
		Y: jitter(offset, o) + cy + ry*math.Sin(radOffset+math.Pi*2+overlap*0.5),
	})
	all = append(all, Point{
		X: jitter(offset, o) + cx + 0.98*rx*math.Cos(radOffset+overlap),
		Y: jitter(offset, o) + cy + 0.98*ry*math.Sin(radOffset+overlap),
	})
	all = append(all, Point{
		X: jitter(offset, o) + cx + 0.9*rx*math.Cos(radOffset+overlap*0.5),
		Y: jitter(offset, o) + cy + 0.9*ry*math.Sin(radOffset+overlap*0.5),
	})
	return all, core
}

// Arc draws a sketchy elliptical arc between the start and stop angles
// (radians) on the ellipse of the given size centered at (x, y). Arcs get a
// single jitter pass where full ellipses get two. When closed, the arc is
// joined back to the center: double-stroke sketchy lines in rough closure
// mode, plain straight segments otherwise.
func Arc(x, y, width, height, start, stop float64, closed, roughClosure bool, o *Options) OpSet {
	cx, cy := x, y
	rx := math.Abs(width / 2)
	ry := math.Abs(height / 2)
	rx += jitter(rx*0.01, o)
	ry += jitter(ry*0.01, o)

	strt, stp := normalizeArcSpan(start, stop)
	if stp == strt {
		return OpSet{Kind: KindPath}
	}

	ellipseInc := math.Pi * 2 / o.CurveStepCount
	arcInc := math.Min(ellipseInc/2, (stp-strt)/2)
	ops := arcStroke(arcInc, cx, cy, rx, ry, strt, stp, 1, o)

	if closed {
		if roughClosure {
			ops = append(ops, doubleStrokeLine(cx, cy, cx+rx*math.Cos(strt), cy+ry*math.Sin(strt), o)...)
			ops = append(ops, doubleStrokeLine(cx, cy, cx+rx*math.Cos(stp), cy+ry*math.Sin(stp), o)...)
		} else {
			ops = append(ops,
				Op{Op: OpLineTo, Data: []float64{cx, cy}},
				Op{Op: OpLineTo, Data: []float64{cx + rx*math.Cos(strt), cy + ry*math.Sin(strt)}},
			)
		}
	}
	return OpSet{Kind: KindPath, Ops: ops}
}

// normalizeArcSpan shifts the angles into a non-negative span no larger
// than a full revolution. A requested span over 2 pi collapses to exactly
// [0, 2 pi].
func normalizeArcSpan(start, stop float64) (strt, stp float64) {
	strt, stp = start, stop
	if stp < strt {
		strt, stp = stp, strt
	}
	for strt < 0 {
		strt += math.Pi * 2
		stp += math.Pi * 2
	}
	if stp-strt > math.Pi*2 {
		strt = 0
		stp = math.Pi * 2
	}
	return strt, stp
}

// arcStroke samples one jittered walk along the arc and fits it with the
// spline fitter. The final sample is duplicated exactly at the stop angle so
// the fitted curve lands on the true endpoint.
func arcStroke(increment, cx, cy, rx, ry, strt, stp, offset float64, o *Options) []Op {
	checkIncrement(increment)
	radOffset := strt + jitter(0.1, o)
	points := []Point{{
		X: jitter(offset, o) + cx + 0.9*rx*math.Cos(radOffset-increment),
		Y: jitter(offset, o) + cy + 0.9*ry*math.Sin(radOffset-increment),
	}}
	for angle := radOffset; angle <= stp; angle += increment {
		points = append(points, Point{
			X: jitter(offset, o) + cx + rx*math.Cos(angle),
			Y: jitter(offset, o) + cy + ry*math.Sin(angle),
		})
	}
	end := Point{X: cx + rx*math.Cos(stp), Y: cy + ry*math.Sin(stp)}
	points = append(points, end, end)
	return splineCurve(points, nil, o)
}
