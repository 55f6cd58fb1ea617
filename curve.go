package rough

// splineCurve converts an ordered point sequence (already jittered by the
// caller) into a smooth multi-segment cubic using Catmull-Rom-derived
// control points: interior control points sit 1/6 of the tightness-scaled
// vector to the neighboring points away, giving smooth tangents without
// externally supplied derivatives.
//
// Input length policy:
//   - >= 4 points: full chain, (n-3) chained cubic triples in one curve op,
//     plus an optional jittered straight segment to closePoint.
//   - 3 points: one degenerate cubic whose control points coincide with the
//     two data points.
//   - 2 points: a plain double-stroke line.
//   - fewer: nothing.
func splineCurve(points []Point, closePoint *Point, o *Options) []Op {
	switch n := len(points); {
	case n < 2:
		return nil
	case n == 2:
		return doubleStrokeLine(points[0].X, points[0].Y, points[1].X, points[1].Y, o)
	case n == 3:
		return []Op{
			{Op: OpMove, Data: []float64{points[1].X, points[1].Y}},
			{Op: OpCurveTo, Data: []float64{
				points[1].X, points[1].Y,
				points[1].X, points[1].Y,
				points[2].X, points[2].Y,
				points[2].X, points[2].Y,
			}},
		}
	}

	s := 1 - o.CurveTightness
	data := []float64{points[1].X, points[1].Y}
	for i := 1; i+2 < len(points); i++ {
		p := points[i]
		data = append(data,
			p.X+(s*points[i+1].X-s*points[i-1].X)/6,
			p.Y+(s*points[i+1].Y-s*points[i-1].Y)/6,
			points[i+1].X+(s*p.X-s*points[i+2].X)/6,
			points[i+1].Y+(s*p.Y-s*points[i+2].Y)/6,
			points[i+1].X,
			points[i+1].Y,
		)
	}
	ops := []Op{
		{Op: OpMove, Data: []float64{points[1].X, points[1].Y}},
		{Op: OpCurveTo, Data: data},
	}
	if closePoint != nil {
		ro := o.MaxRandomnessOffset
		ops = append(ops, Op{Op: OpLineTo, Data: []float64{
			closePoint.X + jitter(ro, o),
			closePoint.Y + jitter(ro, o),
		}})
	}
	return ops
}

// curveWithOffset jitters every input point by the given magnitude,
// duplicating the first and last points so the Catmull-Rom chain reaches
// both ends, then hands the sequence to the spline fitter.
func curveWithOffset(points []Point, offset float64, o *Options) []Op {
	if len(points) == 0 {
		return nil
	}
	ps := make([]Point, 0, len(points)+2)
	ps = append(ps, jitterPoint(points[0], offset, o))
	ps = append(ps, jitterPoint(points[0], offset, o))
	for i := 1; i < len(points); i++ {
		ps = append(ps, jitterPoint(points[i], offset, o))
		if i == len(points)-1 {
			ps = append(ps, jitterPoint(points[i], offset, o))
		}
	}
	return splineCurve(ps, nil, o)
}

func jitterPoint(p Point, offset float64, o *Options) Point {
	return Point{X: p.X + jitter(offset, o), Y: p.Y + jitter(offset, o)}
}

// Curve draws a sketchy curve through the given points as two layered
// spline passes at different jitter magnitudes, mirroring the double-stroke
// treatment of straight lines.
func Curve(points []Point, o *Options) OpSet {
	ops := curveWithOffset(points, 1*(1+o.Roughness*0.2), o)
	ops = append(ops, curveWithOffset(points, 1.5*(1+o.Roughness*0.22), o)...)
	return OpSet{Kind: KindPath, Ops: ops}
}
