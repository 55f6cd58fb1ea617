package rough

import "math"

// Roughness gain attenuates with line length so long lines wobble
// proportionally less: full gain under shortLineLimit, a fixed reduced gain
// above longLineLimit, linear decay in between.
const (
	shortLineLimit = 200.0
	longLineLimit  = 500.0
	longLineGain   = 0.4
)

// lineRoughnessGain returns the length-dependent attenuation factor for a
// line's jitter.
func lineRoughnessGain(length float64) float64 {
	switch {
	case length < shortLineLimit:
		return 1
	case length > longLineLimit:
		return longLineGain
	default:
		return -0.0016668*length + 1.233334
	}
}

// strokeLine appends one jittered stroke pass for the segment (x1,y1)-(x2,y2)
// to ops. A pass is a single cubic curve whose backbone is displaced at a
// randomized diverge point 20-40% along the line and bowed perpendicular to
// the line direction. The overlay pass uses half-magnitude endpoint jitter,
// mimicking a pen retracing its own stroke.
func strokeLine(x1, y1, x2, y2 float64, o *Options, move, overlay bool, ops []Op) []Op {
	lengthSq := (x1-x2)*(x1-x2) + (y1-y2)*(y1-y2)
	length := math.Sqrt(lengthSq)
	gain := lineRoughnessGain(length)

	offset := o.MaxRandomnessOffset
	// Never let a fixed offset dominate a tiny segment.
	if offset*offset*100 > lengthSq {
		offset = length / 10
	}
	halfOffset := offset / 2

	divergePoint := 0.2 + o.random().Next()*0.2

	midDispX := o.Bowing * o.MaxRandomnessOffset * (y2 - y1) / 200
	midDispY := o.Bowing * o.MaxRandomnessOffset * (x1 - x2) / 200
	midDispX = offsetSymmetric(midDispX, o, gain)
	midDispY = offsetSymmetric(midDispY, o, gain)

	endJitter := offset
	if overlay {
		endJitter = halfOffset
	}
	rand := func() float64 { return offsetSymmetric(endJitter, o, gain) }

	sx := x1 + rand()
	sy := y1 + rand()
	if move {
		ops = append(ops, Op{Op: OpMove, Data: []float64{sx, sy}})
	}
	ops = append(ops, Op{Op: OpCurveTo, Data: []float64{
		sx, sy,
		midDispX + x1 + (x2-x1)*divergePoint + rand(),
		midDispY + y1 + (y2-y1)*divergePoint + rand(),
		midDispX + x1 + 2*(x2-x1)*divergePoint + rand(),
		midDispY + y1 + 2*(y2-y1)*divergePoint + rand(),
		x2 + rand(),
		y2 + rand(),
	}})
	return ops
}

// doubleStrokeLine emits the signature sketchy line: two overlapping,
// independently jittered stroke passes.
func doubleStrokeLine(x1, y1, x2, y2 float64, o *Options) []Op {
	ops := strokeLine(x1, y1, x2, y2, o, true, false, nil)
	return strokeLine(x1, y1, x2, y2, o, true, true, ops)
}

// Line draws a sketchy line between two points.
func Line(x1, y1, x2, y2 float64, o *Options) OpSet {
	return OpSet{Kind: KindPath, Ops: doubleStrokeLine(x1, y1, x2, y2, o)}
}

// LinearPath draws a sketchy polyline through the given points, optionally
// closing it back to the first point.
func LinearPath(points []Point, close bool, o *Options) OpSet {
	if len(points) == 2 {
		return Line(points[0].X, points[0].Y, points[1].X, points[1].Y, o)
	}
	var ops []Op
	if len(points) > 2 {
		for i := 0; i < len(points)-1; i++ {
			ops = append(ops, doubleStrokeLine(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y, o)...)
		}
		if close {
			last := points[len(points)-1]
			ops = append(ops, doubleStrokeLine(last.X, last.Y, points[0].X, points[0].Y, o)...)
		}
	}
	return OpSet{Kind: KindPath, Ops: ops}
}

// Polygon draws a closed sketchy polygon through the given vertices.
func Polygon(points []Point, o *Options) OpSet {
	return LinearPath(points, true, o)
}

// Rectangle draws a sketchy rectangle with its top-left corner at (x, y).
func Rectangle(x, y, width, height float64, o *Options) OpSet {
	return Polygon([]Point{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}, o)
}
