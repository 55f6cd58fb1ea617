package rough

import "math"

// PatternFiller is the strategy interface for decorative fills (hatching,
// cross-hatching, dots, ...). Implementations live outside this core and are
// selected by the caller; the core only hands them the raw vertex list and
// the active configuration.
type PatternFiller interface {
	FillPolygons(polygons [][]Point, o *Options) OpSet
}

// RenderHelper is the capability surface handed to PatternFiller
// implementations so they can build their own sketchy strokes with the same
// perturbation engine as the core.
type RenderHelper interface {
	// RandOffset returns a jittered offset in [-x, x).
	RandOffset(x float64, o *Options) float64
	// RandOffsetWithRange returns a jittered offset in [min, max).
	RandOffsetWithRange(min, max float64, o *Options) float64
	// Ellipse draws a sketchy ellipse.
	Ellipse(x, y, width, height float64, o *Options) OpSet
	// DoubleLineOps emits a double-stroke sketchy line.
	DoubleLineOps(x1, y1, x2, y2 float64, o *Options) []Op
}

type renderHelper struct{}

// NewRenderHelper returns the core-backed RenderHelper given to fillers.
func NewRenderHelper() RenderHelper { return renderHelper{} }

func (renderHelper) RandOffset(x float64, o *Options) float64 {
	return jitter(x, o)
}

func (renderHelper) RandOffsetWithRange(min, max float64, o *Options) float64 {
	return offsetRange(min, max, o, 1)
}

func (renderHelper) Ellipse(x, y, width, height float64, o *Options) OpSet {
	return Ellipse(x, y, width, height, o)
}

func (renderHelper) DoubleLineOps(x1, y1, x2, y2 float64, o *Options) []Op {
	return doubleStrokeLine(x1, y1, x2, y2, o)
}

// SolidFillPolygons emits a filled-path outline following each polygon's
// vertices in order, every vertex jittered independently by
// MaxRandomnessOffset.
func SolidFillPolygons(polygons [][]Point, o *Options) OpSet {
	var ops []Op
	for _, points := range polygons {
		if len(points) == 0 {
			continue
		}
		offset := o.MaxRandomnessOffset
		for i, p := range points {
			data := []float64{p.X + jitter(offset, o), p.Y + jitter(offset, o)}
			if i == 0 {
				ops = append(ops, Op{Op: OpMove, Data: data})
			} else {
				ops = append(ops, Op{Op: OpLineTo, Data: data})
			}
		}
	}
	return OpSet{Kind: KindFillPath, Ops: ops}
}

// PatternFillPolygons delegates the unjittered vertex lists to the injected
// filler strategy. A nil filler degrades to solid fill, keeping the
// best-effort rendering policy.
func PatternFillPolygons(polygons [][]Point, o *Options, filler PatternFiller) OpSet {
	if filler == nil {
		return SolidFillPolygons(polygons, o)
	}
	return filler.FillPolygons(polygons, o)
}

// PatternFillArc pattern-fills an elliptical arc by approximating it as a
// closed polygon: CurveStepCount samples along the arc plus a closing pair
// through the arc's center.
func PatternFillArc(x, y, width, height, start, stop float64, o *Options, filler PatternFiller) OpSet {
	cx, cy := x, y
	rx := math.Abs(width / 2)
	ry := math.Abs(height / 2)
	strt, stp := normalizeArcSpan(start, stop)
	if stp == strt {
		return OpSet{Kind: KindFillPath}
	}

	increment := (stp - strt) / o.CurveStepCount
	checkIncrement(increment)
	var points []Point
	for angle := strt; angle <= stp; angle += increment {
		points = append(points, Point{X: cx + rx*math.Cos(angle), Y: cy + ry*math.Sin(angle)})
	}
	points = append(points, Point{X: cx + rx*math.Cos(stp), Y: cy + ry*math.Sin(stp)})
	points = append(points, Point{X: cx, Y: cy})
	return PatternFillPolygons([][]Point{points}, o, filler)
}
