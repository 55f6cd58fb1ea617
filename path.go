package rough

import (
	"github.com/cxz/rough/internal/curvefit"
	"github.com/cxz/rough/internal/pathdata"
)

// pathCursor is the interpreter state for one SketchPath invocation: pen
// position, the recorded path start for close commands, and the reflection
// points that let smooth curve commands mirror the previous command's
// control point.
type pathCursor struct {
	pos      Point
	first    Point
	hasFirst bool

	cubicReflect Point
	quadReflect  Point
	lastCubic    bool
	lastQuad     bool
}

// SketchPath walks an SVG-style path-data string and re-emits every command
// as sketchy strokes. Unrecognized commands are skipped without moving the
// cursor; degenerate arcs degrade to straight lines. When Simplification is
// set in (0, 1), the path is first flattened, reduced, and refit to a
// smaller Bezier path before interpretation.
func SketchPath(d string, o *Options) OpSet {
	segments := pathdata.Parse(d)
	if o.Simplification > 0 && o.Simplification < 1 {
		segments = refitSegments(segments, o)
	}
	var ops []Op
	cur := &pathCursor{}
	for _, seg := range segments {
		ops = processSegment(cur, seg, o, ops)
	}
	return OpSet{Kind: KindPath, Ops: ops}
}

// processSegment dispatches one parsed command against the cursor state and
// appends the resulting ops.
func processSegment(cur *pathCursor, seg pathdata.Segment, o *Options, ops []Op) []Op {
	wasCubic, wasQuad := false, false

	switch seg.Key {
	case 'M', 'm':
		if len(seg.Data) < 2 {
			break
		}
		target := Point{X: seg.Data[0], Y: seg.Data[1]}
		if seg.Key == 'm' {
			target = cur.pos.Add(target)
		}
		ro := o.MaxRandomnessOffset
		ops = append(ops, Op{Op: OpMove, Data: []float64{
			target.X + jitter(ro, o),
			target.Y + jitter(ro, o),
		}})
		cur.pos = target
		if !cur.hasFirst {
			cur.first = target
			cur.hasFirst = true
		}

	case 'L', 'l':
		if len(seg.Data) < 2 {
			break
		}
		target := Point{X: seg.Data[0], Y: seg.Data[1]}
		if seg.Key == 'l' {
			target = cur.pos.Add(target)
		}
		ops = append(ops, doubleStrokeLine(cur.pos.X, cur.pos.Y, target.X, target.Y, o)...)
		cur.pos = target

	case 'H', 'h':
		if len(seg.Data) < 1 {
			break
		}
		x := seg.Data[0]
		if seg.Key == 'h' {
			x += cur.pos.X
		}
		ops = append(ops, doubleStrokeLine(cur.pos.X, cur.pos.Y, x, cur.pos.Y, o)...)
		cur.pos.X = x

	case 'V', 'v':
		if len(seg.Data) < 1 {
			break
		}
		y := seg.Data[0]
		if seg.Key == 'v' {
			y += cur.pos.Y
		}
		ops = append(ops, doubleStrokeLine(cur.pos.X, cur.pos.Y, cur.pos.X, y, o)...)
		cur.pos.Y = y

	case 'Z', 'z':
		if cur.hasFirst {
			ops = append(ops, doubleStrokeLine(cur.pos.X, cur.pos.Y, cur.first.X, cur.first.Y, o)...)
			cur.pos = cur.first
			cur.hasFirst = false
		}

	case 'C', 'c':
		if len(seg.Data) < 6 {
			break
		}
		c1 := Point{X: seg.Data[0], Y: seg.Data[1]}
		c2 := Point{X: seg.Data[2], Y: seg.Data[3]}
		target := Point{X: seg.Data[4], Y: seg.Data[5]}
		if seg.Key == 'c' {
			c1 = cur.pos.Add(c1)
			c2 = cur.pos.Add(c2)
			target = cur.pos.Add(target)
		}
		ops = sketchCubic(cur, c1, c2, target, o, ops)
		wasCubic = true

	case 'S', 's':
		if len(seg.Data) < 4 {
			break
		}
		c2 := Point{X: seg.Data[0], Y: seg.Data[1]}
		target := Point{X: seg.Data[2], Y: seg.Data[3]}
		if seg.Key == 's' {
			c2 = cur.pos.Add(c2)
			target = cur.pos.Add(target)
		}
		// Mirror the previous cubic's control point only when the previous
		// command was itself a cubic; otherwise there is no tangent to
		// continue and the first control collapses onto the second.
		c1 := c2
		if cur.lastCubic {
			c1 = cur.cubicReflect
		}
		ops = sketchCubic(cur, c1, c2, target, o, ops)
		wasCubic = true

	case 'Q', 'q':
		if len(seg.Data) < 4 {
			break
		}
		cp := Point{X: seg.Data[0], Y: seg.Data[1]}
		target := Point{X: seg.Data[2], Y: seg.Data[3]}
		if seg.Key == 'q' {
			cp = cur.pos.Add(cp)
			target = cur.pos.Add(target)
		}
		ops = sketchQuad(cur, cp, target, o, ops)
		wasQuad = true

	case 'T', 't':
		if len(seg.Data) < 2 {
			break
		}
		target := Point{X: seg.Data[0], Y: seg.Data[1]}
		if seg.Key == 't' {
			target = cur.pos.Add(target)
		}
		cp := target
		if cur.lastQuad {
			cp = cur.quadReflect
		}
		ops = sketchQuad(cur, cp, target, o, ops)
		wasQuad = true

	case 'A', 'a':
		if len(seg.Data) < 7 {
			break
		}
		rx, ry := seg.Data[0], seg.Data[1]
		rotation := seg.Data[2]
		largeArc := seg.Data[3] != 0
		sweep := seg.Data[4] != 0
		target := Point{X: seg.Data[5], Y: seg.Data[6]}
		if seg.Key == 'a' {
			target = cur.pos.Add(target)
		}
		switch {
		case target == cur.pos:
			// Zero-length arc, nothing to draw.
		case rx == 0 || ry == 0:
			ops = append(ops, doubleStrokeLine(cur.pos.X, cur.pos.Y, target.X, target.Y, o)...)
			cur.pos = target
		default:
			conv := newArcConverter(cur.pos, target, rx, ry, rotation, largeArc, sweep)
			current := cur.pos
			for {
				c1, c2, end, ok := conv.Next()
				if !ok {
					break
				}
				ops = cubicPasses(current, c1, c2, end, o, ops)
				current = end
			}
			cur.pos = target
		}

	default:
		Logger().Debug("skipping unsupported path command", "command", string(seg.Key))
	}

	cur.lastCubic = wasCubic
	cur.lastQuad = wasQuad
	return ops
}

// sketchCubic emits the two jittered passes for a cubic segment and records
// the mirror point for a following smooth-cubic command.
func sketchCubic(cur *pathCursor, c1, c2, target Point, o *Options, ops []Op) []Op {
	ops = cubicPasses(cur.pos, c1, c2, target, o, ops)
	cur.cubicReflect = target.Add(target.Sub(c2))
	cur.pos = target
	return ops
}

// cubicPasses draws one cubic segment as two overlapping jittered curve
// ops, the second at a slightly larger magnitude and a displaced start.
func cubicPasses(from, c1, c2, target Point, o *Options, ops []Op) []Op {
	ro := o.MaxRandomnessOffset
	magnitudes := [2]float64{ro, ro + 0.3}
	for i, m := range magnitudes {
		start := from
		if i > 0 {
			start = Point{X: from.X + jitter(magnitudes[0], o), Y: from.Y + jitter(magnitudes[0], o)}
		}
		ops = append(ops, Op{Op: OpMove, Data: []float64{start.X, start.Y}})
		ops = append(ops, Op{Op: OpCurveTo, Data: []float64{
			start.X, start.Y,
			c1.X + jitter(m, o), c1.Y + jitter(m, o),
			c2.X + jitter(m, o), c2.Y + jitter(m, o),
			target.X + jitter(m, o), target.Y + jitter(m, o),
		}})
	}
	return ops
}

// sketchQuad emits the two jittered passes for a quadratic segment directly
// as qcurveTo ops and records the mirror point for smooth-quadratic.
func sketchQuad(cur *pathCursor, cp, target Point, o *Options, ops []Op) []Op {
	ro := o.MaxRandomnessOffset
	magnitudes := [2]float64{ro, ro + 0.3}
	for i, m := range magnitudes {
		start := cur.pos
		if i > 0 {
			start = Point{X: cur.pos.X + jitter(magnitudes[0], o), Y: cur.pos.Y + jitter(magnitudes[0], o)}
		}
		ops = append(ops, Op{Op: OpMove, Data: []float64{start.X, start.Y}})
		ops = append(ops, Op{Op: OpQCurveTo, Data: []float64{
			cp.X + jitter(m, o), cp.Y + jitter(m, o),
			target.X + jitter(m, o), target.Y + jitter(m, o),
		}})
	}
	cur.quadReflect = target.Add(target.Sub(cp))
	cur.pos = target
	return ops
}

// curveSampleSteps is the per-segment sampling density used when a path is
// flattened for the simplification pre-pass.
const curveSampleSteps = 10

// refitSegments flattens the parsed path to a polyline, reduces it, and
// least-squares-refits the survivors as a new Bezier path, which is then
// re-parsed. The tolerance grows as Simplification approaches 1.
func refitSegments(segments []pathdata.Segment, o *Options) []pathdata.Segment {
	points, closed := flattenSegments(segments)
	if len(points) < 2 {
		return segments
	}
	tolerance := o.Simplification * 4
	in := make([]curvefit.Point, len(points))
	for i, p := range points {
		in[i] = curvefit.Point{X: p.X, Y: p.Y}
	}
	reduced := curvefit.Simplify(in, tolerance)
	d := curvefit.Fit(reduced, closed, tolerance)
	if d == "" {
		return segments
	}
	Logger().Debug("simplified path",
		"points", len(points), "reduced", len(reduced), "tolerance", tolerance)
	return pathdata.Parse(d)
}

// flattenSegments samples the path into one ordered point sequence,
// reporting whether the path ended with a close command. Only the geometry
// matters here, so relative commands are resolved and curves are sampled at
// a fixed density.
func flattenSegments(segments []pathdata.Segment) ([]Point, bool) {
	var points []Point
	var cur pathCursor
	closed := false
	push := func(p Point) {
		if len(points) == 0 || points[len(points)-1] != p {
			points = append(points, p)
		}
	}
	for _, seg := range segments {
		closed = seg.Key == 'Z' || seg.Key == 'z'
		wasCubic, wasQuad := false, false
		switch seg.Key {
		case 'M', 'm':
			target := absPoint(seg.Data[0], seg.Data[1], seg.Key == 'm', cur.pos)
			cur.pos = target
			if !cur.hasFirst {
				cur.first = target
				cur.hasFirst = true
			}
			push(target)
		case 'L', 'l':
			cur.pos = absPoint(seg.Data[0], seg.Data[1], seg.Key == 'l', cur.pos)
			push(cur.pos)
		case 'H', 'h':
			x := seg.Data[0]
			if seg.Key == 'h' {
				x += cur.pos.X
			}
			cur.pos.X = x
			push(cur.pos)
		case 'V', 'v':
			y := seg.Data[0]
			if seg.Key == 'v' {
				y += cur.pos.Y
			}
			cur.pos.Y = y
			push(cur.pos)
		case 'Z', 'z':
			if cur.hasFirst {
				cur.pos = cur.first
				cur.hasFirst = false
				push(cur.pos)
			}
		case 'C', 'c':
			rel := seg.Key == 'c'
			c1 := absPoint(seg.Data[0], seg.Data[1], rel, cur.pos)
			c2 := absPoint(seg.Data[2], seg.Data[3], rel, cur.pos)
			target := absPoint(seg.Data[4], seg.Data[5], rel, cur.pos)
			points = CubicBez{P0: cur.pos, P1: c1, P2: c2, P3: target}.Flatten(curveSampleSteps, points)
			cur.pos = target
			cur.cubicReflect = target.Add(target.Sub(c2))
			wasCubic = true
		case 'S', 's':
			rel := seg.Key == 's'
			c2 := absPoint(seg.Data[0], seg.Data[1], rel, cur.pos)
			target := absPoint(seg.Data[2], seg.Data[3], rel, cur.pos)
			c1 := c2
			if cur.lastCubic {
				c1 = cur.cubicReflect
			}
			points = CubicBez{P0: cur.pos, P1: c1, P2: c2, P3: target}.Flatten(curveSampleSteps, points)
			cur.pos = target
			cur.cubicReflect = target.Add(target.Sub(c2))
			wasCubic = true
		case 'Q', 'q':
			rel := seg.Key == 'q'
			cp := absPoint(seg.Data[0], seg.Data[1], rel, cur.pos)
			target := absPoint(seg.Data[2], seg.Data[3], rel, cur.pos)
			points = QuadBez{P0: cur.pos, P1: cp, P2: target}.Raise().Flatten(curveSampleSteps, points)
			cur.pos = target
			cur.quadReflect = target.Add(target.Sub(cp))
			wasQuad = true
		case 'T', 't':
			target := absPoint(seg.Data[0], seg.Data[1], seg.Key == 't', cur.pos)
			cp := target
			if cur.lastQuad {
				cp = cur.quadReflect
			}
			points = QuadBez{P0: cur.pos, P1: cp, P2: target}.Raise().Flatten(curveSampleSteps, points)
			cur.pos = target
			cur.quadReflect = target.Add(target.Sub(cp))
			wasQuad = true
		case 'A', 'a':
			target := absPoint(seg.Data[5], seg.Data[6], seg.Key == 'a', cur.pos)
			if target == cur.pos {
				break
			}
			if seg.Data[0] == 0 || seg.Data[1] == 0 {
				push(target)
				cur.pos = target
				break
			}
			conv := newArcConverter(cur.pos, target, seg.Data[0], seg.Data[1], seg.Data[2], seg.Data[3] != 0, seg.Data[4] != 0)
			current := cur.pos
			for {
				c1, c2, end, ok := conv.Next()
				if !ok {
					break
				}
				points = CubicBez{P0: current, P1: c1, P2: c2, P3: end}.Flatten(curveSampleSteps, points)
				current = end
			}
			cur.pos = target
		}
		cur.lastCubic = wasCubic
		cur.lastQuad = wasQuad
	}
	return points, closed
}

func absPoint(x, y float64, rel bool, pos Point) Point {
	p := Point{X: x, Y: y}
	if rel {
		p = pos.Add(p)
	}
	return p
}
