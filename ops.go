package rough

// OpType identifies one drawing instruction.
type OpType int

const (
	// OpMove relocates the pen. Data: [x, y].
	OpMove OpType = iota
	// OpLineTo draws a straight segment. Data: [x, y].
	OpLineTo
	// OpCurveTo draws one or more chained cubic Bezier segments. Data:
	// one anchor pair followed by any number of (c1x, c1y, c2x, c2y, x, y)
	// triples, so a whole multi-segment spline fits in a single op.
	OpCurveTo
	// OpQCurveTo draws a quadratic Bezier segment. Data: [cx, cy, x, y].
	OpQCurveTo
)

// String returns the wire name of the op, matching the renderer contract.
func (t OpType) String() string {
	switch t {
	case OpMove:
		return "move"
	case OpLineTo:
		return "lineTo"
	case OpCurveTo:
		return "curve"
	case OpQCurveTo:
		return "qcurveTo"
	}
	return "unknown"
}

// Op is one drawing instruction: an opcode plus its flattened coordinate
// list. Ops are immutable once built.
type Op struct {
	Op   OpType
	Data []float64
}

// OpSetKind tags an OpSet as an outline or a fill.
type OpSetKind int

const (
	// KindPath is a stroked outline.
	KindPath OpSetKind = iota
	// KindFillPath is a filled region.
	KindFillPath
)

// String returns the wire name of the kind.
func (k OpSetKind) String() string {
	if k == KindFillPath {
		return "fillPath"
	}
	return "path"
}

// OpSet is an ordered collection of drawing instructions for one logical
// shape, the sole artifact handed to a rendering backend.
type OpSet struct {
	Kind OpSetKind
	Ops  []Op
}

// curveOps counts the cubic-curve instructions in the set. Each sketchy
// stroke pass contributes exactly one, which makes this the cheap way to
// assert the double-stroke invariant.
func (s OpSet) curveOps() int {
	n := 0
	for _, op := range s.Ops {
		if op.Op == OpCurveTo {
			n++
		}
	}
	return n
}
