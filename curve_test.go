package rough

import (
	"testing"
)

func TestSplineCurve_LengthPolicy(t *testing.T) {
	pts := []Point{{0, 0}, {10, 5}, {20, 0}, {30, 5}, {40, 0}, {50, 5}}

	tests := []struct {
		name   string
		points []Point
	}{
		{name: "four points", points: pts[:4]},
		{name: "five points", points: pts[:5]},
		{name: "six points", points: pts},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOptions(WithSeed(9))
			ops := splineCurve(tt.points, nil, o)
			if len(ops) != 2 {
				t.Fatalf("op count = %d, want move+curve", len(ops))
			}
			if ops[0].Op != OpMove || ops[1].Op != OpCurveTo {
				t.Fatalf("ops = [%v %v], want [move curve]", ops[0].Op, ops[1].Op)
			}
			// One anchor pair plus (n-3) chained cubic triples.
			wantLen := 2 + 6*(len(tt.points)-3)
			if len(ops[1].Data) != wantLen {
				t.Errorf("curve data length = %d, want %d", len(ops[1].Data), wantLen)
			}
		})
	}
}

func TestSplineCurve_ThreePointsDegenerate(t *testing.T) {
	o := NewOptions(WithSeed(9))
	ops := splineCurve([]Point{{0, 0}, {10, 10}, {20, 0}}, nil, o)
	if len(ops) != 2 {
		t.Fatalf("op count = %d, want 2", len(ops))
	}
	curve := ops[1]
	if curve.Op != OpCurveTo {
		t.Fatalf("second op = %v, want curve", curve.Op)
	}
	// Control points coincide with the two data points.
	want := []float64{10, 10, 10, 10, 20, 0, 20, 0}
	if len(curve.Data) != len(want) {
		t.Fatalf("data length = %d, want %d", len(curve.Data), len(want))
	}
	for i, v := range want {
		if curve.Data[i] != v {
			t.Errorf("data[%d] = %v, want %v", i, curve.Data[i], v)
		}
	}
}

func TestSplineCurve_TwoPointsFallsBackToLine(t *testing.T) {
	a := splineCurve([]Point{{0, 0}, {50, 20}}, nil, NewOptions(WithSeed(4)))
	b := doubleStrokeLine(0, 0, 50, 20, NewOptions(WithSeed(4)))
	if len(a) != len(b) {
		t.Fatalf("op counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Op != b[i].Op {
			t.Errorf("op %d: %v vs %v", i, a[i].Op, b[i].Op)
		}
		if len(a[i].Data) != len(b[i].Data) {
			t.Errorf("op %d data length: %d vs %d", i, len(a[i].Data), len(b[i].Data))
		}
	}
}

func TestSplineCurve_TooFewPoints(t *testing.T) {
	o := NewOptions(WithSeed(4))
	if ops := splineCurve(nil, nil, o); ops != nil {
		t.Errorf("nil input produced %d ops", len(ops))
	}
	if ops := splineCurve([]Point{{1, 2}}, nil, o); ops != nil {
		t.Errorf("single point produced %d ops", len(ops))
	}
}

func TestSplineCurve_ClosePoint(t *testing.T) {
	o := NewOptions(WithSeed(4))
	close := Point{X: 0, Y: 0}
	ops := splineCurve([]Point{{0, 0}, {10, 5}, {20, 0}, {30, 5}}, &close, o)
	last := ops[len(ops)-1]
	if last.Op != OpLineTo {
		t.Errorf("closing op = %v, want lineTo", last.Op)
	}
}

func TestCurve_DoublePassInvariant(t *testing.T) {
	pts := []Point{{0, 0}, {25, 40}, {50, 0}, {75, 40}, {100, 0}}
	set := Curve(pts, NewOptions(WithSeed(12)))
	if got := set.curveOps(); got != 2 {
		t.Errorf("curve ops = %d, want 2 layered passes", got)
	}
}

func TestCurve_TightnessOneIsPolyline(t *testing.T) {
	// Tightness 1 zeroes the control-point offsets: every control point
	// collapses onto its data point.
	o := NewOptions(WithSeed(1), WithRoughness(0), WithCurveTightness(1))
	pts := []Point{{0, 0}, {10, 10}, {20, 0}, {30, 10}, {40, 0}}
	ops := splineCurve(pts, nil, o)
	d := ops[1].Data
	for i := 2; i+5 < len(d); i += 6 {
		seg := (i - 2) / 6
		p := pts[seg+1]
		q := pts[seg+2]
		if !pointsEqual(Pt(d[i], d[i+1]), p, epsilon) {
			t.Errorf("segment %d control1 = (%v,%v), want %v", seg, d[i], d[i+1], p)
		}
		if !pointsEqual(Pt(d[i+2], d[i+3]), q, epsilon) {
			t.Errorf("segment %d control2 = (%v,%v), want %v", seg, d[i+2], d[i+3], q)
		}
	}
}

func TestCurve_Determinism(t *testing.T) {
	pts := []Point{{0, 0}, {30, 60}, {90, 10}, {120, 70}}
	a := Curve(pts, NewOptions(WithSeed(31)))
	b := Curve(pts, NewOptions(WithSeed(31)))
	if len(a.Ops) != len(b.Ops) {
		t.Fatalf("op counts differ")
	}
	for i := range a.Ops {
		for j := range a.Ops[i].Data {
			if a.Ops[i].Data[j] != b.Ops[i].Data[j] {
				t.Fatalf("op %d datum %d differs", i, j)
			}
		}
	}
}
