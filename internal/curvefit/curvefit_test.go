package curvefit

import (
	"math"
	"strings"
	"testing"
)

func TestSimplify_CollinearCollapses(t *testing.T) {
	var pts []Point
	for i := 0; i <= 20; i++ {
		pts = append(pts, Point{X: float64(i) * 5, Y: float64(i) * 5})
	}
	out := Simplify(pts, 0.5)
	if len(out) != 2 {
		t.Fatalf("reduced to %d points, want the two endpoints", len(out))
	}
	if out[0] != pts[0] || out[1] != pts[len(pts)-1] {
		t.Errorf("endpoints not preserved: %v, %v", out[0], out[1])
	}
}

func TestSimplify_KeepsSignificantDeviations(t *testing.T) {
	pts := []Point{{0, 0}, {25, 5.05}, {50, 10}, {75, 5.05}, {100, 0}}
	out := Simplify(pts, 1)
	found := false
	for _, p := range out {
		if p == (Point{50, 10}) {
			found = true
		}
	}
	if !found {
		t.Error("the peak point was dropped")
	}
	for _, p := range out {
		if p == (Point{25, 5.05}) || p == (Point{75, 5.05}) {
			t.Errorf("near-chord point %v survived tolerance 1", p)
		}
	}
}

func TestSimplify_SmallInputsUntouched(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{name: "empty", pts: nil},
		{name: "single", pts: []Point{{1, 2}}},
		{name: "pair", pts: []Point{{0, 0}, {3, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Simplify(tt.pts, 2)
			if len(out) != len(tt.pts) {
				t.Errorf("length changed: %d -> %d", len(tt.pts), len(out))
			}
		})
	}
}

func TestPerpendicularDistance(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{name: "above midpoint", p: Point{5, 3}, a: Point{0, 0}, b: Point{10, 0}, want: 3},
		{name: "on segment", p: Point{5, 0}, a: Point{0, 0}, b: Point{10, 0}, want: 0},
		{name: "beyond end clamps", p: Point{14, 3}, a: Point{0, 0}, b: Point{10, 0}, want: 5},
		{name: "degenerate segment", p: Point{3, 4}, a: Point{0, 0}, b: Point{0, 0}, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := perpendicularDistance(tt.p, tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFit_TwoPointsSingleSegment(t *testing.T) {
	d := Fit([]Point{{0, 0}, {30, 40}}, false, 1)
	if !strings.HasPrefix(d, "M0 0") {
		t.Errorf("path %q does not start at the first point", d)
	}
	if strings.Count(d, "C") != 1 {
		t.Errorf("path %q has %d cubics, want 1", d, strings.Count(d, "C"))
	}
	if strings.Contains(d, "Z") {
		t.Errorf("open path %q carries a close command", d)
	}
}

func TestFit_TooFewPoints(t *testing.T) {
	if d := Fit(nil, false, 1); d != "" {
		t.Errorf("empty input produced %q", d)
	}
	if d := Fit([]Point{{1, 1}, {1, 1}}, false, 1); d != "" {
		t.Errorf("coincident points produced %q", d)
	}
}

func TestFit_ClosedAppendsZ(t *testing.T) {
	d := Fit([]Point{{0, 0}, {40, 0}, {40, 30}, {0, 30}}, true, 1)
	if !strings.HasSuffix(d, "Z") {
		t.Errorf("closed path %q missing close command", d)
	}
}

func TestFit_AccuracyOnArcSamples(t *testing.T) {
	// Sample a quarter circle densely, fit it, and check the fitted curve
	// stays near the samples at the assigned parameters.
	var pts []Point
	const n = 30
	for i := 0; i <= n; i++ {
		a := float64(i) / n * math.Pi / 2
		pts = append(pts, Point{X: 100 * math.Cos(a), Y: 100 * math.Sin(a)})
	}
	tolerance := 2.0
	leftTangent := pts[1].sub(pts[0]).normalized()
	rightTangent := pts[len(pts)-2].sub(pts[len(pts)-1]).normalized()
	beziers := fitCubic(pts, leftTangent, rightTangent, tolerance)
	if len(beziers) == 0 {
		t.Fatal("no segments fitted")
	}
	if beziers[0][0] != pts[0] {
		t.Errorf("fit starts at %v, want %v", beziers[0][0], pts[0])
	}
	last := beziers[len(beziers)-1]
	if last[3] != pts[len(pts)-1] {
		t.Errorf("fit ends at %v, want %v", last[3], pts[len(pts)-1])
	}
	// Midpoints of each fitted segment stay close to the circle.
	for i, b := range beziers {
		mid := evalBezier(b, 0.5)
		r := mid.length()
		if math.Abs(r-100) > 2 {
			t.Errorf("segment %d midpoint radius %v strays from 100", i, r)
		}
	}
}

func TestFit_SplitsOnSharpCorner(t *testing.T) {
	// A right-angle corner cannot be captured by one cubic within a tight
	// tolerance, so the fitter splits.
	var pts []Point
	for i := 0; i <= 10; i++ {
		pts = append(pts, Point{X: float64(i) * 10, Y: 0})
	}
	for i := 1; i <= 10; i++ {
		pts = append(pts, Point{X: 100, Y: float64(i) * 10})
	}
	d := Fit(pts, false, 0.5)
	if strings.Count(d, "C") < 2 {
		t.Errorf("corner fit %q used %d cubics, want a split", d, strings.Count(d, "C"))
	}
}

func TestNum_Trimming(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 1, want: "1"},
		{in: 1.5, want: "1.5"},
		{in: 1.23456, want: "1.2346"},
		{in: -0.25, want: "-0.25"},
		{in: 100, want: "100"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDedupe(t *testing.T) {
	pts := []Point{{0, 0}, {0, 0}, {1, 1}, {1, 1}, {1, 1}, {2, 2}, {0, 0}}
	out := dedupe(pts)
	want := []Point{{0, 0}, {1, 1}, {2, 2}, {0, 0}}
	if len(out) != len(want) {
		t.Fatalf("length = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestChordLengthParameterize(t *testing.T) {
	u := chordLengthParameterize([]Point{{0, 0}, {10, 0}, {30, 0}, {40, 0}})
	want := []float64{0, 0.25, 0.75, 1}
	for i := range want {
		if math.Abs(u[i]-want[i]) > 1e-9 {
			t.Errorf("u[%d] = %v, want %v", i, u[i], want[i])
		}
	}
}
