// Package curvefit refits a polyline as a reduced piecewise-cubic Bezier
// path. It combines Ramer-Douglas-Peucker point reduction with Schneider's
// least-squares cubic fitting (Graphics Gems, "An Algorithm for
// Automatically Fitting Digitized Curves") and serializes the result as SVG
// path data, trading fidelity for fewer, smoother segments.
package curvefit

import (
	"fmt"
	"math"
	"strings"
)

// Point is a 2D coordinate. The package is self-contained so it can sit
// below the main geometry package.
type Point struct {
	X, Y float64
}

func (p Point) sub(q Point) Point      { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) add(q Point) Point      { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) mul(s float64) Point    { return Point{p.X * s, p.Y * s} }
func (p Point) dot(q Point) float64    { return p.X*q.X + p.Y*q.Y }
func (p Point) length() float64        { return math.Hypot(p.X, p.Y) }
func (p Point) dist(q Point) float64   { return p.sub(q).length() }
func (p Point) normalized() Point {
	l := p.length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// bezier is one cubic segment: endpoints b[0], b[3] and controls b[1], b[2].
type bezier [4]Point

// Simplify reduces a polyline with the Ramer-Douglas-Peucker algorithm:
// points closer than tolerance to the chord of their neighborhood are
// dropped.
func Simplify(points []Point, tolerance float64) []Point {
	if len(points) < 3 || tolerance <= 0 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}
	keep := make([]bool, len(points))
	keep[0], keep[len(points)-1] = true, true
	rdp(points, 0, len(points)-1, tolerance, keep)
	var out []Point
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

func rdp(points []Point, first, last int, tolerance float64, keep []bool) {
	if last <= first+1 {
		return
	}
	maxDist := 0.0
	index := first
	for i := first + 1; i < last; i++ {
		d := perpendicularDistance(points[i], points[first], points[last])
		if d > maxDist {
			maxDist = d
			index = i
		}
	}
	if maxDist > tolerance {
		keep[index] = true
		rdp(points, first, index, tolerance, keep)
		rdp(points, index, last, tolerance, keep)
	}
}

func perpendicularDistance(p, a, b Point) float64 {
	ab := b.sub(a)
	lenSq := ab.dot(ab)
	if lenSq == 0 {
		return p.dist(a)
	}
	t := p.sub(a).dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.dist(a.add(ab.mul(t)))
}

// Fit least-squares-fits a cubic Bezier path through the points and returns
// it as SVG path data ("M ... C ... [Z]"). The error threshold is the
// maximum allowed squared-distance-ish deviation before a segment is split.
// Fewer than two distinct points produce an empty string.
func Fit(points []Point, closed bool, tolerance float64) string {
	pts := dedupe(points)
	if closed && len(pts) > 2 && pts[len(pts)-1] != pts[0] {
		pts = append(pts, pts[0])
	}
	if len(pts) < 2 {
		return ""
	}
	if tolerance <= 0 {
		tolerance = 1
	}

	leftTangent := pts[1].sub(pts[0]).normalized()
	rightTangent := pts[len(pts)-2].sub(pts[len(pts)-1]).normalized()
	beziers := fitCubic(pts, leftTangent, rightTangent, tolerance)

	var sb strings.Builder
	fmt.Fprintf(&sb, "M%s %s", num(pts[0].X), num(pts[0].Y))
	for _, b := range beziers {
		fmt.Fprintf(&sb, "C%s %s, %s %s, %s %s",
			num(b[1].X), num(b[1].Y), num(b[2].X), num(b[2].Y), num(b[3].X), num(b[3].Y))
	}
	if closed {
		sb.WriteByte('Z')
	}
	return sb.String()
}

func num(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
}

func dedupe(points []Point) []Point {
	var out []Point
	for _, p := range points {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return out
}

// fitCubic fits one cubic to the point range, recursively splitting at the
// point of maximum error when the fit is not good enough.
func fitCubic(points []Point, tHat1, tHat2 Point, tolerance float64) []bezier {
	if len(points) == 2 {
		dist := points[0].dist(points[1]) / 3
		return []bezier{{
			points[0],
			points[0].add(tHat1.mul(dist)),
			points[1].add(tHat2.mul(dist)),
			points[1],
		}}
	}

	u := chordLengthParameterize(points)
	bez := generateBezier(points, u, tHat1, tHat2)
	maxErr, splitIdx := maxError(points, bez, u)
	if maxErr < tolerance {
		return []bezier{bez}
	}

	// If the error is not hopeless, a few reparameterization iterations
	// often rescue the single-segment fit.
	if maxErr < tolerance*tolerance {
		for i := 0; i < 20; i++ {
			u = reparameterize(bez, points, u)
			bez = generateBezier(points, u, tHat1, tHat2)
			maxErr, splitIdx = maxError(points, bez, u)
			if maxErr < tolerance {
				return []bezier{bez}
			}
		}
	}

	centerTangent := points[splitIdx-1].sub(points[splitIdx+1]).normalized()
	left := fitCubic(points[:splitIdx+1], tHat1, centerTangent, tolerance)
	right := fitCubic(points[splitIdx:], centerTangent.mul(-1), tHat2, tolerance)
	return append(left, right...)
}

// generateBezier solves the least-squares system for the two inner control
// points given fixed endpoints and unit end tangents.
func generateBezier(points []Point, u []float64, tHat1, tHat2 Point) bezier {
	first := points[0]
	last := points[len(points)-1]

	a := make([][2]Point, len(points))
	for i, t := range u {
		a[i][0] = tHat1.mul(3 * t * (1 - t) * (1 - t))
		a[i][1] = tHat2.mul(3 * t * t * (1 - t))
	}

	var c [2][2]float64
	var x [2]float64
	for i, p := range points {
		c[0][0] += a[i][0].dot(a[i][0])
		c[0][1] += a[i][0].dot(a[i][1])
		c[1][0] = c[0][1]
		c[1][1] += a[i][1].dot(a[i][1])

		t := u[i]
		b0 := (1 - t) * (1 - t) * (1 - t)
		b1 := 3 * t * (1 - t) * (1 - t)
		b2 := 3 * t * t * (1 - t)
		b3 := t * t * t
		tmp := p.sub(first.mul(b0 + b1)).sub(last.mul(b2 + b3))
		x[0] += a[i][0].dot(tmp)
		x[1] += a[i][1].dot(tmp)
	}

	detC0C1 := c[0][0]*c[1][1] - c[1][0]*c[0][1]
	detC0X := c[0][0]*x[1] - c[1][0]*x[0]
	detXC1 := x[0]*c[1][1] - x[1]*c[0][1]

	var alphaL, alphaR float64
	if detC0C1 != 0 {
		alphaL = detXC1 / detC0C1
		alphaR = detC0X / detC0C1
	}

	// Degenerate alphas fall back to the Wu/Barsky heuristic: place the
	// controls a third of the chord length out along the tangents.
	segLength := first.dist(last)
	epsilon := 1e-6 * segLength
	if alphaL < epsilon || alphaR < epsilon {
		dist := segLength / 3
		return bezier{first, first.add(tHat1.mul(dist)), last.add(tHat2.mul(dist)), last}
	}
	return bezier{first, first.add(tHat1.mul(alphaL)), last.add(tHat2.mul(alphaR)), last}
}

// chordLengthParameterize assigns each point a parameter proportional to
// accumulated chord length, normalized to [0, 1].
func chordLengthParameterize(points []Point) []float64 {
	u := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		u[i] = u[i-1] + points[i].dist(points[i-1])
	}
	total := u[len(u)-1]
	if total == 0 {
		return u
	}
	for i := range u {
		u[i] /= total
	}
	return u
}

// reparameterize runs one Newton-Raphson step per point to improve the
// parameter assignment against the current fit.
func reparameterize(bez bezier, points []Point, u []float64) []float64 {
	out := make([]float64, len(u))
	for i := range u {
		out[i] = newtonRaphsonRootFind(bez, points[i], u[i])
	}
	return out
}

func newtonRaphsonRootFind(bez bezier, p Point, u float64) float64 {
	d := evalBezier(bez, u).sub(p)

	var q1 bezier
	for i := 0; i < 3; i++ {
		q1[i] = bez[i+1].sub(bez[i]).mul(3)
	}
	var q2 bezier
	for i := 0; i < 2; i++ {
		q2[i] = q1[i+1].sub(q1[i]).mul(2)
	}
	q1u := evalQuad(q1, u)
	q2u := evalLine(q2, u)

	numerator := d.dot(q1u)
	denominator := q1u.dot(q1u) + d.dot(q2u)
	if denominator == 0 {
		return u
	}
	return u - numerator/denominator
}

func evalBezier(b bezier, t float64) Point {
	mt := 1 - t
	return b[0].mul(mt * mt * mt).
		add(b[1].mul(3 * mt * mt * t)).
		add(b[2].mul(3 * mt * t * t)).
		add(b[3].mul(t * t * t))
}

func evalQuad(b bezier, t float64) Point {
	mt := 1 - t
	return b[0].mul(mt * mt).add(b[1].mul(2 * mt * t)).add(b[2].mul(t * t))
}

func evalLine(b bezier, t float64) Point {
	return b[0].mul(1 - t).add(b[1].mul(t))
}

// maxError returns the maximum squared deviation between the points and the
// fitted curve, and the index of the worst point (a natural split position).
func maxError(points []Point, bez bezier, u []float64) (float64, int) {
	splitIdx := len(points) / 2
	maxDist := 0.0
	for i := 1; i < len(points)-1; i++ {
		d := evalBezier(bez, u[i]).sub(points[i])
		dist := d.dot(d)
		if dist >= maxDist {
			maxDist = dist
			splitIdx = i
		}
	}
	return maxDist, splitIdx
}
