package rough

import "math"

// arcConverter decomposes a single SVG-style elliptical arc command into
// cubic Bezier segments using the standard endpoint-to-center
// parameterization. Segments are produced lazily through Next, each spanning
// at most a quarter revolution; the sequence is finite and not restartable.
type arcConverter struct {
	segIndex, numSegs int
	rx, ry            float64
	sinPhi, cosPhi    float64
	cx, cy            float64
	theta1, delta, t  float64
}

// newArcConverter prepares the decomposition of the arc from one point to
// another. The caller is expected to have handled the degenerate cases
// (coincident endpoints, zero radius) beforehand; a zero angular span simply
// yields no segments.
func newArcConverter(from, to Point, rx, ry, xAxisRotationDeg float64, largeArc, sweep bool) *arcConverter {
	a := &arcConverter{}
	a.rx = math.Abs(rx)
	a.ry = math.Abs(ry)
	phi := xAxisRotationDeg * math.Pi / 180
	a.sinPhi = math.Sin(phi)
	a.cosPhi = math.Cos(phi)

	x1dash := a.cosPhi*(from.X-to.X)/2 + a.sinPhi*(from.Y-to.Y)/2
	y1dash := -a.sinPhi*(from.X-to.X)/2 + a.cosPhi*(from.Y-to.Y)/2

	var root float64
	numerator := a.rx*a.rx*a.ry*a.ry - a.rx*a.rx*y1dash*y1dash - a.ry*a.ry*x1dash*x1dash
	if numerator < 0 {
		// Radii too small for the endpoints: scale them up until the arc
		// exists, per the SVG out-of-range rules.
		s := math.Sqrt(1 - numerator/(a.rx*a.rx*a.ry*a.ry))
		a.rx *= s
		a.ry *= s
	} else {
		sign := 1.0
		if largeArc == sweep {
			sign = -1.0
		}
		root = sign * math.Sqrt(numerator/(a.rx*a.rx*y1dash*y1dash+a.ry*a.ry*x1dash*x1dash))
	}

	cxdash := root * a.rx * y1dash / a.ry
	cydash := -root * a.ry * x1dash / a.rx
	a.cx = a.cosPhi*cxdash - a.sinPhi*cydash + (from.X+to.X)/2
	a.cy = a.sinPhi*cxdash + a.cosPhi*cydash + (from.Y+to.Y)/2

	a.theta1 = vectorAngle(1, 0, (x1dash-cxdash)/a.rx, (y1dash-cydash)/a.ry)
	dtheta := vectorAngle(
		(x1dash-cxdash)/a.rx, (y1dash-cydash)/a.ry,
		(-x1dash-cxdash)/a.rx, (-y1dash-cydash)/a.ry,
	)
	if !sweep && dtheta > 0 {
		dtheta -= math.Pi * 2
	} else if sweep && dtheta < 0 {
		dtheta += math.Pi * 2
	}

	a.numSegs = int(math.Ceil(math.Abs(dtheta) / (math.Pi / 2)))
	if a.numSegs > 0 {
		a.delta = dtheta / float64(a.numSegs)
		// Tangent length for a cubic approximating one sub-arc.
		a.t = 8.0 / 3.0 * math.Sin(a.delta/4) * math.Sin(a.delta/4) / math.Sin(a.delta/2)
	}
	return a
}

// Next returns the control points and endpoint of the next cubic segment.
// ok is false once the arc is exhausted.
func (a *arcConverter) Next() (c1, c2, end Point, ok bool) {
	if a.segIndex >= a.numSegs {
		return Point{}, Point{}, Point{}, false
	}
	thetaStart := a.theta1 + float64(a.segIndex)*a.delta
	thetaEnd := a.theta1 + float64(a.segIndex+1)*a.delta
	a.segIndex++

	sinS, cosS := math.Sincos(thetaStart)
	sinE, cosE := math.Sincos(thetaEnd)

	c1 = Point{
		X: a.cx + a.rx*(cosS-a.t*sinS)*a.cosPhi - a.ry*(sinS+a.t*cosS)*a.sinPhi,
		Y: a.cy + a.rx*(cosS-a.t*sinS)*a.sinPhi + a.ry*(sinS+a.t*cosS)*a.cosPhi,
	}
	c2 = Point{
		X: a.cx + a.rx*(cosE+a.t*sinE)*a.cosPhi - a.ry*(sinE-a.t*cosE)*a.sinPhi,
		Y: a.cy + a.rx*(cosE+a.t*sinE)*a.sinPhi + a.ry*(sinE-a.t*cosE)*a.cosPhi,
	}
	end = Point{
		X: a.cx + a.rx*cosE*a.cosPhi - a.ry*sinE*a.sinPhi,
		Y: a.cy + a.rx*cosE*a.sinPhi + a.ry*sinE*a.cosPhi,
	}
	return c1, c2, end, true
}

// vectorAngle returns the signed angle from vector (ux, uy) to (vx, vy).
func vectorAngle(ux, uy, vx, vy float64) float64 {
	sign := 1.0
	if ux*vy-uy*vx < 0 {
		sign = -1.0
	}
	dot := ux*vx + uy*vy
	dot /= math.Sqrt(ux*ux+uy*uy) * math.Sqrt(vx*vx+vy*vy)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return sign * math.Acos(dot)
}
