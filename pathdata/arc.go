// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"math"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
)

// ArcToCubics lowers one SVG elliptical-arc command to zero or more
// cubic Bezier segments, per spec §4.1's A2C algorithm:
//
//  1. P0==P1 emits nothing; rx==0 or ry==0 emits a Line.
//  2. Endpoints are mapped into a centered, unrotated frame and radii
//     are corrected upward if too small to span the chord.
//  3. The ellipse center is solved in that frame with the sign of the
//     square root chosen by large_arc XOR sweep.
//  4. The start angle and angular sweep are computed and adjusted so
//     the sweep flag's direction is respected.
//  5. The sweep is split into the smallest number of sub-arcs each
//     spanning at most 90 degrees.
//  6. Each sub-arc becomes one cubic using the standard
//     k = 4/3*tan(delta/4) control-point magnitude, rotated and
//     translated back into the original frame.
func ArcToCubics(p0, p1 geom.Point, rx, ry, xAxisRotationDeg float64, largeArc, sweep bool) []Segment {
	if p0.Near(p1, 1e-12) {
		return nil
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []Segment{Line(p0, p1)}
	}

	phi := xAxisRotationDeg * math.Pi / 180
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

	// Step 1: compute (x1', y1') — midpoint-relative, unrotated frame.
	dx2 := (p0.X - p1.X) / 2
	dy2 := (p0.Y - p1.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Radius correction (F.6.6.2).
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: compute center (cx', cy') in the unrotated frame.
	sign := -1.0
	if largeArc != sweep {
		sign = 1.0
	}
	rxsq, rysq := rx*rx, ry*ry
	x1psq, y1psq := x1p*x1p, y1p*y1p
	num := rxsq*rysq - rxsq*y1psq - rysq*x1psq
	den := rxsq*y1psq + rysq*x1psq
	co := 0.0
	if den != 0 {
		co = math.Sqrt(math.Max(0, num/den))
	}
	co *= sign
	cxp := co * (rx * y1p / ry)
	cyp := co * (-ry * x1p / rx)

	// Step 3: center in original coordinates.
	mx := (p0.X + p1.X) / 2
	my := (p0.Y + p1.Y) / 2
	cx := cosPhi*cxp - sinPhi*cyp + mx
	cy := sinPhi*cxp + cosPhi*cyp + my

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		a := math.Acos(clamp(dot/lenProd, -1, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)

	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	// Step 5: split into N sub-arcs of at most 90 degrees each.
	n := int(math.Ceil(math.Abs(dtheta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	delta := dtheta / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4)

	segs := make([]Segment, 0, n)
	start := p0
	theta := theta1
	for i := 0; i < n; i++ {
		theta2 := theta + delta
		e1x, e1y := ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, theta)
		e2x, e2y := ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, theta2)

		// Tangent-direction vectors at each endpoint, scaled by k.
		d1x, d1y := ellipseTangent(rx, ry, cosPhi, sinPhi, theta)
		d2x, d2y := ellipseTangent(rx, ry, cosPhi, sinPhi, theta2)

		c1 := geom.Point{X: e1x + k*d1x, Y: e1y + k*d1y}
		c2 := geom.Point{X: e2x - k*d2x, Y: e2y - k*d2y}
		end := geom.Point{X: e2x, Y: e2y}
		if i == n-1 {
			end = p1 // avoid drift from floating point accumulation
		}
		segs = append(segs, Cubic(start, c1, c2, end))
		start = end
		theta = theta2
	}
	return segs
}

// ellipsePoint evaluates the rotated ellipse at parameter theta.
func ellipsePoint(cx, cy, rx, ry, cosPhi, sinPhi, theta float64) (x, y float64) {
	ct, st := math.Cos(theta), math.Sin(theta)
	ex := rx * ct
	ey := ry * st
	x = cx + cosPhi*ex - sinPhi*ey
	y = cy + sinPhi*ex + cosPhi*ey
	return
}

// ellipseTangent returns the rotated d/dtheta tangent vector of the
// ellipse at parameter theta (unnormalized; its magnitude is the
// correct basis for the k = 4/3*tan(delta/4) construction).
func ellipseTangent(rx, ry, cosPhi, sinPhi, theta float64) (x, y float64) {
	ct, st := math.Cos(theta), math.Sin(theta)
	dex := -rx * st
	dey := ry * ct
	x = cosPhi*dex - sinPhi*dey
	y = sinPhi*dex + cosPhi*dey
	return
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
