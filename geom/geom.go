// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the 2D geometry primitives used throughout the
// conversion pipeline: points, axis-aligned rectangles, and 2D affine
// matrices in user-space units.
package geom

import "math"

// Point is a 2D point in user-space units.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Hypot(dx, dy)
}

// Near reports whether p and q are equal within tol.
func (p Point) Near(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

// Rect is an axis-aligned rectangle in user-space units.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has non-positive area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rectangle containing both r and s.
// A zero-area operand is ignored so callers can accumulate bounds by
// starting from an empty Rect.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x0 := math.Min(r.X, s.X)
	y0 := math.Min(r.Y, s.Y)
	x1 := math.Max(r.X+r.W, s.X+s.W)
	y1 := math.Max(r.Y+r.H, s.Y+s.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// AspectRatio returns W/H, or 0 if H is zero.
func (r Rect) AspectRatio() float64 {
	if r.H == 0 {
		return 0
	}
	return r.W / r.H
}

// Matrix is a 2x3 affine transform:
//
//	[ A C E ]   [x]
//	[ B D F ] * [y]
//	[ 0 0 1 ]   [1]
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix{A: 1, D: 1}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix { return Matrix{A: 1, D: 1, E: tx, F: ty} }

// Scale returns a scale matrix.
func Scale(sx, sy float64) Matrix { return Matrix{A: sx, D: sy} }

// Rotate returns a rotation matrix for angle radians. With the SVG
// user-space y axis pointing down, a positive angle turns the x axis
// toward the y axis, which is clockwise as drawn.
func Rotate(angle float64) Matrix {
	s, c := math.Sin(angle), math.Cos(angle)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// SkewX returns a horizontal skew matrix for angle radians.
func SkewX(angle float64) Matrix { return Matrix{A: 1, D: 1, C: math.Tan(angle)} }

// SkewY returns a vertical skew matrix for angle radians.
func SkewY(angle float64) Matrix { return Matrix{A: 1, D: 1, B: math.Tan(angle)} }

// Mul returns m composed with n, i.e. the transform that first applies n
// then m (m.Mul(n).Apply(p) == m.Apply(n.Apply(p))).
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply transforms p by m.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Det returns the determinant of the linear part of m.
func (m Matrix) Det() float64 { return m.A*m.D - m.B*m.C }

// Invert returns the inverse of m and true, or the zero Matrix and
// false if m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Det()
	if det == 0 {
		return Matrix{}, false
	}
	inv := 1 / det
	a := m.D * inv
	b := -m.B * inv
	c := -m.C * inv
	d := m.A * inv
	e := -(a*m.E + c*m.F)
	f := -(b*m.E + d*m.F)
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}, true
}

// IsIdentity reports whether m is the identity transform within tol.
func (m Matrix) IsIdentity(tol float64) bool {
	return approx(m.A, 1, tol) && approx(m.B, 0, tol) &&
		approx(m.C, 0, tol) && approx(m.D, 1, tol) &&
		approx(m.E, 0, tol) && approx(m.F, 0, tol)
}

// IsTranslation reports whether m is a pure translation (no rotation,
// scale or skew) within tol.
func (m Matrix) IsTranslation(tol float64) bool {
	return approx(m.A, 1, tol) && approx(m.B, 0, tol) &&
		approx(m.C, 0, tol) && approx(m.D, 1, tol)
}

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }
