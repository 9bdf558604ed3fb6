// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

func pathScene() *ir.Scene {
	s := ir.NewScene(geom.Rect{W: 100, H: 100}, 100, 100)
	fill := ir.NewSolid(0x000000, 1)
	p := &ir.Path{Segments: []ir.Segment{ir.NewLine(geom.Point{}, geom.Point{X: 10, Y: 10})}, Fill: &fill}
	s.Elements = append(s.Elements, p)
	return s
}

func TestNeedsBakingFalseHasZeroEntries(t *testing.T) {
	scene := pathScene()
	anims := []Animation{{
		TargetNode: 1, Kind: KindAttribute, Attribute: "opacity",
		Values: []string{"0", "1"}, Timing: Timing{Dur: 1},
	}}
	frames := Bake(scene, anims, map[int]float64{0: 0}, svcs.DefaultOptions())
	assert.Nil(t, frames)
}

func TestLocalProgressIndefiniteWraps(t *testing.T) {
	a := Animation{Timing: Timing{Dur: 2, Repeat: Repeat{Kind: RepeatIndefinite}}}
	got := localProgress(a, 0, 5) // 2.5 cycles in
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestLocalProgressFiniteClampsToOne(t *testing.T) {
	a := Animation{Timing: Timing{Dur: 1, Repeat: Repeat{Kind: RepeatFinite, Count: 2}}}
	got := localProgress(a, 0, 10) // well past 2 cycles
	assert.Equal(t, 1.0, got)
}

func TestLocalProgressBeforeBeginIsZero(t *testing.T) {
	a := Animation{Timing: Timing{Dur: 1}}
	assert.Equal(t, 0.0, localProgress(a, 5, 1))
}

func TestCloneSceneDeepCopiesSegments(t *testing.T) {
	scene := pathScene()
	clone := cloneScene(scene)
	origPath := scene.Elements[0].(*ir.Path)
	clonePath := clone.Elements[0].(*ir.Path)
	clonePath.Segments[0].End.X = 999
	assert.NotEqual(t, origPath.Segments[0].End.X, clonePath.Segments[0].End.X)
	require.NotSame(t, origPath.Fill, clonePath.Fill)
}

func TestApplyMatrixTranslatesPathSegments(t *testing.T) {
	scene := pathScene()
	p := scene.Elements[0].(*ir.Path)
	applyMatrix(p, geom.Translate(5, 5))
	assert.Equal(t, 5.0, p.Segments[0].Start.X)
	assert.Equal(t, 15.0, p.Segments[0].End.X)
}

func TestSampledMatrixScale(t *testing.T) {
	a := Animation{Kind: KindTransformScale, Values: []string{"1", "2"}, Timing: Timing{Dur: 1}}
	m := sampledMatrix(a, 1)
	assert.InDelta(t, 2, m.A, 1e-9)
	assert.InDelta(t, 2, m.D, 1e-9)
}

func TestSampledMatrixMotionFromPath(t *testing.T) {
	a := Animation{Kind: KindMotion, MotionPath: "M0,0 L100,0", Timing: Timing{Dur: 1}}
	m := sampledMatrix(a, 0.5)
	assert.InDelta(t, 50, m.E, 1e-6)
	assert.InDelta(t, 0, m.F, 1e-6)
}

func TestSampleAlongSubpathTangentForRotateAuto(t *testing.T) {
	a := Animation{Kind: KindMotion, MotionPath: "M0,0 L100,0", RotateAuto: true, Timing: Timing{Dur: 1}}
	m := sampledMatrix(a, 1)
	// A straight horizontal path has tangent 0deg; rotation matrix at
	// angle 0 is the identity's linear part.
	assert.InDelta(t, 1, m.A, 1e-6)
	assert.InDelta(t, 0, m.B, 1e-6)
}
