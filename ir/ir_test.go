// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"testing"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneNodeIDsUnique(t *testing.T) {
	sc := NewScene(geom.Rect{W: 100, H: 100}, 100, 100)
	p1 := sc.NewPath(nil, nil, nil, 1, nil, false)
	p2 := sc.NewPath(nil, nil, nil, 1, nil, false)
	assert.NotEqual(t, p1.ID(), p2.ID())
}

func TestAcyclicTree(t *testing.T) {
	sc := NewScene(geom.Rect{W: 10, H: 10}, 10, 10)
	leaf := sc.NewPath(nil, nil, nil, 1, nil, false)
	grp := sc.NewGroup([]Node{leaf}, nil, 1, nil)
	assert.True(t, Acyclic([]Node{grp}))
}

func TestAcyclicDetectsSelfReference(t *testing.T) {
	sc := NewScene(geom.Rect{W: 10, H: 10}, 10, 10)
	grp := sc.NewGroup(nil, nil, 1, nil)
	grp.Children = append(grp.Children, grp) // pathological self-reference
	assert.False(t, Acyclic([]Node{grp}))
}

func TestLowerArcsConvertsSymbolicArc(t *testing.T) {
	segs := []Segment{
		NewArc(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}, 5, 5, 0, false, true),
	}
	lowered := LowerArcs(segs)
	require.NotEmpty(t, lowered)
	for _, s := range lowered {
		assert.NotEqual(t, SegArc, s.Kind())
	}
	assert.True(t, lowered[0].Start.Near(geom.Point{X: 0, Y: 0}, 1e-9))
	assert.True(t, lowered[len(lowered)-1].End.Near(geom.Point{X: 10, Y: 0}, 1e-9))
}

func TestLowerArcsNoOpWithoutArcs(t *testing.T) {
	segs := []Segment{NewLine(geom.Point{}, geom.Point{X: 1, Y: 1})}
	lowered := LowerArcs(segs)
	require.Len(t, lowered, 1)
	assert.Equal(t, SegLine, lowered[0].Kind())
}
