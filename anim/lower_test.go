// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

func TestNeedsBakingZeroDuration(t *testing.T) {
	assert.True(t, NeedsBaking(Animation{TargetNode: 1, Timing: Timing{Dur: 0}}))
}

func TestNeedsBakingUnresolvedTarget(t *testing.T) {
	assert.True(t, NeedsBaking(Animation{Timing: Timing{Dur: 1}}))
}

func TestNeedsBakingSkewAlwaysBakes(t *testing.T) {
	a := Animation{TargetNode: 1, Kind: KindTransformSkew, Timing: Timing{Dur: 1}}
	assert.True(t, NeedsBaking(a))
}

func TestNeedsBakingMultiStopColorBakes(t *testing.T) {
	a := Animation{
		TargetNode: 1, Kind: KindAttribute, Attribute: "fill",
		Values: []string{"#fff", "#f00", "#00f"}, Timing: Timing{Dur: 1},
	}
	assert.True(t, NeedsBaking(a))
}

func TestNeedsBakingSimpleFadeDoesNotBake(t *testing.T) {
	a := Animation{
		TargetNode: 1, Kind: KindAttribute, Attribute: "opacity",
		Values: []string{"0", "1"}, Timing: Timing{Dur: 1},
	}
	assert.False(t, NeedsBaking(a))
}

func TestLowerToTimingProducesFadeNode(t *testing.T) {
	a := Animation{
		TargetNode: 5, Kind: KindAttribute, Attribute: "opacity",
		Values: []string{"0", "1"}, Timing: Timing{Dur: 1},
	}
	shapeIDs := map[ir.NodeID]int{5: 7}
	begins := map[int]float64{0: 0}
	xml := LowerToTiming([]Animation{a}, begins, shapeIDs, &svcs.Diagnostics{})
	assert.Contains(t, xml, "p:timing")
	assert.Contains(t, xml, "p:anim ")
	assert.Contains(t, xml, `spid="7"`)
}

func TestLowerToTimingSkipsBakedAnimations(t *testing.T) {
	a := Animation{TargetNode: 5, Kind: KindTransformSkew, Timing: Timing{Dur: 1}}
	xml := LowerToTiming([]Animation{a}, map[int]float64{0: 0}, map[ir.NodeID]int{5: 1}, &svcs.Diagnostics{})
	assert.Empty(t, xml)
}

func TestLowerToTimingSkipsUnmappedShape(t *testing.T) {
	a := Animation{
		TargetNode: 9, Kind: KindAttribute, Attribute: "opacity",
		Values: []string{"0", "1"}, Timing: Timing{Dur: 1},
	}
	diags := &svcs.Diagnostics{}
	xml := LowerToTiming([]Animation{a}, map[int]float64{0: 0}, map[ir.NodeID]int{}, diags)
	assert.Empty(t, xml)
	assert.True(t, len(diags.All()) == 1)
}

func TestBuildMotionPathFromValues(t *testing.T) {
	a := Animation{Kind: KindTransformTranslate, Values: []string{"0,0", "10,20"}}
	path := buildMotionPath(a)
	assert.True(t, strings.HasPrefix(path, "M 0,0"))
	assert.Contains(t, path, "L 10,20")
}

func TestBuildMotionPathFromPathData(t *testing.T) {
	a := Animation{Kind: KindMotion, MotionPath: "M10,10 L20,10"}
	path := buildMotionPath(a)
	assert.Equal(t, "M 0,0 L 10,0", path)
}
