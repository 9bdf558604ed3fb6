// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BramAlkema/svg2pptx-sub018/svcs"
	"github.com/BramAlkema/svg2pptx-sub018/svgdom"
)

func mustParse(t *testing.T, src string) *svgdom.Element {
	t.Helper()
	doc, err := svgdom.Parse([]byte(src))
	require.NoError(t, err)
	return doc.Root
}

func TestCollectAttributeAnimation(t *testing.T) {
	root := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<rect id="box"><animate attributeName="opacity" from="0" to="1" dur="2s"/></rect>
	</svg>`)
	diags := &svcs.Diagnostics{}
	anims := Collect(root, diags)
	require.Len(t, anims, 1)
	a := anims[0]
	assert.Equal(t, "box", a.TargetID)
	assert.Equal(t, KindAttribute, a.Kind)
	assert.Equal(t, "opacity", a.Attribute)
	assert.Equal(t, []string{"0", "1"}, a.Values)
	assert.Equal(t, 2.0, a.Timing.Dur)
	assert.False(t, diags.HasErrors())
}

func TestCollectTransformKinds(t *testing.T) {
	root := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<g id="g1"><animateTransform attributeName="transform" type="rotate" from="0" to="360" dur="1s"/></g>
		<g id="g2"><animateTransform attributeName="transform" type="skewX" from="0" to="45" dur="1s"/></g>
	</svg>`)
	anims := Collect(root, &svcs.Diagnostics{})
	require.Len(t, anims, 2)
	assert.Equal(t, KindTransformRotate, anims[0].Kind)
	assert.Equal(t, KindTransformSkew, anims[1].Kind)
}

func TestCollectSetElement(t *testing.T) {
	root := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<rect id="box"><set attributeName="fill" to="#ff0000" begin="1s"/></rect>
	</svg>`)
	anims := Collect(root, &svcs.Diagnostics{})
	require.Len(t, anims, 1)
	assert.Equal(t, KindSet, anims[0].Kind)
	assert.Equal(t, []string{"#ff0000"}, anims[0].Values)
	assert.Equal(t, 1.0, anims[0].Timing.Begin.Offset)
}

func TestCollectAnimateMotionWithRotateAuto(t *testing.T) {
	root := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<circle id="dot"><animateMotion path="M0,0 L100,0" rotate="auto" dur="3s"/></circle>
	</svg>`)
	anims := Collect(root, &svcs.Diagnostics{})
	require.Len(t, anims, 1)
	a := anims[0]
	assert.Equal(t, KindMotion, a.Kind)
	assert.True(t, a.RotateAuto)
	assert.Equal(t, "M0,0 L100,0", a.MotionPath)
}

func TestCollectAnimateMotionMpathReference(t *testing.T) {
	root := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<path id="track" d="M0,0 L50,50"/>
		<circle id="dot"><animateMotion dur="2s"><mpath href="#track"/></animateMotion></circle>
	</svg>`)
	anims := Collect(root, &svcs.Diagnostics{})
	require.Len(t, anims, 1)
	assert.Equal(t, "M0,0 L50,50", anims[0].MotionPath)
}

func TestCollectMissingTargetDropped(t *testing.T) {
	root := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<animate attributeName="opacity" from="0" to="1" dur="1s"/>
	</svg>`)
	diags := &svcs.Diagnostics{}
	anims := Collect(root, diags)
	assert.Empty(t, anims)
	assert.True(t, len(diags.All()) > 0)
}

func TestParseCalcModeDefaultsAnimateMotionToPaced(t *testing.T) {
	root := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<circle id="dot"><animateMotion path="M0,0 L1,1" dur="1s"/></circle>
	</svg>`)
	anims := Collect(root, &svcs.Diagnostics{})
	require.Len(t, anims, 1)
	assert.Equal(t, CalcPaced, anims[0].CalcMode)
}

func TestParseBeginEventReference(t *testing.T) {
	root := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<rect id="a"><animate id="fadeA" attributeName="opacity" from="0" to="1" dur="1s"/></rect>
		<rect id="b"><animate attributeName="opacity" from="0" to="1" dur="1s" begin="#fadeA.end+0.5s"/></rect>
	</svg>`)
	anims := Collect(root, &svcs.Diagnostics{})
	require.Len(t, anims, 2)
	begin := anims[1].Timing.Begin
	assert.Equal(t, BeginEvent, begin.Kind)
	assert.Equal(t, "fadeA", begin.RefID)
	assert.True(t, begin.RefIsEnd)
	assert.Equal(t, 0.5, begin.Offset)
}
