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

func TestCompileStaticModeProducesNothing(t *testing.T) {
	root := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<rect id="box"><animate attributeName="opacity" from="0" to="1" dur="1s"/></rect>
	</svg>`)
	scene := ir.NewScene(geom.Rect{}, 10, 10)
	opts := svcs.DefaultOptions()
	opts.AnimationMode = svcs.AnimationStatic
	res := Compile(scene, root, nil, opts, &svcs.Diagnostics{})
	assert.Empty(t, res.TimingXML)
	assert.Nil(t, res.Baked)
}

func TestCompileAutoModeLowersExpressibleAnimation(t *testing.T) {
	root := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<rect id="box"><animate attributeName="opacity" from="0" to="1" dur="1s"/></rect>
	</svg>`)
	scene := ir.NewScene(geom.Rect{}, 10, 10)
	scene.NodeByID["box"] = ir.NodeID(1)
	opts := svcs.DefaultOptions()
	shapeIDs := map[ir.NodeID]int{1: 2}
	res := Compile(scene, root, shapeIDs, opts, &svcs.Diagnostics{})
	require.NotEmpty(t, res.TimingXML)
	assert.Contains(t, res.TimingXML, `spid="2"`)
}

func TestCompilePreserveAnimationsFalseSkipsEverything(t *testing.T) {
	root := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg">
		<rect id="box"><animate attributeName="opacity" from="0" to="1" dur="1s"/></rect>
	</svg>`)
	scene := ir.NewScene(geom.Rect{}, 10, 10)
	opts := svcs.DefaultOptions()
	opts.PreserveAnimations = false
	res := Compile(scene, root, nil, opts, &svcs.Diagnostics{})
	assert.Empty(t, res.TimingXML)
	assert.Nil(t, res.Baked)
}
