// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filterfx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

func TestMorphologyDilateEmitsOuterShdwWithSpecDistance(t *testing.T) {
	effects := []ir.FilterEffect{ir.MorphologyEffect{Operator: ir.MorphologyDilate, RadiusX: 3, RadiusY: 3}}
	res := Lower(effects, &svcs.Diagnostics{}, "#p1")
	assert.Contains(t, res.EffectXML, `dist="76200"`)
	assert.Contains(t, res.EffectXML, `blurRad="0"`)
	assert.Contains(t, res.EffectXML, "a:outerShdw")
	assert.False(t, res.NeedsRaster)
}

func TestMorphologyErodeEmitsInnerShdw(t *testing.T) {
	effects := []ir.FilterEffect{ir.MorphologyEffect{Operator: ir.MorphologyErode, RadiusX: 2, RadiusY: 2}}
	res := Lower(effects, &svcs.Diagnostics{}, "#p1")
	assert.Contains(t, res.EffectXML, "a:innerShdw")
	assert.Contains(t, res.EffectXML, `dist="50800"`) // 2px * 25400
	assert.Contains(t, res.EffectXML, "FFFFFF")
}

func TestMorphologyZeroRadiusIsNoOp(t *testing.T) {
	effects := []ir.FilterEffect{ir.MorphologyEffect{Operator: ir.MorphologyDilate, RadiusX: 0, RadiusY: 0}}
	res := Lower(effects, &svcs.Diagnostics{}, "#p1")
	assert.Empty(t, res.EffectXML)
}

func TestMorphologyAsymmetricRadiusEmitsScaleAttribute(t *testing.T) {
	effects := []ir.FilterEffect{ir.MorphologyEffect{Operator: ir.MorphologyDilate, RadiusX: 4, RadiusY: 2}}
	res := Lower(effects, &svcs.Diagnostics{}, "#p1")
	assert.Contains(t, res.EffectXML, `sx="100000"`)
	assert.Contains(t, res.EffectXML, `sy="50000"`)
}

func TestMorphologySymmetricRadiusOmitsScaleAttribute(t *testing.T) {
	effects := []ir.FilterEffect{ir.MorphologyEffect{Operator: ir.MorphologyDilate, RadiusX: 3, RadiusY: 3}}
	res := Lower(effects, &svcs.Diagnostics{}, "#p1")
	assert.NotContains(t, res.EffectXML, "sx=")
}

func TestUnsupportedFilterPrimitiveWarnsAndFlagsRaster(t *testing.T) {
	diags := &svcs.Diagnostics{}
	effects := []ir.FilterEffect{ir.UnsupportedEffect{Name: "feGaussianBlur"}}
	res := Lower(effects, diags, "#p1")
	assert.True(t, res.NeedsRaster)
	items := diags.All()
	assert.Len(t, items, 1)
	assert.Contains(t, items[0].Message, "feGaussianBlur not vector-expressible, falling back")
	assert.Equal(t, svcs.CodeFilterFallback, items[0].Code)
}

func TestDiffuseLightingEmitsSp3dBevelLightRigAndInnerShdw(t *testing.T) {
	e := ir.DiffuseLightingEffect{
		SurfaceScale: 5, DiffuseConstant: 2.5, LightingColor: 0xFFFFFF, LightingAlpha: 1,
		LightKind: ir.LightDistant, Azimuth: 90, Elevation: 80,
	}
	res := Lower([]ir.FilterEffect{e}, &svcs.Diagnostics{}, "#p1")
	assert.Contains(t, res.EffectXML, "a:sp3d")
	assert.Contains(t, res.EffectXML, "a:bevelT")
	assert.Contains(t, res.EffectXML, "a:lightRig")
	assert.Contains(t, res.EffectXML, `rig="threePt"`)
	assert.Contains(t, res.EffectXML, "a:innerShdw")
	assert.Contains(t, res.EffectXML, `prstMaterial="matte"`)
}

func TestDiffuseMaterialThresholds(t *testing.T) {
	assert.Equal(t, "matte", diffuseMaterial(2.0))
	assert.Equal(t, "softEdge", diffuseMaterial(1.0))
	assert.Equal(t, "flat", diffuseMaterial(0.5))
}

func TestBevelForLowElevationPicksBevelB(t *testing.T) {
	e := ir.DiffuseLightingEffect{LightKind: ir.LightDistant, Elevation: 10}
	tag, _, _ := bevelFor(e)
	assert.Equal(t, "a:bevelB", tag)
}

func TestBevelForAzimuthRightQuadrantPicksBevelR(t *testing.T) {
	e := ir.DiffuseLightingEffect{LightKind: ir.LightDistant, Elevation: 30, Azimuth: 90}
	tag, _, _ := bevelFor(e)
	assert.Equal(t, "a:bevelR", tag)
}

func TestBevelForAzimuthLeftQuadrantPicksBevelL(t *testing.T) {
	e := ir.DiffuseLightingEffect{LightKind: ir.LightDistant, Elevation: 30, Azimuth: 270}
	tag, _, _ := bevelFor(e)
	assert.Equal(t, "a:bevelL", tag)
}

func TestLightRigForPointLightIsContrasting(t *testing.T) {
	rig, dir := lightRigFor(ir.DiffuseLightingEffect{LightKind: ir.LightPoint})
	assert.Equal(t, "contrasting", rig)
	assert.Equal(t, "tl", dir)
}

func TestLightRigForSpotLightIsHarsh(t *testing.T) {
	rig, dir := lightRigFor(ir.DiffuseLightingEffect{LightKind: ir.LightSpot})
	assert.Equal(t, "harsh", rig)
	assert.Equal(t, "t", dir)
}

func TestLightRigForDistantAzimuthQuadrants(t *testing.T) {
	rig, dir := lightRigFor(ir.DiffuseLightingEffect{LightKind: ir.LightDistant, Elevation: 30, Azimuth: 90})
	assert.Equal(t, "soft", rig)
	assert.Equal(t, "r", dir)

	rig, dir = lightRigFor(ir.DiffuseLightingEffect{LightKind: ir.LightDistant, Elevation: 30, Azimuth: 180})
	assert.Equal(t, "harsh", rig)
	assert.Equal(t, "b", dir)
}

func TestShadowDirectionOppositeAzimuth(t *testing.T) {
	deg := shadowDirection(ir.DiffuseLightingEffect{LightKind: ir.LightDistant, Azimuth: 90})
	assert.Equal(t, int64(270*60000), deg)
}

func TestEmptyEffectsProduceEmptyResult(t *testing.T) {
	res := Lower(nil, &svcs.Diagnostics{}, "#p1")
	assert.Empty(t, res.EffectXML)
	assert.False(t, res.NeedsRaster)
}
