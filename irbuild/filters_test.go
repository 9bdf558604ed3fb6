// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BramAlkema/svg2pptx-sub018/ir"
)

func TestBuildResolvesFilterReference(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<filter id="blur"><feMorphology operator="dilate" radius="3"/></filter>
		<path d="M0,0 L10,10" fill="#ff0000" filter="url(#blur)"/>
	</svg>`)
	p := scene.Elements[0].(*ir.Path)
	require.NotNil(t, p.Filter)
	assert.Equal(t, "blur", p.Filter.ID)
	require.Len(t, scene.Filters["blur"], 1)
	m, ok := scene.Filters["blur"][0].(ir.MorphologyEffect)
	require.True(t, ok)
	assert.Equal(t, ir.MorphologyDilate, m.Operator)
	assert.Equal(t, 3.0, m.RadiusX)
	assert.Equal(t, 3.0, m.RadiusY)
}

func TestBuildWarnsOnMissingFilterReference(t *testing.T) {
	scene, diags := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<path d="M0,0 L10,10" fill="#ff0000" filter="url(#ghost)"/>
	</svg>`)
	p := scene.Elements[0].(*ir.Path)
	assert.Nil(t, p.Filter)
	assert.Len(t, diags.All(), 1)
}

func TestParseRadiusPairSingleValue(t *testing.T) {
	rx, ry := parseRadiusPair("5")
	assert.Equal(t, 5.0, rx)
	assert.Equal(t, 5.0, ry)
}

func TestParseRadiusPairAsymmetric(t *testing.T) {
	rx, ry := parseRadiusPair("3 7")
	assert.Equal(t, 3.0, rx)
	assert.Equal(t, 7.0, ry)
}

func TestParseMorphologyDefaultsToErode(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<filter id="f"><feMorphology radius="2"/></filter>
		<path d="M0,0 L1,1" fill="#000" filter="url(#f)"/>
	</svg>`)
	m := scene.Filters["f"][0].(ir.MorphologyEffect)
	assert.Equal(t, ir.MorphologyErode, m.Operator)
}

func TestParseDiffuseLightingDistant(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<filter id="f">
			<feDiffuseLighting surfaceScale="5" diffuseConstant="1.5" lighting-color="#ffffff">
				<feDistantLight azimuth="90" elevation="60"/>
			</feDiffuseLighting>
		</filter>
		<path d="M0,0 L1,1" fill="#000" filter="url(#f)"/>
	</svg>`)
	d := scene.Filters["f"][0].(ir.DiffuseLightingEffect)
	assert.Equal(t, ir.LightDistant, d.LightKind)
	assert.Equal(t, 5.0, d.SurfaceScale)
	assert.Equal(t, 1.5, d.DiffuseConstant)
	assert.Equal(t, 90.0, d.Azimuth)
	assert.Equal(t, 60.0, d.Elevation)
}

func TestParseDiffuseLightingNoLightChildFallsBackToDistant45(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<filter id="f"><feDiffuseLighting/></filter>
		<path d="M0,0 L1,1" fill="#000" filter="url(#f)"/>
	</svg>`)
	d := scene.Filters["f"][0].(ir.DiffuseLightingEffect)
	assert.Equal(t, ir.LightDistant, d.LightKind)
	assert.Equal(t, 45.0, d.Elevation)
}

func TestParseDiffuseLightingSpot(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<filter id="f">
			<feDiffuseLighting>
				<feSpotLight x="10" y="20" z="30" pointsAtX="0" pointsAtY="0" pointsAtZ="0" specularExponent="2" limitingConeAngle="20"/>
			</feDiffuseLighting>
		</filter>
		<path d="M0,0 L1,1" fill="#000" filter="url(#f)"/>
	</svg>`)
	d := scene.Filters["f"][0].(ir.DiffuseLightingEffect)
	assert.Equal(t, ir.LightSpot, d.LightKind)
	assert.Equal(t, 10.0, d.X)
	assert.Equal(t, 2.0, d.SpecularExponent)
	assert.Equal(t, 20.0, d.LimitingConeAngle)
}

func TestUnrecognizedFilterPrimitiveBecomesUnsupportedEffect(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<filter id="f"><feGaussianBlur stdDeviation="2"/></filter>
		<path d="M0,0 L1,1" fill="#000" filter="url(#f)"/>
	</svg>`)
	u := scene.Filters["f"][0].(ir.UnsupportedEffect)
	assert.Equal(t, "feGaussianBlur", u.Name)
}
