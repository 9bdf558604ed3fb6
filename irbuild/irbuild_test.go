// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
	"github.com/BramAlkema/svg2pptx-sub018/svgdom"
)

func mustBuild(t *testing.T, src string) (*ir.Scene, *svcs.Diagnostics) {
	t.Helper()
	doc, err := svgdom.Parse([]byte(src))
	require.NoError(t, err)
	nd, err := svgdom.Preprocess(doc)
	require.NoError(t, err)
	diags := &svcs.Diagnostics{}
	scene, err := Build(nd, diags)
	require.NoError(t, err)
	return scene, diags
}

func TestBuildSimplePath(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
		<path d="M0,0 L10,10 L20,0 Z" fill="#ff0000"/>
	</svg>`)
	require.Len(t, scene.Elements, 1)
	p, ok := scene.Elements[0].(*ir.Path)
	require.True(t, ok)
	assert.True(t, p.Closed)
	require.NotNil(t, p.Fill)
	assert.Equal(t, uint32(0xff0000), p.Fill.RGB)
	assert.Nil(t, p.Stroke)
}

func TestBuildStrokeAttributes(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<path d="M0,0 L10,10" stroke="#00ff00" stroke-width="2" stroke-linecap="round" stroke-dasharray="4,2"/>
	</svg>`)
	p := scene.Elements[0].(*ir.Path)
	require.NotNil(t, p.Stroke)
	assert.Equal(t, uint32(0x00ff00), p.Stroke.Paint.RGB)
	assert.Equal(t, 2.0, p.Stroke.Width)
	assert.Equal(t, ir.CapRound, p.Stroke.Cap)
	assert.Equal(t, []float64{4, 2}, p.Stroke.DashArray)
}

func TestBuildGroupWithRotation(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<g transform="rotate(45)"><path d="M0,0 L1,1"/></g>
	</svg>`)
	require.Len(t, scene.Elements, 1)
	g, ok := scene.Elements[0].(*ir.Group)
	require.True(t, ok)
	require.NotNil(t, g.Transform)
	assert.InDelta(t, 0.7071, g.Transform.A, 1e-3)
	require.Len(t, g.Children, 1)
}

func TestBuildTextRuns(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<text x="1" y="2" font-family="Georgia" font-size="16">hello <tspan font-weight="bold">world</tspan></text>
	</svg>`)
	tf, ok := scene.Elements[0].(*ir.TextFrame)
	require.True(t, ok)
	require.Len(t, tf.Runs, 2)
	assert.Equal(t, "hello ", tf.Runs[0].Text)
	assert.Equal(t, "Georgia", tf.Runs[0].FontFamily)
	assert.False(t, tf.Runs[0].Bold)
	assert.Equal(t, "world", tf.Runs[1].Text)
	assert.True(t, tf.Runs[1].Bold)
}

func TestBuildLinearGradient(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<defs>
			<linearGradient id="g1" x1="0" y1="0" x2="1" y2="0">
				<stop offset="0" stop-color="#000000"/>
				<stop offset="1" stop-color="#ffffff"/>
			</linearGradient>
		</defs>
		<path d="M0,0 L1,1" fill="url(#g1)"/>
	</svg>`)
	p := scene.Elements[0].(*ir.Path)
	require.NotNil(t, p.Fill)
	assert.Equal(t, ir.PaintLinearGradient, p.Fill.Kind())
	require.Len(t, p.Fill.Stops, 2)
	assert.Equal(t, uint32(0xffffff), p.Fill.Stops[1].RGB)
}

func TestBuildGradientHrefInheritsStops(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<defs>
			<linearGradient id="base" x1="0" y1="0" x2="1" y2="0">
				<stop offset="0" stop-color="#112233"/>
				<stop offset="1" stop-color="#445566"/>
			</linearGradient>
			<linearGradient id="derived" href="#base" x1="0" y1="0" x2="0" y2="1"/>
		</defs>
		<path d="M0,0 L1,1" fill="url(#derived)"/>
	</svg>`)
	p := scene.Elements[0].(*ir.Path)
	require.NotNil(t, p.Fill)
	require.Len(t, p.Fill.Stops, 2)
	assert.Equal(t, uint32(0x112233), p.Fill.Stops[0].RGB)
	assert.Equal(t, uint32(0x445566), p.Fill.Stops[1].RGB)
}

func TestBuildGradientCycleDiagnostic(t *testing.T) {
	scene, diags := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<defs>
			<linearGradient id="a" href="#b"/>
			<linearGradient id="b" href="#a"/>
		</defs>
		<path d="M0,0 L1,1" fill="url(#a)"/>
	</svg>`)
	found := false
	for _, d := range diags.All() {
		if d.Code == svcs.CodeCyclicReference {
			found = true
		}
	}
	assert.True(t, found)
	_ = scene
}

func TestBuildMissingPaintReferenceFallsBackToBlack(t *testing.T) {
	scene, diags := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<path d="M0,0 L1,1" fill="url(#missing)"/>
	</svg>`)
	p := scene.Elements[0].(*ir.Path)
	require.NotNil(t, p.Fill)
	assert.Equal(t, uint32(0x000000), p.Fill.RGB)
	found := false
	for _, d := range diags.All() {
		if d.Code == svcs.CodeMissingReference {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBuildClipPathResolved(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<defs>
			<clipPath id="c1"><path d="M0,0 L1,0 L1,1 Z"/></clipPath>
		</defs>
		<path d="M0,0 L1,1" clip-path="url(#c1)"/>
	</svg>`)
	p := scene.Elements[0].(*ir.Path)
	require.NotNil(t, p.Clip)
	assert.Equal(t, "c1", p.Clip.ID)
	require.Contains(t, scene.Clips, "c1")
}

func TestBuildMalformedPathDropsWithDiagnostic(t *testing.T) {
	scene, diags := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<path d="not a path"/>
	</svg>`)
	assert.Len(t, scene.Elements, 0)
	found := false
	for _, d := range diags.All() {
		if d.Code == svcs.CodePathSyntax {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBuildImageFormatSniffing(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<image href="data:image/jpeg;base64,abcd" x="0" y="0" width="5" height="5"/>
	</svg>`)
	img, ok := scene.Elements[0].(*ir.Image)
	require.True(t, ok)
	assert.Equal(t, ir.ImageJPEG, img.Format)
}

func TestBuildImageDecodesBase64Payload(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<image href="data:image/png;base64,aGVsbG8=" x="0" y="0" width="5" height="5"/>
	</svg>`)
	img, ok := scene.Elements[0].(*ir.Image)
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), img.Data)
}

func TestBuildImageMalformedBase64WarnsAndLeavesDataNil(t *testing.T) {
	scene, diags := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<image href="data:image/png;base64,!!!not-base64!!!" x="0" y="0" width="5" height="5"/>
	</svg>`)
	img, ok := scene.Elements[0].(*ir.Image)
	require.True(t, ok)
	assert.Nil(t, img.Data)
	assert.Len(t, diags.All(), 1)
}

func TestBuildImageExternalHrefLeavesDataNil(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<image href="https://example.com/pic.png" x="0" y="0" width="5" height="5"/>
	</svg>`)
	img, ok := scene.Elements[0].(*ir.Image)
	require.True(t, ok)
	assert.Nil(t, img.Data)
}

func TestBuildSceneIsAcyclic(t *testing.T) {
	scene, _ := mustBuild(t, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
		<g><g><path d="M0,0 L1,1"/></g></g>
	</svg>`)
	assert.True(t, ir.Acyclic(scene.Elements))
}

func TestParseColorNamedAndFunctional(t *testing.T) {
	rgb, alpha, ok, err := parseColor("red")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(0xff0000), rgb)
	assert.Equal(t, float32(1), alpha)

	rgb, alpha, ok, err = parseColor("rgba(255, 0, 0, 0.5)")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(0xff0000), rgb)
	assert.InDelta(t, 0.5, alpha, 1e-6)
}

func TestParseColorNoneAndTransparent(t *testing.T) {
	_, _, ok, err := parseColor("none")
	require.NoError(t, err)
	assert.False(t, ok)

	rgb, alpha, ok, err := parseColor("transparent")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(0), rgb)
	assert.Equal(t, float32(0), alpha)
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b", collapseWhitespace("a   b"))
	assert.Equal(t, " a b ", collapseWhitespace("  a \n b  "))
	assert.Equal(t, "", collapseWhitespace("   "))
}
