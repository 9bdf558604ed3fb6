// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zipNames(t *testing.T, data []byte) map[string]bool {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true
	}
	return names
}

func TestConvertBasicRectangleProducesOnePptxSlide(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 60">
		<rect x="10" y="10" width="80" height="40" fill="#0066CC"/>
	</svg>`)
	res, err := Convert(context.Background(), svg, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, res.PPTX)

	names := zipNames(t, res.PPTX)
	assert.True(t, names["[Content_Types].xml"])
	assert.True(t, names["ppt/presentation.xml"])
	assert.True(t, names["ppt/slides/slide1.xml"])
	assert.False(t, names["ppt/slides/slide2.xml"])
}

func TestConvertCancelledContextReturnsError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
		<rect width="10" height="10" fill="#000"/>
	</svg>`)
	res, err := Convert(ctx, svg, Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.PPTX)
}

func TestConvertMalformedSVGReturnsErrorAndNoPartialOutput(t *testing.T) {
	res, err := Convert(context.Background(), []byte("not xml at all <<<"), Options{})
	assert.Error(t, err)
	assert.Empty(t, res.PPTX)
}

func TestConvertStaticAnimationModeProducesNoTimingOrBakedSlides(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
		<rect id="box" width="10" height="10" fill="#000">
			<animate attributeName="opacity" from="0" to="1" dur="1s"/>
		</rect>
	</svg>`)
	res, err := Convert(context.Background(), svg, Options{AnimationMode: "static", PreserveAnimations: true})
	require.NoError(t, err)
	names := zipNames(t, res.PPTX)
	assert.False(t, names["ppt/slides/slide2.xml"])
}

func TestConvertBakedStaggeredAnimationsProduceOneSlidePerSample(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 30 10">
		<rect id="r1" x="0" y="0" width="10" height="10" fill="#f00">
			<animate attributeName="opacity" from="0" to="1" begin="0s" dur="2s"/>
		</rect>
		<rect id="r2" x="10" y="0" width="10" height="10" fill="#0f0">
			<animate attributeName="opacity" from="0" to="1" begin="2s" dur="2s"/>
		</rect>
		<rect id="r3" x="20" y="0" width="10" height="10" fill="#00f">
			<animate attributeName="opacity" from="0" to="1" begin="4s" dur="2s"/>
		</rect>
	</svg>`)
	res, err := Convert(context.Background(), svg, Options{
		PreserveAnimations: true,
		AnimationMode:      "baked",
		BakeFPS:            24,
		BakeMaxKeyframes:   3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.PPTX)

	names := zipNames(t, res.PPTX)
	assert.True(t, names["ppt/slides/slide1.xml"])
	assert.True(t, names["ppt/slides/slide2.xml"])
	assert.True(t, names["ppt/slides/slide3.xml"])
	assert.False(t, names["ppt/slides/slide4.xml"])
}

func TestConvertDiagnosticsSurfaceUnresolvedReferences(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
		<path d="M0,0 L10,10" fill="#f00" filter="url(#missing)"/>
	</svg>`)
	res, err := Convert(context.Background(), svg, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, res.Diagnostics)
	found := false
	for _, d := range res.Diagnostics {
		if d.Code == "missing_reference" {
			found = true
		}
	}
	assert.True(t, found)
}
