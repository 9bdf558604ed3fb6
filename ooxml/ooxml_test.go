// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ooxml

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/BramAlkema/svg2pptx-sub018/mapper"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

func newTestContext() *svcs.Context {
	return svcs.NewContext(context.Background(), svcs.Options{}, nil)
}

func readZipEntries(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	out := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		out[f.Name] = body
	}
	return out
}

func TestContentTypesIsFirstEntry(t *testing.T) {
	ctx := newTestContext()
	scale := mapper.NewScale(geom.Rect{W: 100, H: 100}, 0)
	p := NewPackager(ctx, scale, "Untitled")
	p.AddSlide("<p:sp/>", nil)

	data, err := p.Build()
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.NotEmpty(t, zr.File)
	assert.Equal(t, "[Content_Types].xml", zr.File[0].Name)
}

func TestBuildIncludesSlideAndRels(t *testing.T) {
	ctx := newTestContext()
	scale := mapper.NewScale(geom.Rect{W: 100, H: 100}, 0)
	p := NewPackager(ctx, scale, "Untitled")
	p.AddSlide("<p:sp><p:nvSpPr/></p:sp>", nil)
	p.AddSlide("<p:sp><p:nvSpPr/></p:sp>", nil)

	data, err := p.Build()
	require.NoError(t, err)
	entries := readZipEntries(t, data)

	assert.Contains(t, entries, "ppt/slides/slide1.xml")
	assert.Contains(t, entries, "ppt/slides/slide2.xml")
	assert.Contains(t, entries, "ppt/slides/_rels/slide1.xml.rels")
	assert.Contains(t, entries, "ppt/slides/_rels/slide2.xml.rels")
	assert.Contains(t, string(entries["ppt/slides/slide1.xml"]), "<p:sp>")
	assert.Contains(t, string(entries["ppt/presentation.xml"]), `r:id="rId2"`)
	assert.Contains(t, string(entries["ppt/presentation.xml"]), `r:id="rId3"`)
}

func TestSlideSizeDerivedFromScale(t *testing.T) {
	ctx := newTestContext()
	scale := mapper.NewScale(geom.Rect{W: 100, H: 100}, 5000000)
	p := NewPackager(ctx, scale, "Untitled")
	p.AddSlide("<p:sp/>", nil)

	data, err := p.Build()
	require.NoError(t, err)
	entries := readZipEntries(t, data)

	assert.Contains(t, string(entries["ppt/presentation.xml"]), `cx="5000000"`)
	assert.Contains(t, string(entries["ppt/presentation.xml"]), `cy="5000000"`)
}

func TestMediaDedupedAcrossSlidesByContentHash(t *testing.T) {
	ctx := newTestContext()
	scale := mapper.NewScale(geom.Rect{W: 100, H: 100}, 0)
	p := NewPackager(ctx, scale, "Untitled")

	blob := []byte("same emf bytes")
	hash := "deadbeef"
	p.AddSlide("<p:pic/>", []mapper.MediaPart{{RelID: "rId2", Ext: "emf", Data: blob, Hash: hash}})
	p.AddSlide("<p:pic/>", []mapper.MediaPart{{RelID: "rId2", Ext: "emf", Data: blob, Hash: hash}})

	data, err := p.Build()
	require.NoError(t, err)
	entries := readZipEntries(t, data)

	mediaCount := 0
	for name := range entries {
		if len(name) > len("ppt/media/") && name[:len("ppt/media/")] == "ppt/media/" {
			mediaCount++
		}
	}
	assert.Equal(t, 1, mediaCount)
	assert.Contains(t, entries, "ppt/media/emf_deadbeef.emf")
	assert.Contains(t, string(entries["ppt/slides/_rels/slide1.xml.rels"]), "../media/emf_deadbeef.emf")
	assert.Contains(t, string(entries["ppt/slides/_rels/slide2.xml.rels"]), "../media/emf_deadbeef.emf")
}

func TestSlideRelsOrderIsDeterministicAcrossMultipleMediaParts(t *testing.T) {
	media := []mapper.MediaPart{
		{RelID: "rId5", Ext: "png", Data: []byte("a"), Hash: "h1"},
		{RelID: "rId2", Ext: "emf", Data: []byte("b"), Hash: "h2"},
		{RelID: "rId9", Ext: "jpeg", Data: []byte("c"), Hash: "h3"},
		{RelID: "rId3", Ext: "png", Data: []byte("d"), Hash: "h4"},
	}

	var prev []byte
	for i := 0; i < 5; i++ {
		ctx := newTestContext()
		scale := mapper.NewScale(geom.Rect{W: 100, H: 100}, 0)
		p := NewPackager(ctx, scale, "Untitled")
		p.AddSlide("<p:pic/>", media)

		data, err := p.Build()
		require.NoError(t, err)
		entries := readZipEntries(t, data)
		rels := entries["ppt/slides/_rels/slide1.xml.rels"]
		require.NotEmpty(t, rels)
		if prev != nil {
			assert.Equal(t, string(prev), string(rels))
		}
		prev = rels
	}
}

func TestContentTypesOnlyListsUsedExtensions(t *testing.T) {
	ctx := newTestContext()
	scale := mapper.NewScale(geom.Rect{W: 100, H: 100}, 0)
	p := NewPackager(ctx, scale, "Untitled")
	p.AddSlide("<p:sp/>", nil)

	data, err := p.Build()
	require.NoError(t, err)
	entries := readZipEntries(t, data)

	ct := string(entries["[Content_Types].xml"])
	assert.NotContains(t, ct, `Extension="emf"`)
	assert.NotContains(t, ct, `Extension="png"`)
	assert.Contains(t, ct, `Extension="xml"`)
	assert.Contains(t, ct, `Extension="rels"`)
}

func TestContentTypesIncludesEMFWhenMediaPresent(t *testing.T) {
	ctx := newTestContext()
	scale := mapper.NewScale(geom.Rect{W: 100, H: 100}, 0)
	p := NewPackager(ctx, scale, "Untitled")
	p.AddSlide("<p:pic/>", []mapper.MediaPart{{RelID: "rId2", Ext: "emf", Data: []byte("x"), Hash: "abc123"}})

	data, err := p.Build()
	require.NoError(t, err)
	entries := readZipEntries(t, data)
	assert.Contains(t, string(entries["[Content_Types].xml"]), `Extension="emf"`)
}

func TestDocPropsAppIncludesGeneratorVersion(t *testing.T) {
	ctx := newTestContext()
	scale := mapper.NewScale(geom.Rect{W: 100, H: 100}, 0)
	p := NewPackager(ctx, scale, "Untitled")
	p.AddSlide("<p:sp/>", nil)

	data, err := p.Build()
	require.NoError(t, err)
	entries := readZipEntries(t, data)
	assert.Contains(t, string(entries["docProps/app.xml"]), "svg2pptx 1.0.0")
	assert.Contains(t, string(entries["docProps/core.xml"]), "Untitled")
}

func TestBuildFailsOnCancelledContext(t *testing.T) {
	cancelCtx, cancel := context.WithCancel(context.Background())
	cancel()
	ctx := svcs.NewContext(cancelCtx, svcs.Options{}, nil)
	scale := mapper.NewScale(geom.Rect{W: 100, H: 100}, 0)
	p := NewPackager(ctx, scale, "Untitled")
	p.AddSlide("<p:sp/>", nil)

	_, err := p.Build()
	assert.Error(t, err)
}

func TestResolvedGeneratorVersionIsCanonical(t *testing.T) {
	assert.Equal(t, "1.0.0", resolvedGeneratorVersion())
}
