// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPreprocess(t *testing.T, src string) *NormalizedDoc {
	t.Helper()
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	nd, err := Preprocess(doc)
	require.NoError(t, err)
	return nd
}

func TestParseBasicRect(t *testing.T) {
	nd := mustPreprocess(t, `<svg viewBox="0 0 100 60"><rect x="10" y="10" width="80" height="40" fill="#0066CC"/></svg>`)
	require.Len(t, nd.Root.Children, 1)
	p := nd.Root.Children[0]
	assert.Equal(t, "path", p.Name)
	assert.Equal(t, "#0066CC", p.Attr("fill"))
	assert.NotEmpty(t, p.Attr("d"))
	assert.Equal(t, "10", p.Attr("data-rect-x"))
}

func TestViewportDerivedFromWidthHeight(t *testing.T) {
	nd := mustPreprocess(t, `<svg width="200" height="100"><rect width="10" height="10"/></svg>`)
	assert.Equal(t, 200.0, nd.ViewBox.W)
	assert.Equal(t, 100.0, nd.ViewBox.H)
}

func TestViewportDerivedFromViewBox(t *testing.T) {
	nd := mustPreprocess(t, `<svg viewBox="0 0 50 25"><rect width="1" height="1"/></svg>`)
	assert.Equal(t, 50.0, nd.Width)
	assert.Equal(t, 25.0, nd.Height)
}

func TestCircleToPath(t *testing.T) {
	nd := mustPreprocess(t, `<svg viewBox="0 0 10 10"><circle cx="5" cy="5" r="3"/></svg>`)
	p := nd.Root.Children[0]
	assert.Equal(t, "path", p.Name)
	assert.Contains(t, p.Attr("d"), "C ")
}

func TestPolygonToPath(t *testing.T) {
	nd := mustPreprocess(t, `<svg viewBox="0 0 10 10"><polygon points="0,0 10,0 5,10"/></svg>`)
	p := nd.Root.Children[0]
	assert.Equal(t, "path", p.Name)
	assert.Contains(t, p.Attr("d"), "Z")
}

func TestEmptyGroupRemoved(t *testing.T) {
	nd := mustPreprocess(t, `<svg viewBox="0 0 10 10"><g id="empty"></g><rect width="1" height="1"/></svg>`)
	require.Len(t, nd.Root.Children, 1)
	assert.Equal(t, "path", nd.Root.Children[0].Name)
}

func TestTranslateBakedIntoPath(t *testing.T) {
	nd := mustPreprocess(t, `<svg viewBox="0 0 100 100"><g transform="translate(10,20)"><rect x="0" y="0" width="5" height="5"/></g></svg>`)
	require.Len(t, nd.Root.Children, 1)
	g := nd.Root.Children[0]
	assert.Equal(t, "g", g.Name)
	assert.Empty(t, g.Attr("transform"))
	p := g.Children[0]
	assert.Contains(t, p.Attr("d"), "10")
}

func TestRotationPreservedOnGroup(t *testing.T) {
	nd := mustPreprocess(t, `<svg viewBox="0 0 100 100"><g transform="rotate(45)"><rect x="0" y="0" width="5" height="5"/></g></svg>`)
	g := nd.Root.Children[0]
	assert.NotEmpty(t, g.Attr("transform"))
}

func TestNamespaceAttached(t *testing.T) {
	nd := mustPreprocess(t, `<svg viewBox="0 0 1 1"><rect width="1" height="1"/></svg>`)
	assert.Equal(t, svgNamespace, nd.Root.Attr("xmlns"))
}

func TestRoundedRectProducesCubics(t *testing.T) {
	nd := mustPreprocess(t, `<svg viewBox="0 0 40 40"><rect x="0" y="0" width="40" height="20" rx="5" ry="5"/></svg>`)
	p := nd.Root.Children[0]
	assert.Contains(t, p.Attr("d"), "C ")
}
