// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svcs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContextNormalizesOptions(t *testing.T) {
	c := NewContext(context.Background(), Options{}, nil)
	assert.Equal(t, ProfileBalanced, c.Options.Profile)
	assert.Equal(t, 24, c.Options.BakeFPS)
	require.NotNil(t, c.Fonts)
}

func TestContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := NewContext(ctx, Options{}, nil)
	assert.False(t, c.Cancelled())
	cancel()
	assert.True(t, c.Cancelled())
}

func TestShapeIDSequence(t *testing.T) {
	c := NewContext(context.Background(), Options{}, nil)
	c.ResetShapeIDs()
	assert.Equal(t, 2, c.NextShapeID())
	assert.Equal(t, 3, c.NextShapeID())
	c.ResetShapeIDs()
	assert.Equal(t, 2, c.NextShapeID())
}

func TestRelIDPerPart(t *testing.T) {
	c := NewContext(context.Background(), Options{}, nil)
	assert.Equal(t, 1, c.NextRelID("slide1.xml"))
	assert.Equal(t, 2, c.NextRelID("slide1.xml"))
	assert.Equal(t, 1, c.NextRelID("slide2.xml"))
}

func TestFontServiceFallbackAndFuzzy(t *testing.T) {
	fs := NewFontService(map[string]string{"Helvetica": "Arial"}, []string{"Arial", "Calibri"})
	assert.Equal(t, "Arial", fs.Resolve("Helvetica"))
	assert.Equal(t, "Arial", fs.Resolve("Arial"))
	assert.NotEmpty(t, fs.Resolve("Arail"))
}

func TestFontServiceIsKnown(t *testing.T) {
	fs := NewFontService(map[string]string{"Helvetica": "Arial"}, []string{"Arial", "Calibri"})
	assert.True(t, fs.IsKnown("Arial"))
	assert.False(t, fs.IsKnown("Helvetica"))
	assert.False(t, fs.IsKnown("Comic Sans MS"))
}

func TestDiagnosticsAccumulate(t *testing.T) {
	var d Diagnostics
	d.Warnf(CodeMissingReference, "/svg/rect[2]", "fill references unknown id %q", "grad1")
	d.Errorf(CodePathSyntax, "/svg/path[0]", "unexpected command %q at offset %d", "Z", 12)
	all := d.All()
	require.Len(t, all, 2)
	assert.Equal(t, SeverityWarning, all[0].Severity)
	assert.Equal(t, SeverityError, all[1].Severity)
	assert.True(t, d.HasErrors())
}
