// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLengthUnits(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"100px", 100},
		{"1in", 96},
		{"2.54cm", 96},
		{"72pt", 96},
		{"1pc", 16},
	}
	for _, c := range cases {
		l, err := ParseLength(c.in)
		require.NoError(t, err, c.in)
		assert.InDelta(t, c.want, l.Px(0), 1e-6, c.in)
	}
}

func TestParseLengthPercent(t *testing.T) {
	l, err := ParseLength("50%")
	require.NoError(t, err)
	assert.Equal(t, UnitPercent, l.Unit)
	assert.InDelta(t, 50, l.Px(100), 1e-9)
}

func TestParseLengthInvalid(t *testing.T) {
	_, err := ParseLength("abc")
	assert.Error(t, err)
	_, err = ParseLength("")
	assert.Error(t, err)
}
