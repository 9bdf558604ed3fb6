// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleAnimationNumericLinear(t *testing.T) {
	a := Animation{Values: []string{"0", "10"}, CalcMode: CalcLinear}
	got := sampleAnimationNumeric(a, 0.5)
	assert.Equal(t, []float64{5}, got)
}

func TestSampleAnimationNumericDiscrete(t *testing.T) {
	a := Animation{Values: []string{"0", "10", "20"}, CalcMode: CalcDiscrete}
	got := sampleAnimationNumeric(a, 0.6)
	assert.Equal(t, []float64{10}, got)
}

func TestSampleAnimationNumericSingleValue(t *testing.T) {
	a := Animation{Values: []string{"42"}}
	got := sampleAnimationNumeric(a, 0.9)
	assert.Equal(t, []float64{42}, got)
}

func TestSampleAnimationNumericPaced(t *testing.T) {
	a := Animation{Values: []string{"0", "1", "4"}, CalcMode: CalcPaced}
	got := sampleAnimationNumeric(a, 0.25) // quarter of the total distance of 4
	assert.InDelta(t, 1, got[0], 1e-9)
}

func TestSampleAnimationColorLinear(t *testing.T) {
	a := Animation{Values: []string{"#000000", "#ffffff"}}
	c, ok := sampleAnimationColor(a, 1)
	assert.True(t, ok)
	assert.Equal(t, uint32(0xffffff), c)
}

func TestSampleAnimationColorInvalidValueFailsClosed(t *testing.T) {
	a := Animation{Values: []string{"#000000", "not-a-color"}}
	_, ok := sampleAnimationColor(a, 0.5)
	assert.False(t, ok)
}
