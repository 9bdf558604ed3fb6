// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEasingForCalcModeFallback(t *testing.T) {
	accel, decel := easingFor(Animation{CalcMode: CalcLinear})
	assert.Equal(t, 0, accel)
	assert.Equal(t, 0, decel)

	accel, decel = easingFor(Animation{CalcMode: CalcSpline})
	assert.Equal(t, 20000, accel)
	assert.Equal(t, 20000, decel)
}

func TestEasingForKeySplinesOverridesCalcMode(t *testing.T) {
	a := Animation{
		CalcMode:   CalcLinear,
		KeySplines: []Spline{{X1: 0.5, Y1: 0, X2: 1, Y2: 1}},
	}
	accel, decel := easingFor(a)
	assert.Equal(t, 50000, accel)
	assert.Equal(t, 0, decel)
}

func TestEasingForDiscreteIsZero(t *testing.T) {
	accel, decel := easingFor(Animation{CalcMode: CalcDiscrete})
	assert.Equal(t, 0, accel)
	assert.Equal(t, 0, decel)
}
