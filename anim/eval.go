// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

func numericValues(values []string) [][]float64 {
	out := make([][]float64, len(values))
	for i, v := range values {
		out[i] = parseNumberList(v)
	}
	return out
}

// sampleAnimationNumeric evaluates a's numeric value list at local
// progress t in [0,1], dispatching on calcMode per spec §4.8
// "Interpolation".
func sampleAnimationNumeric(a Animation, t float64) []float64 {
	vecs := numericValues(a.Values)
	if len(vecs) == 0 {
		return nil
	}
	if len(vecs) == 1 {
		return vecs[0]
	}
	var kt []float64
	if a.CalcMode == CalcPaced {
		kt = pacedKeyTimes(vecs)
	} else {
		kt = keyTimesOrEven(a.KeyTimes, len(vecs))
	}
	idx, localT := segmentFor(kt, t)
	if a.CalcMode == CalcDiscrete {
		return vecs[idx]
	}
	if a.CalcMode == CalcSpline && idx < len(a.KeySplines) {
		localT = splineRemap(a.KeySplines[idx], localT)
	}
	return lerpVec(vecs[idx], vecs[idx+1], localT)
}

// sampleAnimationColor evaluates a's color value list at local progress
// t in [0,1] (spec §4.8 "Color interpolation is component-wise in
// linear sRGB"). Returns false if any value fails to parse as a color.
func sampleAnimationColor(a Animation, t float64) (uint32, bool) {
	cols := make([]uint32, 0, len(a.Values))
	for _, v := range a.Values {
		c, ok := parseColorValue(v)
		if !ok {
			return 0, false
		}
		cols = append(cols, c)
	}
	if len(cols) == 0 {
		return 0, false
	}
	if len(cols) == 1 {
		return cols[0], true
	}
	kt := keyTimesOrEven(a.KeyTimes, len(cols))
	idx, localT := segmentFor(kt, t)
	if a.CalcMode == CalcDiscrete {
		return cols[idx], true
	}
	return lerpColor(cols[idx], cols[idx+1], localT), true
}
