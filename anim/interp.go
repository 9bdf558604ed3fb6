// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"math"
	"strconv"
	"strings"

	"github.com/BramAlkema/svg2pptx-sub018/irbuild"
)

func parseNumberList(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err == nil {
			out = append(out, v)
		}
	}
	return out
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func lerpVec(a, b []float64, t float64) []float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = lerp(a[i], b[i], t)
	}
	return out
}

func vecDistance(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		d := b[i] - a[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// srgbToLinear and linearToSRGB implement the standard sRGB transfer
// function (spec §4.8 "Color interpolation is component-wise in linear
// sRGB; output re-encoded to sRGB").
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerpColor blends two 24-bit sRGB colors at fraction t, converting to
// linear sRGB for the blend and back.
func lerpColor(a, b uint32, t float64) uint32 {
	ar, ag, ab := channel(a, 16), channel(a, 8), channel(a, 0)
	br, bg, bb := channel(b, 16), channel(b, 8), channel(b, 0)
	r := linearToSRGB(lerp(srgbToLinear(ar), srgbToLinear(br), t))
	g := linearToSRGB(lerp(srgbToLinear(ag), srgbToLinear(bg), t))
	bl := linearToSRGB(lerp(srgbToLinear(ab), srgbToLinear(bb), t))
	return packRGB(clamp01(r), clamp01(g), clamp01(bl))
}

func channel(rgb uint32, shift uint) float64 {
	return float64((rgb>>shift)&0xFF) / 255
}

func packRGB(r, g, b float64) uint32 {
	ri := uint32(r*255 + 0.5)
	gi := uint32(g*255 + 0.5)
	bi := uint32(b*255 + 0.5)
	return ri<<16 | gi<<8 | bi
}

func parseColorValue(s string) (uint32, bool) {
	rgb, _, ok, err := irbuild.ParseColor(s)
	if err != nil || !ok {
		return 0, false
	}
	return rgb, true
}

// keyTimesOrEven returns kt if it has exactly n entries, otherwise an evenly spaced
// [0,1] sequence with n entries (spec §4.8 "when absent, even spacing
// is implied").
func keyTimesOrEven(kt []float64, n int) []float64 {
	if len(kt) == n {
		return kt
	}
	if n <= 1 {
		return []float64{0}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

// pacedKeyTimes reparameterizes key times by cumulative Euclidean
// distance between consecutive numeric values (spec §4.8 "calcMode=paced:
// reparameterize key-times by the cumulative Euclidean distance between
// values").
func pacedKeyTimes(values [][]float64) []float64 {
	n := len(values)
	out := make([]float64, n)
	if n <= 1 {
		return out
	}
	dists := make([]float64, n-1)
	total := 0.0
	for i := 0; i < n-1; i++ {
		dists[i] = vecDistance(values[i], values[i+1])
		total += dists[i]
	}
	if total == 0 {
		return keyTimesOrEven(nil, n)
	}
	cum := 0.0
	for i := 1; i < n; i++ {
		cum += dists[i-1]
		out[i] = cum / total
	}
	return out
}

// segmentFor locates the [keyTimes[i], keyTimes[i+1]] interval
// containing t and returns the segment index and the local fraction
// within it.
func segmentFor(keyTimes []float64, t float64) (idx int, localT float64) {
	n := len(keyTimes)
	if n < 2 {
		return 0, 0
	}
	if t <= keyTimes[0] {
		return 0, 0
	}
	if t >= keyTimes[n-1] {
		return n - 2, 1
	}
	for i := 0; i < n-1; i++ {
		if t >= keyTimes[i] && t <= keyTimes[i+1] {
			span := keyTimes[i+1] - keyTimes[i]
			if span <= 0 {
				return i, 0
			}
			return i, (t - keyTimes[i]) / span
		}
	}
	return n - 2, 1
}

// splineRemap bisects the cubic-Bezier easing curve defined by sp (fixed
// endpoints (0,0),(1,1)) to find the y value corresponding to x = localT,
// per spec §4.8: "bisection on x (≤ 10 iterations; ε = 1e-3)".
func splineRemap(sp Spline, x float64) float64 {
	lo, hi := 0.0, 1.0
	for i := 0; i < 10 && hi-lo > 1e-3; i++ {
		mid := (lo + hi) / 2
		if cubicBezier1D(sp.X1, sp.X2, mid) < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	t := (lo + hi) / 2
	return cubicBezier1D(sp.Y1, sp.Y2, t)
}

func cubicBezier1D(p1, p2, t float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}
