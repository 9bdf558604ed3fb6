// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"math"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
)

// decomposeRotationScale extracts a clockwise rotation angle (degrees)
// and uniform-ish X/Y scale factors from an affine matrix, ignoring
// any skew component. DrawingML's <a:xfrm rot="..."> only expresses
// rotation (plus independent flips), never arbitrary skew, so a Group
// whose transform carries skew renders with the skew silently dropped
// here — Path geometry does not take this path at all (writeNativePath
// bakes the full matrix, skew included, directly into custGeom points).
func decomposeRotationScale(m geom.Matrix) (angleDeg, sx, sy float64) {
	sx = math.Hypot(m.A, m.B)
	sy = math.Hypot(m.C, m.D)
	angleDeg = math.Atan2(m.B, m.A) * 180 / math.Pi
	return angleDeg, sx, sy
}

// rotClockwise60k converts a clockwise-positive degree angle to
// DrawingML's 60,000ths-of-a-degree rot attribute unit.
func rotClockwise60k(deg float64) int {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return int(deg*60000 + 0.5)
}
