// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mapper lowers policy-annotated IR into DrawingML/PresentationML
// XML fragments and side-tables of binary parts, per spec §4.5.
package mapper

import (
	"math"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
)

// defaultSlideWidthEMU targets a ~10-inch wide slide (spec §4.6:
// "derived from the SVG viewBox aspect ratio targeting a ~10-inch wide
// slide unless configured otherwise"). 1 inch = 914400 EMU.
const defaultSlideWidthEMU = 9144000

// widescreenWidthEMU/widescreenHeightEMU are PowerPoint's standard
// 16:9 slide dimensions, snapped to verbatim when the viewBox aspect
// ratio is close to 16:9 and the caller hasn't configured a slide
// width explicitly (spec §6: "widescreen default 12192000 × 6858000
// when aspect ratio ≈ 16:9").
const (
	widescreenWidthEMU  = 12192000
	widescreenHeightEMU = 6858000
	sixteenNine         = 16.0 / 9.0
	aspectTolerance     = 0.02
)

// isWidescreen reports whether a viewBox's aspect ratio is within
// aspectTolerance of 16:9.
func isWidescreen(vw, vh float64) bool {
	ratio := vw / vh
	return math.Abs(ratio-sixteenNine) < sixteenNine*aspectTolerance
}

// Scale converts user-space SVG coordinates to EMU, per spec §4.5:
// "emu = round(user_units · scale) where scale =
// slide_width_emu / viewbox_width". Both axes use that one factor
// (Y == X); NewScale derives the slide height from the viewBox aspect
// ratio, except under the 16:9 widescreen snap, where the height is the
// fixed widescreenHeightEMU.
type Scale struct {
	X, Y float64

	// SlideWidthEMU and SlideHeightEMU are the target slide's
	// dimensions, carried alongside the scale factors since the
	// packager needs them for <p:sldSz>.
	SlideWidthEMU, SlideHeightEMU int64
}

// NewScale derives a Scale from a viewBox and a configured slide width
// (0 meaning "derive from aspect ratio", spec §6).
func NewScale(viewBox geom.Rect, slideWidthEMU int64) Scale {
	vw, vh := viewBox.W, viewBox.H
	if vw <= 0 {
		vw = 1
	}
	if vh <= 0 {
		vh = 1
	}
	if slideWidthEMU <= 0 && isWidescreen(vw, vh) {
		xScale := float64(widescreenWidthEMU) / vw
		return Scale{X: xScale, Y: xScale, SlideWidthEMU: widescreenWidthEMU, SlideHeightEMU: widescreenHeightEMU}
	}
	if slideWidthEMU <= 0 {
		slideWidthEMU = defaultSlideWidthEMU
	}
	xScale := float64(slideWidthEMU) / vw
	slideHeightEMU := int64(math.Round(vh * xScale))
	return Scale{X: xScale, Y: xScale, SlideWidthEMU: slideWidthEMU, SlideHeightEMU: slideHeightEMU}
}

// EMU converts a user-space point to non-negative EMU coordinates
// (spec §4.5: "All emitted integers are non-negative EMU unless
// expressing an offset relative to a positioned element").
func (s Scale) EMU(p geom.Point) (x, y int64) {
	return emuRound(p.X * s.X), emuRound(p.Y * s.Y)
}

// Extent converts a user-space width/height pair to an EMU extent.
func (s Scale) Extent(w, h float64) (cx, cy int64) {
	return emuRound(w * s.X), emuRound(h * s.Y)
}

// Length converts a single user-space scalar (e.g. a stroke width)
// using the X scale factor.
func (s Scale) Length(v float64) int64 {
	return emuRound(v * s.X)
}

func emuRound(v float64) int64 {
	r := int64(math.Round(v))
	if r < 0 {
		return 0
	}
	return r
}
