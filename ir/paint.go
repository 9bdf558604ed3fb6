// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/BramAlkema/svg2pptx-sub018/geom"

// SpreadMethod is a gradient's behavior past its defined extent.
type SpreadMethod int

const (
	SpreadPad SpreadMethod = iota
	SpreadReflect
	SpreadRepeat
)

// GradientUnits selects the coordinate space gradient geometry is
// expressed in.
type GradientUnits int

const (
	UnitsObjectBoundingBox GradientUnits = iota
	UnitsUserSpaceOnUse
)

// GradientStop is one color stop. Offsets across a gradient's Stops are
// monotonically non-decreasing (spec §3 invariant 4).
type GradientStop struct {
	Offset float64 // [0,1]
	RGB    uint32  // 24-bit sRGB, 0xRRGGBB
	Alpha  float32 // [0,1]
}

// Paint is the fill/stroke-color tagged variant from spec §3. Kind()
// reports which variant a value holds; callers switch on it and read
// only that variant's fields below.
type Paint struct {
	kind PaintKind

	// Solid
	RGB   uint32
	Alpha float32

	// LinearGradient / RadialGradient
	Stops     []GradientStop
	Spread    SpreadMethod
	Units     GradientUnits
	Transform geom.Matrix

	// LinearGradient
	Start, End geom.Point

	// RadialGradient
	Center, Focus geom.Point
	Radius        float64

	// Pattern
	TileID   string
	TileSize geom.Rect
}

// PaintKind discriminates the Paint tagged variant.
type PaintKind int

const (
	PaintSolid PaintKind = iota
	PaintLinearGradient
	PaintRadialGradient
	PaintPattern
)

// Kind returns the paint's tagged variant.
func (p Paint) Kind() PaintKind { return p.kind }

// NewSolid constructs a Solid paint.
func NewSolid(rgb uint32, alpha float32) Paint {
	return Paint{kind: PaintSolid, RGB: rgb, Alpha: alpha}
}

// NewLinearGradient constructs a LinearGradient paint. Callers (irbuild)
// are responsible for the spec §3 invariant that every gradient carries
// at least two stops before calling this constructor — malformed SVG
// gradients are padded or replaced with a solid fallback upstream (spec
// §7), never panicked on here.
func NewLinearGradient(stops []GradientStop, start, end geom.Point, spread SpreadMethod, units GradientUnits, transform geom.Matrix) Paint {
	return Paint{
		kind: PaintLinearGradient, Stops: stops, Start: start, End: end,
		Spread: spread, Units: units, Transform: transform,
	}
}

// NewRadialGradient constructs a RadialGradient paint. See
// NewLinearGradient for the stop-count invariant.
func NewRadialGradient(stops []GradientStop, center, focus geom.Point, radius float64, spread SpreadMethod, units GradientUnits, transform geom.Matrix) Paint {
	return Paint{
		kind: PaintRadialGradient, Stops: stops, Center: center, Focus: focus,
		Radius: radius, Spread: spread, Units: units, Transform: transform,
	}
}

// NewPattern constructs a Pattern paint referencing a tile by ID.
func NewPattern(tileID string, tileSize geom.Rect, units GradientUnits, transform geom.Matrix) Paint {
	return Paint{kind: PaintPattern, TileID: tileID, TileSize: tileSize, Units: units, Transform: transform}
}
