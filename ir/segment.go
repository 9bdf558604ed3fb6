// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ir defines the immutable Intermediate Representation value
// types the conversion pipeline operates on: Scene, Path, TextFrame,
// Group, Image, paints and strokes. IR nodes are created once by the
// parser/preprocessor/IR-construction stages and never mutated
// afterward (spec §3 Lifecycle); the policy engine's per-node decisions
// are carried on a side table, never folded into these types.
package ir

import "github.com/BramAlkema/svg2pptx-sub018/geom"

// Segment is the path-segment tagged variant from spec §3. Arc is kept
// symbolic so the type can represent IR built by producers other than
// the `d`-grammar path parser (which performs A2C eagerly); see
// LowerArcs for the one place arcs are actually converted to cubics.
type Segment struct {
	kind SegmentKind

	Start, End geom.Point

	// Cubic-only.
	C1, C2 geom.Point

	// Arc-only.
	RX, RY          float64
	XAxisRotation   float64 // degrees
	LargeArc, Sweep bool
}

// SegmentKind discriminates the Segment tagged variant.
type SegmentKind int

const (
	SegLine SegmentKind = iota
	SegCubic
	SegArc
)

// Kind returns the segment's tagged variant.
func (s Segment) Kind() SegmentKind { return s.kind }

// NewLine constructs a Line segment.
func NewLine(start, end geom.Point) Segment {
	return Segment{kind: SegLine, Start: start, End: end}
}

// NewCubic constructs a Cubic segment.
func NewCubic(start, c1, c2, end geom.Point) Segment {
	return Segment{kind: SegCubic, Start: start, C1: c1, C2: c2, End: end}
}

// NewArc constructs a symbolic Arc segment, per spec §3.
func NewArc(start, end geom.Point, rx, ry, xAxisRotationDeg float64, largeArc, sweep bool) Segment {
	return Segment{
		kind: SegArc, Start: start, End: end,
		RX: rx, RY: ry, XAxisRotation: xAxisRotationDeg,
		LargeArc: largeArc, Sweep: sweep,
	}
}
