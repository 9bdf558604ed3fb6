// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pathdata parses the SVG path `d` grammar into a sequence of
// line and cubic Bezier segments, converting elliptical arcs to cubic
// chains (A2C) using an exact subtended-angle decomposition.
package pathdata

import "github.com/BramAlkema/svg2pptx-sub018/geom"

// Segment is one drawing instruction of a flattened path. Arcs never
// survive past parsing: Parse always emits Line or Cubic segments, per
// spec §3's note that Segment.Arc is "kept symbolic until lowering" at
// the IR layer but the path parser itself performs the lowering
// immediately (the IR's Arc variant exists only for producers that build
// IR paths directly, bypassing text `d` parsing).
type Segment struct {
	Kind             SegmentKind
	Start, End       geom.Point
	C1, C2           geom.Point // Cubic control points; zero for Line
}

// SegmentKind discriminates the Segment tagged variant.
type SegmentKind int

const (
	// KindLine is a straight line from Start to End.
	KindLine SegmentKind = iota
	// KindCubic is a cubic Bezier from Start to End via C1, C2.
	KindCubic
)

// Line constructs a KindLine segment.
func Line(start, end geom.Point) Segment {
	return Segment{Kind: KindLine, Start: start, End: end}
}

// Cubic constructs a KindCubic segment.
func Cubic(start, c1, c2, end geom.Point) Segment {
	return Segment{Kind: KindCubic, Start: start, C1: c1, C2: c2, End: end}
}

// Subpath is a maximal run of segments sharing one current-point chain,
// started by a moveto and optionally closed.
type Subpath struct {
	Segments []Segment
	Closed   bool
}

// StartPoint returns the subpath's first point, or the zero Point if
// empty.
func (s Subpath) StartPoint() geom.Point {
	if len(s.Segments) == 0 {
		return geom.Point{}
	}
	return s.Segments[0].Start
}

// EndPoint returns the subpath's last point, or the zero Point if empty.
func (s Subpath) EndPoint() geom.Point {
	if len(s.Segments) == 0 {
		return geom.Point{}
	}
	return s.Segments[len(s.Segments)-1].End
}
