// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/BramAlkema/svg2pptx-sub018/pathdata"

// LowerArcs replaces every symbolic Arc segment in segs with its cubic
// approximation (spec §4.1 A2C), leaving Line and Cubic segments
// untouched. Called once during IR construction so that every stage
// downstream of irbuild can assume segments are never Arc (the mapper,
// in particular, only knows how to emit lnTo/cubicBezTo).
func LowerArcs(segs []Segment) []Segment {
	hasArc := false
	for _, s := range segs {
		if s.kind == SegArc {
			hasArc = true
			break
		}
	}
	if !hasArc {
		return segs
	}
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if s.kind != SegArc {
			out = append(out, s)
			continue
		}
		cubics := pathdata.ArcToCubics(s.Start, s.End, s.RX, s.RY, s.XAxisRotation, s.LargeArc, s.Sweep)
		if len(cubics) == 0 {
			// Degenerate arc (coincident endpoints): emit nothing, per
			// spec §3 invariant 5 ("no-op" segments are permitted).
			continue
		}
		for _, c := range cubics {
			if c.Kind == pathdata.KindLine {
				out = append(out, NewLine(c.Start, c.End))
			} else {
				out = append(out, NewCubic(c.Start, c.C1, c.C2, c.End))
			}
		}
	}
	return out
}
