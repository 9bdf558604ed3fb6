// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"strconv"
	"strings"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
)

// Format renders subpaths back to an SVG path `d` string using absolute
// commands only (M/L/C/Z). The preprocessor uses this to re-serialize a
// path after baking a transform into its geometry (spec §4.2 "transform
// flattening"); round-tripping through Parse/Format is the simplest way
// to keep the rest of the pipeline oblivious to where a `d` string came
// from.
func Format(subs []Subpath) string {
	var b strings.Builder
	for _, sp := range subs {
		if len(sp.Segments) == 0 {
			continue
		}
		writeCmd(&b, 'M', sp.Segments[0].Start)
		for _, seg := range sp.Segments {
			switch seg.Kind {
			case KindLine:
				writeCmd(&b, 'L', seg.End)
			case KindCubic:
				b.WriteString("C ")
				writeNum(&b, seg.C1.X)
				b.WriteByte(' ')
				writeNum(&b, seg.C1.Y)
				b.WriteByte(' ')
				writeNum(&b, seg.C2.X)
				b.WriteByte(' ')
				writeNum(&b, seg.C2.Y)
				b.WriteByte(' ')
				writeNum(&b, seg.End.X)
				b.WriteByte(' ')
				writeNum(&b, seg.End.Y)
				b.WriteByte(' ')
			}
		}
		if sp.Closed {
			b.WriteString("Z ")
		}
	}
	return strings.TrimSpace(b.String())
}

func writeCmd(b *strings.Builder, cmd byte, p geom.Point) {
	b.WriteByte(cmd)
	b.WriteByte(' ')
	writeNum(b, p.X)
	b.WriteByte(' ')
	writeNum(b, p.Y)
	b.WriteByte(' ')
}

func writeNum(b *strings.Builder, v float64) {
	b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}
