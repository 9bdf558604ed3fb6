// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/BramAlkema/svg2pptx-sub018/internal/xmlw"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
)

// writeTextFrame emits a <p:sp> whose <p:txBody> carries the frame's
// runs, per spec §4.5: "one <a:p> per logical line and one <a:r> per
// Run, with <a:rPr> reflecting font family, size (pt × 100), weight,
// italic, color."
//
// Runs are not pre-split into logical lines at the IR layer (spec §3),
// so every run in a TextFrame is emitted into a single <a:p>; an
// explicit line break would require a Run carrying a "\n" marker,
// which irbuild's tspan handling does not currently produce.
func (m *Mapper) writeTextFrame(b *xmlw.Builder, tf *ir.TextFrame, accum geom.Matrix) {
	id := m.ctx.NextShapeID()
	m.shapeIDs[tf.ID()] = id
	angle, sx, sy := decomposeRotationScale(accum)
	origin := accum.Apply(tf.Origin)
	x, y := m.scale.EMU(origin)
	cx, cy := m.scale.Extent(tf.Width*sx, tf.Height*sy)

	b.Open("p:sp")
	b.Open("p:nvSpPr")
	b.SelfClose("p:cNvPr", xmlw.Af("id", "%d", id), xmlw.Af("name", "TextFrame %d", id))
	b.SelfClose("p:cNvSpPr", xmlw.A("txBox", "1"))
	b.SelfClose("p:nvPr")
	b.Close()

	b.Open("p:spPr")
	xfrmAttrs := []xmlw.Attr{}
	if rot := rotClockwise60k(angle); rot != 0 {
		xfrmAttrs = append(xfrmAttrs, xmlw.Af("rot", "%d", rot))
	}
	b.Open("a:xfrm", xfrmAttrs...)
	b.SelfClose("a:off", xmlw.Af("x", "%d", x), xmlw.Af("y", "%d", y))
	b.SelfClose("a:ext", xmlw.Af("cx", "%d", cx), xmlw.Af("cy", "%d", cy))
	b.Close()
	b.SelfClose("a:prstGeom", xmlw.A("prst", "rect"))
	b.SelfClose("a:noFill")
	b.Close() // p:spPr

	b.Open("p:txBody")
	b.SelfClose("a:bodyPr", xmlw.A("wrap", "none"), xmlw.A("anchor", "t"))
	b.SelfClose("a:lstStyle")
	b.Open("a:p")
	b.SelfClose("a:pPr", xmlw.A("algn", anchorAlign(tf.Anchor)))
	for _, run := range tf.Runs {
		writeRun(b, run, m)
	}
	b.Close() // a:p
	b.Close() // p:txBody
	b.Close() // p:sp
}

func anchorAlign(a ir.TextAnchor) string {
	switch a {
	case ir.AnchorMiddle:
		return "ctr"
	case ir.AnchorEnd:
		return "r"
	default:
		return "l"
	}
}

func writeRun(b *xmlw.Builder, run ir.Run, m *Mapper) {
	b.Open("a:r")
	b.Open("a:rPr", runPropAttrs(run)...)
	srgbClr(b, run.RGB, run.Alpha)
	b.SelfClose("a:latin", xmlw.A("typeface", m.fonts.Resolve(run.FontFamily)))
	b.Close() // a:rPr
	b.Open("a:t")
	b.Text(run.Text)
	b.Close()
	b.Close() // a:r
}

func runPropAttrs(run ir.Run) []xmlw.Attr {
	attrs := []xmlw.Attr{xmlw.Af("sz", "%d", int(run.SizePt*100))}
	if run.Bold {
		attrs = append(attrs, xmlw.A("b", "1"))
	}
	if run.Italic {
		attrs = append(attrs, xmlw.A("i", "1"))
	}
	if run.Direction == ir.DirRTL {
		attrs = append(attrs, xmlw.A("rtl", "1"))
	}
	return attrs
}
