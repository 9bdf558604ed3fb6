// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/BramAlkema/svg2pptx-sub018/internal/xmlw"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
)

// transformSegments bakes accum into every segment's points, used so a
// Group's transform (translation, rotation, scale, or skew) is fully
// reflected in the custGeom points DrawingML renders, rather than
// relying on <a:xfrm rot>, which cannot express skew at all.
func transformSegments(segs []ir.Segment, accum geom.Matrix) []ir.Segment {
	if accum.IsIdentity(1e-12) {
		return segs
	}
	out := make([]ir.Segment, len(segs))
	for i, s := range segs {
		switch s.Kind() {
		case ir.SegCubic:
			out[i] = ir.NewCubic(accum.Apply(s.Start), accum.Apply(s.C1), accum.Apply(s.C2), accum.Apply(s.End))
		default:
			out[i] = ir.NewLine(accum.Apply(s.Start), accum.Apply(s.End))
		}
	}
	return out
}

// writeNativePath emits a <p:sp> for a Path the policy engine marked
// native, per spec §4.5: "emit <p:sp> with <a:custGeom>, a <a:pathLst>
// with one <a:path> per subpath, and <a:moveTo>/<a:lnTo>/
// <a:cubicBezTo>/<a:close> children."
func (m *Mapper) writeNativePath(b *xmlw.Builder, p *ir.Path, accum geom.Matrix, effectXML string) {
	segs := transformSegments(p.Segments, accum)
	id := m.ctx.NextShapeID()
	m.shapeIDs[p.ID()] = id
	bounds := pathBounds(segs)
	x, y := m.scale.EMU(geom.Point{X: bounds.X, Y: bounds.Y})
	cx, cy := m.scale.Extent(bounds.W, bounds.H)

	b.Open("p:sp")
	b.Open("p:nvSpPr")
	b.SelfClose("p:cNvPr", xmlw.Af("id", "%d", id), xmlw.Af("name", "Path %d", id))
	b.SelfClose("p:cNvSpPr")
	b.SelfClose("p:nvPr")
	b.Close() // p:nvSpPr

	b.Open("p:spPr")
	b.Open("a:xfrm")
	b.SelfClose("a:off", xmlw.Af("x", "%d", x), xmlw.Af("y", "%d", y))
	b.SelfClose("a:ext", xmlw.Af("cx", "%d", cx), xmlw.Af("cy", "%d", cy))
	b.Close() // a:xfrm

	b.Open("a:custGeom")
	b.SelfClose("a:avLst")
	b.SelfClose("a:gdLst")
	b.SelfClose("a:ahLst")
	b.SelfClose("a:cxnLst")
	b.SelfClose("a:rect", xmlw.A("l", "0"), xmlw.A("t", "0"), xmlw.A("r", "0"), xmlw.A("b", "0"))
	b.Open("a:pathLst")
	writeCustGeomPath(b, segs, p.Closed, bounds, m.scale)
	b.Close() // a:pathLst
	b.Close() // a:custGeom

	writeFill(b, p.Fill)
	if p.Stroke != nil {
		_, sx, sy := decomposeRotationScale(accum)
		widthFactor := (sx + sy) / 2
		if widthFactor <= 0 {
			widthFactor = 1
		}
		writeLine(b, p.Stroke, m.scale, widthFactor)
	} else {
		b.SelfClose("a:ln")
	}
	if effectXML != "" {
		b.Raw(effectXML)
	}
	b.Close() // p:spPr

	b.Open("p:style")
	b.Close()
	b.Open("p:txBody")
	b.SelfClose("a:bodyPr")
	b.SelfClose("a:lstStyle")
	b.Open("a:p")
	b.Close()
	b.Close() // p:txBody
	b.Close() // p:sp
}

// writeCustGeomPath emits one <a:path> whose coordinate space is local
// to bounds (DrawingML custGeom paths are always expressed relative to
// their own bounding box, scaled to w/h below).
func writeCustGeomPath(b *xmlw.Builder, segs []ir.Segment, closed bool, bounds geom.Rect, scale Scale) {
	w, h := scale.Extent(bounds.W, bounds.H)
	b.Open("a:path", xmlw.Af("w", "%d", w), xmlw.Af("h", "%d", h))
	local := func(p geom.Point) (int64, int64) {
		return scale.Length(p.X - bounds.X), scale.Length(p.Y - bounds.Y)
	}
	if len(segs) > 0 {
		x, y := local(segs[0].Start)
		b.Open("a:moveTo")
		b.SelfClose("a:pt", xmlw.Af("x", "%d", x), xmlw.Af("y", "%d", y))
		b.Close()
	}
	for _, s := range segs {
		switch s.Kind() {
		case ir.SegLine, ir.SegArc:
			x, y := local(s.End)
			b.Open("a:lnTo")
			b.SelfClose("a:pt", xmlw.Af("x", "%d", x), xmlw.Af("y", "%d", y))
			b.Close()
		case ir.SegCubic:
			x1, y1 := local(s.C1)
			x2, y2 := local(s.C2)
			x3, y3 := local(s.End)
			b.Open("a:cubicBezTo")
			b.SelfClose("a:pt", xmlw.Af("x", "%d", x1), xmlw.Af("y", "%d", y1))
			b.SelfClose("a:pt", xmlw.Af("x", "%d", x2), xmlw.Af("y", "%d", y2))
			b.SelfClose("a:pt", xmlw.Af("x", "%d", x3), xmlw.Af("y", "%d", y3))
			b.Close()
		}
	}
	if closed {
		b.SelfClose("a:close")
	}
	b.Close() // a:path
}

func writeLine(b *xmlw.Builder, s *ir.Stroke, scale Scale, widthFactor float64) {
	w := scale.Length(s.Width * widthFactor)
	attrs := []xmlw.Attr{xmlw.Af("w", "%d", w)}
	switch s.Cap {
	case ir.CapRound:
		attrs = append(attrs, xmlw.A("cap", "rnd"))
	case ir.CapSquare:
		attrs = append(attrs, xmlw.A("cap", "sq"))
	default:
		attrs = append(attrs, xmlw.A("cap", "flat"))
	}
	b.Open("a:ln", attrs...)
	writeFill(b, &s.Paint)
	switch s.Join {
	case ir.JoinRound:
		b.SelfClose("a:round")
	case ir.JoinBevel:
		b.SelfClose("a:bevel")
	default:
		miter := int(s.MiterLimit * 1000)
		if miter <= 0 {
			miter = 800000
		}
		b.SelfClose("a:miter", xmlw.Af("lim", "%d", miter))
	}
	if len(s.DashArray) > 0 {
		b.SelfClose("a:prstDash", xmlw.A("val", dashPreset(s.DashArray)))
	}
	b.Close() // a:ln
}

// dashPreset maps a dash array to the closest PowerPoint preset dash
// style; DrawingML has no arbitrary-dash-array primitive so this is a
// lossy but standard approximation other OOXML writers also make.
func dashPreset(dashes []float64) string {
	if len(dashes) == 0 {
		return "solid"
	}
	if dashes[0] <= 2 {
		return "sysDot"
	}
	if len(dashes) >= 2 && dashes[0] > dashes[1]*2 {
		return "lgDash"
	}
	return "dash"
}

func pathBounds(segs []ir.Segment) geom.Rect {
	var r geom.Rect
	first := true
	grow := func(p geom.Point) {
		if first {
			r = geom.Rect{X: p.X, Y: p.Y, W: 0, H: 0}
			first = false
			return
		}
		if p.X < r.X {
			r.W += r.X - p.X
			r.X = p.X
		} else if p.X > r.X+r.W {
			r.W = p.X - r.X
		}
		if p.Y < r.Y {
			r.H += r.Y - p.Y
			r.Y = p.Y
		} else if p.Y > r.Y+r.H {
			r.H = p.Y - r.Y
		}
	}
	for _, s := range segs {
		grow(s.Start)
		grow(s.End)
		if s.Kind() == ir.SegCubic {
			grow(s.C1)
			grow(s.C2)
		}
	}
	return r
}
