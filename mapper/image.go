// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/BramAlkema/svg2pptx-sub018/internal/xmlw"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

// writeImage emits a <p:pic> for a raster or pre-synthesized-EMF Image
// node.
func (m *Mapper) writeImage(b *xmlw.Builder, img *ir.Image, accum geom.Matrix) {
	ext, ok := imageExt(img.Format)
	if !ok {
		m.ctx.Diagnostics.Warnf(svcs.CodeUnknownElement, img.Href,
			"nested SVG image references are not inlined by this mapper; recursive inlining belongs in preprocessing, skipping element")
		return
	}
	if len(img.Data) == 0 {
		m.ctx.Diagnostics.Warnf(svcs.CodeMissingReference, img.Href, "image has no decoded data, skipping element")
		return
	}
	id := m.ctx.NextShapeID()
	m.shapeIDs[img.ID()] = id
	relID := m.embedMedia(img.Data, ext)
	angle, sx, sy := decomposeRotationScale(accum)
	origin := accum.Apply(geom.Point{X: img.Rect.X, Y: img.Rect.Y})
	x, y := m.scale.EMU(origin)
	cx, cy := m.scale.Extent(img.Rect.W*sx, img.Rect.H*sy)

	b.Open("p:pic")
	b.Open("p:nvPicPr")
	b.SelfClose("p:cNvPr", xmlw.Af("id", "%d", id), xmlw.Af("name", "Image %d", id))
	b.SelfClose("p:cNvPicPr")
	b.SelfClose("p:nvPr")
	b.Close()

	b.Open("p:blipFill")
	b.SelfClose("a:blip", xmlw.A("r:embed", relID))
	b.Open("a:stretch")
	b.SelfClose("a:fillRect")
	b.Close()
	b.Close() // p:blipFill

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
	b.Close() // p:spPr
	b.Close() // p:pic
}

func imageExt(f ir.ImageFormat) (string, bool) {
	switch f {
	case ir.ImagePNG:
		return "png", true
	case ir.ImageJPEG:
		return "jpeg", true
	case ir.ImageEMF:
		return "emf", true
	default:
		return "", false
	}
}
