// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/BramAlkema/svg2pptx-sub018/emf"
	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/BramAlkema/svg2pptx-sub018/internal/xmlw"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

// writeEMFPath emits a <p:pic> whose <p:blipFill> references an EMF
// rendering of the path, for paths the policy engine declined to emit
// natively or whose filter chain needs the raster fallback (spec
// §4.5: "synthesize an EMF rendering of the path, add a relationship,
// emit <a:blipFill> referencing it").
func (m *Mapper) writeEMFPath(b *xmlw.Builder, p *ir.Path, accum geom.Matrix, effectXML string) {
	segs := transformSegments(p.Segments, accum)
	id := m.ctx.NextShapeID()
	m.shapeIDs[p.ID()] = id
	bounds := pathBounds(segs)
	blob := pathToEMF(p, segs, bounds)
	relID := m.embedMedia(blob, "emf")

	x, y := m.scale.EMU(geom.Point{X: bounds.X, Y: bounds.Y})
	cx, cy := m.scale.Extent(bounds.W, bounds.H)

	b.Open("p:pic")
	b.Open("p:nvPicPr")
	b.SelfClose("p:cNvPr", xmlw.Af("id", "%d", id), xmlw.Af("name", "PathFallback %d", id))
	b.SelfClose("p:cNvPicPr")
	b.SelfClose("p:nvPr")
	b.Close() // p:nvPicPr

	b.Open("p:blipFill")
	b.SelfClose("a:blip", xmlw.A("r:embed", relID))
	b.Open("a:stretch")
	b.SelfClose("a:fillRect")
	b.Close()
	b.Close() // p:blipFill

	b.Open("p:spPr")
	b.Open("a:xfrm")
	b.SelfClose("a:off", xmlw.Af("x", "%d", x), xmlw.Af("y", "%d", y))
	b.SelfClose("a:ext", xmlw.Af("cx", "%d", cx), xmlw.Af("cy", "%d", cy))
	b.Close()
	b.SelfClose("a:prstGeom", xmlw.A("prst", "rect"))
	if effectXML != "" {
		b.Raw(effectXML)
	}
	b.Close() // p:spPr
	b.Close() // p:pic
}

// pathToEMF renders the path's outline as a synthesized EMF blob in
// its own local coordinate space (0,0 at bounds' top-left), using the
// fill/stroke colors as pen/brush objects. Arcs never reach this
// function: irbuild's Scene.NewPath lowers them via LowerArcs before
// the policy engine or mapper ever sees the Path (see ir/lower.go), so
// SegArc is handled defensively but is not expected in practice.
func pathToEMF(p *ir.Path, segs []ir.Segment, bounds geom.Rect) []byte {
	const localScale = 100 // local units per user-space unit, matching EMF's 0.01mm device convention closely enough for a fallback raster source
	w := int32(bounds.W * localScale)
	h := int32(bounds.H * localScale)
	logicalBounds := emf.Rect{Left: 0, Top: 0, Right: w, Bottom: h}
	b := emf.New(logicalBounds, emf.Rect{Left: 0, Top: 0, Right: w, Bottom: h})

	if p.Fill != nil && p.Fill.Kind() == ir.PaintSolid {
		brush := b.CreateBrushIndirect(bgrFromRGB(p.Fill.RGB))
		b.SelectObject(brush)
	}
	if p.Stroke != nil {
		width := int32(p.Stroke.Width * localScale)
		if width < 1 {
			width = 1
		}
		pen := b.CreatePen(emf.PenSolid, width, bgrFromRGB(p.Stroke.Paint.RGB))
		b.SelectObject(pen)
	} else {
		b.SelectObject(b.CreatePen(emf.PenNull, 0, 0))
	}

	local := func(pt geom.Point) emf.Point16 {
		return emf.Point16FromFloat((pt.X-bounds.X)*localScale, (pt.Y-bounds.Y)*localScale)
	}
	pts := make([]emf.Point16, 0, len(segs)+1)
	if len(segs) > 0 {
		pts = append(pts, local(segs[0].Start))
	}
	for _, seg := range segs {
		pts = append(pts, local(seg.End))
	}
	if p.Fill != nil && len(pts) >= 3 {
		b.Polygon16(logicalBounds, pts)
	} else if len(pts) >= 2 {
		b.MoveToEx(pts[0])
		for _, pt := range pts[1:] {
			b.LineTo(pt)
		}
	}
	return b.Finalize()
}

// bgrFromRGB converts this module's 0xRRGGBB convention to the
// 0x00BBGGRR COLORREF layout EMF pen/brush records use.
func bgrFromRGB(rgb uint32) uint32 {
	r := (rgb >> 16) & 0xFF
	g := (rgb >> 8) & 0xFF
	bch := rgb & 0xFF
	return bch<<16 | g<<8 | r
}

// writePatternFill emits an EMF tile as a <a:blipFill> with tiling
// attributes, for Pattern paints — which are never valid as an
// <a:solidFill>/<a:gradFill> child, so they always route through this
// path regardless of the owning node's native/fallback decision.
func (m *Mapper) writePatternFill(b *xmlw.Builder, paint *ir.Paint) {
	blob, ok := emf.Tile(paint.TileID, 0x000000)
	if !ok {
		m.ctx.Diagnostics.Warnf(svcs.CodeFilterFallback, paint.TileID, "unknown pattern tile %q, falling back to solid gray", paint.TileID)
		b.Open("a:solidFill")
		srgbClr(b, 0x808080, 1)
		b.Close()
		return
	}
	relID := m.embedMedia(blob, "emf")
	b.Open("a:blipFill")
	b.SelfClose("a:blip", xmlw.A("r:embed", relID))
	b.SelfClose("a:tile", xmlw.Af("sx", "%d", 100000), xmlw.Af("sy", "%d", 100000), xmlw.A("flip", "none"), xmlw.A("algn", "tl"))
	b.Close()
}

// embedMedia assigns a relationship for blob and returns its rId,
// deduping by content hash within the current slide (spec §4.7:
// "reuses relationships when the same pattern appears on multiple
// elements" — the packager additionally dedupes across slides when
// assembling the package).
func (m *Mapper) embedMedia(blob []byte, ext string) string {
	sum := sha256.Sum256(blob)
	key := hex.EncodeToString(sum[:])
	if relID, ok := m.mediaByHash[key]; ok {
		return relID
	}
	n := m.ctx.NextRelID(m.slidePart)
	relID := fmt.Sprintf("rId%d", n)
	m.media = append(m.media, MediaPart{RelID: relID, Ext: ext, Data: blob, Hash: key})
	m.mediaByHash[key] = relID
	return relID
}
