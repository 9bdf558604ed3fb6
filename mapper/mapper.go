// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/BramAlkema/svg2pptx-sub018/internal/xmlw"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/policy"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

// MediaPart is a binary part the mapper produced (an embedded raster
// or a synthesized EMF blob) awaiting placement by the packager. Hash
// is the content hash embedMedia already computed, handed to the
// packager so it can dedupe media parts across slides (spec §4.7:
// "the packager tracks (hash → media_path, rId)").
type MediaPart struct {
	RelID string
	Ext   string
	Data  []byte
	Hash  string
}

// Mapper lowers one Scene's policy-annotated IR into a slide's
// DrawingML body plus the media parts it references.
type Mapper struct {
	ctx         *svcs.Context
	fonts       *svcs.FontService
	scale       Scale
	slidePart   string
	decisions   policy.Table
	media       []MediaPart
	mediaByHash map[string]string
	shapeIDs    map[ir.NodeID]int
	filters     map[string][]ir.FilterEffect
}

// New returns a Mapper for one slide. slidePart names the slide for
// the purpose of per-part relationship-ID counters (spec §4.6:
// "per-part monotonic rId{n}"), e.g. "slide1".
func New(ctx *svcs.Context, scene *ir.Scene, decisions policy.Table, slidePart string) *Mapper {
	return &Mapper{
		ctx:         ctx,
		fonts:       ctx.Fonts,
		scale:       NewScale(scene.ViewBox, ctx.Options.SlideWidthEMU),
		slidePart:   slidePart,
		decisions:   decisions,
		mediaByHash: make(map[string]string),
		shapeIDs:    make(map[ir.NodeID]int),
		filters:     scene.Filters,
	}
}

// ShapeIDs returns the NodeID to DrawingML shape-id assignments made
// while mapping this slide, so the animation compiler can bind a
// timing node's target_id to the <p:cNvPr id> it was rendered with.
func (m *Mapper) ShapeIDs() map[ir.NodeID]int {
	return m.shapeIDs
}

// MapSlide renders the scene's element tree into the body of one
// slide's <p:spTree>, and returns the accumulated media parts to embed
// alongside it. Per-slide shape IDs start at 2 (spec §4.5: "1 is
// reserved for the spTree root"); callers must call
// Context.ResetShapeIDs before each new slide.
func (m *Mapper) MapSlide(scene *ir.Scene) (spTreeBody string, media []MediaPart) {
	b := xmlw.NewFragment()
	for _, n := range scene.Elements {
		if m.ctx.Cancelled() {
			break
		}
		m.writeNode(b, n, geom.Identity)
	}
	return b.String(), m.media
}

// writeNode dispatches on the node's tagged variant, baking accum (the
// product of every ancestor Group's transform) into the node's own
// geometry before emission.
func (m *Mapper) writeNode(b *xmlw.Builder, n ir.Node, accum geom.Matrix) {
	decision := m.decisions[n.ID()]
	switch v := n.(type) {
	case *ir.Path:
		effects := m.filterEffects(v.Filter, v)
		if v.Fill != nil && v.Fill.Kind() == ir.PaintPattern {
			m.writePatternPath(b, v, accum, effects.EffectXML)
			return
		}
		if decision.UseNative && !effects.NeedsRaster {
			m.writeNativePath(b, v, accum, effects.EffectXML)
		} else {
			m.writeEMFPath(b, v, accum, effects.EffectXML)
		}
	case *ir.TextFrame:
		m.writeTextFrame(b, v, accum)
	case *ir.Group:
		m.writeGroup(b, v, accum)
	case *ir.Image:
		m.writeImage(b, v, accum)
	}
}

// writePatternPath handles a Path filled by a Pattern paint: Pattern
// is never a valid DrawingML solidFill/gradFill child (spec §4.5 lists
// only solid and gradient fills for native paths), so such a path
// always routes through the EMF tile fallback regardless of the
// policy engine's native/fallback decision for its other attributes.
func (m *Mapper) writePatternPath(b *xmlw.Builder, p *ir.Path, accum geom.Matrix, effectXML string) {
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
	b.Close()

	b.Open("p:spPr")
	b.Open("a:xfrm")
	b.SelfClose("a:off", xmlw.Af("x", "%d", x), xmlw.Af("y", "%d", y))
	b.SelfClose("a:ext", xmlw.Af("cx", "%d", cx), xmlw.Af("cy", "%d", cy))
	b.Close()

	b.Open("a:custGeom")
	b.SelfClose("a:avLst")
	b.SelfClose("a:gdLst")
	b.SelfClose("a:ahLst")
	b.SelfClose("a:cxnLst")
	b.SelfClose("a:rect", xmlw.A("l", "0"), xmlw.A("t", "0"), xmlw.A("r", "0"), xmlw.A("b", "0"))
	b.Open("a:pathLst")
	writeCustGeomPath(b, segs, p.Closed, bounds, m.scale)
	b.Close()
	b.Close()

	m.writePatternFill(b, p.Fill)
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
	b.Close()
	b.Close() // p:sp
}
