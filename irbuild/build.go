// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irbuild

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/pathdata"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
	"github.com/BramAlkema/svg2pptx-sub018/svgdom"
)

// nonRenderable names elements that do not themselves become IR nodes,
// either because they are metadata or because they are consumed
// indirectly through collectDefs.
var nonRenderable = map[string]bool{
	"defs": true, "metadata": true, "title": true, "desc": true,
	"linearGradient": true, "radialGradient": true, "clipPath": true,
	"style": true, "symbol": true, "filter": true,
	"feMorphology": true, "feDiffuseLighting": true,
	"feDistantLight": true, "fePointLight": true, "feSpotLight": true,
}

// Build walks a normalized document and constructs the IR Scene (spec
// §4.3). use/symbol expansion is explicitly out of scope at the
// preprocessor stage (spec §4.2 Non-goals) and is likewise not
// expanded here; a <use> element is recorded as a diagnostic and
// skipped rather than silently dropped.
func Build(nd *svgdom.NormalizedDoc, diags *svcs.Diagnostics) (*ir.Scene, error) {
	w := uint32(nd.Width)
	h := uint32(nd.Height)
	scene := ir.NewScene(nd.ViewBox, w, h)

	collectDefs(nd.Root, scene, diags)

	b := &builder{scene: scene, diags: diags}
	s0 := defaultStyle()
	for _, c := range nd.Root.Children {
		n, err := b.buildNode(c, s0)
		if err != nil {
			return nil, err
		}
		if n != nil {
			scene.Elements = append(scene.Elements, n)
		}
	}
	if !ir.Acyclic(scene.Elements) {
		return nil, fmt.Errorf("irbuild: constructed IR is not acyclic")
	}
	return scene, nil
}

type builder struct {
	scene *ir.Scene
	diags *svcs.Diagnostics
}

func (b *builder) buildNode(e *svgdom.Element, parent style) (ir.Node, error) {
	if nonRenderable[e.Name] {
		return nil, nil
	}
	s := parent.derive(e)
	opacity := parseOpacity(e.Attr("opacity"))
	clip := b.resolveClip(e)
	filter := b.resolveFilter(e)

	var n ir.Node
	var err error
	switch e.Name {
	case "path":
		n, err = b.buildPath(e, s, opacity, clip)
	case "text":
		n = b.buildTextFrame(e, s, opacity, clip)
	case "g", "svg":
		n, err = b.buildGroup(e, s, opacity, clip)
	case "image":
		n = b.buildImage(e, opacity, clip)
	case "use":
		b.diags.Warnf(svcs.CodeUnknownElement, "#"+e.Attr("id"), "<use> expansion is not supported; element skipped")
		return nil, nil
	default:
		b.diags.Warnf(svcs.CodeUnknownElement, "#"+e.Attr("id"), "unrecognized element <%s> skipped", e.Name)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if n != nil {
		if filter != nil {
			setFilter(n, filter)
		}
		if id := e.Attr("id"); id != "" {
			b.scene.NodeByID[id] = n.ID()
		}
	}
	return n, nil
}

// setFilter attaches filter to whichever concrete node type n holds.
// It exists because ir's constructors take clip (the far more common
// attribute) as a parameter but not filter, to avoid rippling a rarely
// used field through every NewX call site.
func setFilter(n ir.Node, filter *ir.FilterRef) {
	switch x := n.(type) {
	case *ir.Path:
		x.Filter = filter
	case *ir.TextFrame:
		x.Filter = filter
	case *ir.Group:
		x.Filter = filter
	case *ir.Image:
		x.Filter = filter
	}
}

// resolveFilter parses the filter="url(#id)" attribute, mirroring
// resolveClip's resolution-against-the-scene-table pattern.
func (b *builder) resolveFilter(e *svgdom.Element) *ir.FilterRef {
	raw := e.Attr("filter")
	if raw == "" {
		return nil
	}
	id := extractURLID(raw)
	if id == "" {
		return nil
	}
	if _, ok := b.scene.Filters[id]; !ok {
		b.diags.Warnf(svcs.CodeMissingReference, "#"+e.Attr("id"), "filter references unknown id %q", id)
		return nil
	}
	return &ir.FilterRef{ID: id}
}

func (b *builder) buildPath(e *svgdom.Element, s style, opacity float32, clip *ir.ClipRef) (ir.Node, error) {
	d := e.Attr("d")
	subs, err := pathdata.Parse(d)
	if err != nil {
		b.diags.Errorf(svcs.CodePathSyntax, "#"+e.Attr("id"), "%v", err)
		return nil, nil
	}
	var segs []ir.Segment
	closed := false
	for _, sp := range subs {
		closed = closed || sp.Closed
		for _, seg := range sp.Segments {
			switch seg.Kind {
			case pathdata.KindLine:
				segs = append(segs, ir.NewLine(seg.Start, seg.End))
			case pathdata.KindCubic:
				segs = append(segs, ir.NewCubic(seg.Start, seg.C1, seg.C2, seg.End))
			}
		}
	}
	fill := resolvePaint(b.scene, b.diags, "#"+e.Attr("id"), s.fill, e.Attr("fill-opacity"))
	var stroke *ir.Stroke
	if strokePaint := resolvePaint(b.scene, b.diags, "#"+e.Attr("id"), s.stroke, e.Attr("stroke-opacity")); strokePaint != nil {
		stroke = &ir.Stroke{
			Paint:      *strokePaint,
			Width:      s.strokeWidth,
			Cap:        parseLineCap(e.Attr("stroke-linecap")),
			Join:       parseLineJoin(e.Attr("stroke-linejoin")),
			MiterLimit: attrFloatOr(e, "stroke-miterlimit", 4),
			DashArray:  parseDashArray(e.Attr("stroke-dasharray")),
			DashOffset: attrFloatOr(e, "stroke-dashoffset", 0),
			Opacity:    1,
		}
	}
	return b.scene.NewPath(segs, fill, stroke, opacity, clip, closed), nil
}

func (b *builder) buildTextFrame(e *svgdom.Element, s style, opacity float32, clip *ir.ClipRef) ir.Node {
	x := attrFloatOr(e, "x", 0)
	y := attrFloatOr(e, "y", 0)
	runs := buildRuns(e, s)
	anchor := parseAnchor(firstAttr(e, "text-anchor"))
	return b.scene.NewTextFrame(geom.Point{X: x, Y: y}, 0, 0, anchor, runs, opacity, clip)
}

func (b *builder) buildGroup(e *svgdom.Element, s style, opacity float32, clip *ir.ClipRef) (ir.Node, error) {
	var transform *geom.Matrix
	if t := e.Attr("transform"); t != "" {
		if m, err := svgdom.ParseTransform(t); err == nil && !m.IsIdentity(1e-9) {
			mc := m
			transform = &mc
		}
	}
	var children []ir.Node
	for _, c := range e.Children {
		n, err := b.buildNode(c, s)
		if err != nil {
			return nil, err
		}
		if n != nil {
			children = append(children, n)
		}
	}
	return b.scene.NewGroup(children, transform, opacity, clip), nil
}

func (b *builder) buildImage(e *svgdom.Element, opacity float32, clip *ir.ClipRef) ir.Node {
	href := e.Attr("href")
	if href == "" {
		href = e.Attr("xlink:href")
	}
	rect := geom.Rect{
		X: attrFloatOr(e, "x", 0), Y: attrFloatOr(e, "y", 0),
		W: attrFloatOr(e, "width", 0), H: attrFloatOr(e, "height", 0),
	}
	format := ir.ImagePNG
	if strings.HasPrefix(href, "data:image/jpeg") {
		format = ir.ImageJPEG
	} else if strings.HasPrefix(href, "data:image/svg") || strings.HasSuffix(href, ".svg") {
		format = ir.ImageSVG
	}
	data := decodeDataURI(href, b.diags, e.Attr("id"))
	par := parsePreserveAspectRatio(e.Attr("preserveAspectRatio"))
	return b.scene.NewImage(href, format, data, rect, par, opacity, clip)
}

// decodeDataURI decodes an embedded "data:<mime>;base64,<payload>" href
// into raw bytes. Non-data hrefs (external file/URL references) and
// non-base64 data URIs return nil; the mapper already diagnoses and
// skips an Image whose Data is empty rather than treating nil as an
// error here, so this never needs to fail the whole build over one
// unembeddable image.
func decodeDataURI(href string, diags *svcs.Diagnostics, elementID string) []byte {
	if !strings.HasPrefix(href, "data:") {
		return nil
	}
	comma := strings.IndexByte(href, ',')
	if comma < 0 || !strings.Contains(href[:comma], ";base64") {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(href[comma+1:])
	if err != nil {
		diags.Warnf(svcs.CodeMalformedXML, "#"+elementID, "image data URI is not valid base64; embedded image skipped")
		return nil
	}
	return data
}

func (b *builder) resolveClip(e *svgdom.Element) *ir.ClipRef {
	raw := e.Attr("clip-path")
	if raw == "" {
		return nil
	}
	id := extractURLID(raw)
	if id == "" {
		return nil
	}
	if _, ok := b.scene.Clips[id]; !ok {
		b.diags.Warnf(svcs.CodeMissingReference, "#"+e.Attr("id"), "clip-path references unknown id %q", id)
		return nil
	}
	return &ir.ClipRef{ID: id, Strategy: ir.ClipNative}
}

func parseOpacity(s string) float32 {
	if s == "" {
		return 1
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 1
	}
	return float32(f)
}

func attrFloatOr(e *svgdom.Element, name string, def float64) float64 {
	v := e.Attr(name)
	if v == "" {
		return def
	}
	l, err := geom.ParseLength(v)
	if err != nil {
		return def
	}
	return l.Px(0)
}

func parseAnchor(s string) ir.TextAnchor {
	switch s {
	case "middle":
		return ir.AnchorMiddle
	case "end":
		return ir.AnchorEnd
	default:
		return ir.AnchorStart
	}
}

func parseLineCap(s string) ir.LineCap {
	switch s {
	case "round":
		return ir.CapRound
	case "square":
		return ir.CapSquare
	default:
		return ir.CapButt
	}
}

func parseLineJoin(s string) ir.LineJoin {
	switch s {
	case "round":
		return ir.JoinRound
	case "bevel":
		return ir.JoinBevel
	default:
		return ir.JoinMiter
	}
}

func parseDashArray(s string) []float64 {
	if s == "" || s == "none" {
		return nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil
		}
		out = append(out, v)
	}
	return out
}

func parsePreserveAspectRatio(s string) ir.PreserveAspectRatio {
	s = strings.TrimSpace(s)
	if s == "" {
		return ir.PreserveAspectRatio{Align: "xMidYMid", Slice: false}
	}
	fields := strings.Fields(s)
	align := fields[0]
	slice := len(fields) > 1 && fields[1] == "slice"
	return ir.PreserveAspectRatio{Align: align, Slice: slice}
}
