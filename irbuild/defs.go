// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irbuild

import (
	"strconv"
	"strings"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/pathdata"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
	"github.com/BramAlkema/svg2pptx-sub018/svgdom"
)

// collectDefs walks the whole document (gradients/patterns/clipPaths
// are legal anywhere, not just inside <defs>) and populates
// scene.Defs/scene.Clips. Gradients may reference another gradient via
// `href`/`xlink:href` to inherit stops (spec §4.3: "forward references
// across <defs> are permitted and resolved in a second pass") — the
// first pass records every gradient element by id, the second pass
// resolves the href chain with cycle detection.
func collectDefs(root *svgdom.Element, scene *ir.Scene, diags *svcs.Diagnostics) {
	gradientEls := map[string]*svgdom.Element{}
	root.Walk(func(e *svgdom.Element) {
		switch e.Name {
		case "linearGradient", "radialGradient":
			if id := e.Attr("id"); id != "" {
				gradientEls[id] = e
			}
		case "clipPath":
			if id := e.Attr("id"); id != "" {
				scene.Clips[id] = buildClipPath(e)
			}
		case "filter":
			if id := e.Attr("id"); id != "" {
				scene.Filters[id] = parseFilterEffects(e)
			}
		}
	})

	resolved := map[string]ir.Paint{}
	resolving := map[string]bool{}
	var resolve func(id string) (ir.Paint, bool)
	resolve = func(id string) (ir.Paint, bool) {
		if p, ok := resolved[id]; ok {
			return p, true
		}
		el, ok := gradientEls[id]
		if !ok {
			return ir.Paint{}, false
		}
		if resolving[id] {
			diags.Warnf(svcs.CodeCyclicReference, "#"+id, "gradient href cycle detected at %q", id)
			return ir.Paint{}, false
		}
		resolving[id] = true
		defer delete(resolving, id)

		stops := readStops(el)
		href := hrefOf(el)
		if len(stops) == 0 && href != "" {
			if base, ok := resolve(href); ok {
				stops = base.Stops
			}
		}
		if len(stops) < 2 {
			stops = padStops(stops)
		}
		p := buildGradient(el, stops, href, resolve)
		resolved[id] = p
		return p, true
	}

	for id := range gradientEls {
		if p, ok := resolve(id); ok {
			scene.Defs[id] = p
		}
	}
}

func hrefOf(e *svgdom.Element) string {
	v := e.Attr("href")
	if v == "" {
		v = e.Attr("xlink:href")
	}
	return strings.TrimPrefix(strings.TrimSpace(v), "#")
}

func readStops(e *svgdom.Element) []ir.GradientStop {
	var stops []ir.GradientStop
	var last float64
	for _, c := range e.Children {
		if c.Name != "stop" {
			continue
		}
		off := parseOffset(c.Attr("offset"))
		if off < last {
			off = last
		}
		last = off
		rgb, alpha, ok, err := parseColor(firstAttr(c, "stop-color"))
		if err != nil || !ok {
			rgb, alpha = 0, 1
		}
		if v := c.Attr("stop-opacity"); v != "" {
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				alpha = float32(f)
			}
		}
		stops = append(stops, ir.GradientStop{Offset: off, RGB: rgb, Alpha: alpha})
	}
	return stops
}

func parseOffset(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0
		}
		return v / 100
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// padStops enforces spec §3 invariant 4 (a gradient has ≥2 stops) for
// malformed input: zero stops become an opaque-black-to-black pair,
// one stop is duplicated at offset 1.
func padStops(stops []ir.GradientStop) []ir.GradientStop {
	switch len(stops) {
	case 0:
		return []ir.GradientStop{{Offset: 0, RGB: 0, Alpha: 1}, {Offset: 1, RGB: 0, Alpha: 1}}
	case 1:
		s := stops[0]
		s.Offset = 1
		return []ir.GradientStop{stops[0], s}
	default:
		return stops
	}
}

func parseSpread(s string) ir.SpreadMethod {
	switch s {
	case "reflect":
		return ir.SpreadReflect
	case "repeat":
		return ir.SpreadRepeat
	default:
		return ir.SpreadPad
	}
}

func parseGradientUnits(s string) ir.GradientUnits {
	if s == "userSpaceOnUse" {
		return ir.UnitsUserSpaceOnUse
	}
	return ir.UnitsObjectBoundingBox
}

func buildGradient(e *svgdom.Element, stops []ir.GradientStop, href string, resolve func(string) (ir.Paint, bool)) ir.Paint {
	units := parseGradientUnits(e.Attr("gradientUnits"))
	spread := parseSpread(e.Attr("spreadMethod"))
	transform := geom.Identity
	if t := e.Attr("gradientTransform"); t != "" {
		if m, err := svgdom.ParseTransform(t); err == nil {
			transform = m
		}
	}

	switch e.Name {
	case "radialGradient":
		cx, cy := attrFloatDefault(e, "cx", 0.5), attrFloatDefault(e, "cy", 0.5)
		r := attrFloatDefault(e, "r", 0.5)
		fx, fy := cx, cy
		if e.HasAttr("fx") {
			fx = attrFloatDefault(e, "fx", cx)
		}
		if e.HasAttr("fy") {
			fy = attrFloatDefault(e, "fy", cy)
		}
		if r <= 0 && href != "" {
			if base, ok := resolve(href); ok {
				r = base.Radius
			}
		}
		return ir.NewRadialGradient(stops, geom.Point{X: cx, Y: cy}, geom.Point{X: fx, Y: fy}, r, spread, units, transform)
	default: // linearGradient
		x1, y1 := attrFloatDefault(e, "x1", 0), attrFloatDefault(e, "y1", 0)
		x2, y2 := attrFloatDefault(e, "x2", 1), attrFloatDefault(e, "y2", 0)
		return ir.NewLinearGradient(stops, geom.Point{X: x1, Y: y1}, geom.Point{X: x2, Y: y2}, spread, units, transform)
	}
}

func attrFloatDefault(e *svgdom.Element, name string, def float64) float64 {
	v := e.Attr(name)
	if v == "" {
		return def
	}
	v = strings.TrimSuffix(v, "%")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	if strings.HasSuffix(e.Attr(name), "%") {
		return f / 100
	}
	return f
}

func buildClipPath(e *svgdom.Element) ir.ClipPath {
	var segs []ir.Segment
	for _, c := range e.Children {
		if c.Name != "path" {
			continue
		}
		subs, err := pathdata.Parse(c.Attr("d"))
		if err != nil {
			continue
		}
		for _, sp := range subs {
			for _, s := range sp.Segments {
				switch s.Kind {
				case pathdata.KindLine:
					segs = append(segs, ir.NewLine(s.Start, s.End))
				case pathdata.KindCubic:
					segs = append(segs, ir.NewCubic(s.Start, s.C1, s.C2, s.End))
				}
			}
		}
	}
	return ir.ClipPath{Segments: segs}
}
