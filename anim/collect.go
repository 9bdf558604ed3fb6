// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"strconv"
	"strings"

	"github.com/BramAlkema/svg2pptx-sub018/svcs"
	"github.com/BramAlkema/svg2pptx-sub018/svgdom"
)

var animationTags = map[string]bool{
	"animate": true, "animateTransform": true, "animateColor": true,
	"animateMotion": true, "set": true,
}

// Collect walks root and every descendant, parsing each recognized
// animation element into an Animation (spec §4.8 "collect all
// <animate>, <animateTransform>, <animateColor>, <animateMotion>, and
// <set> elements"). Elements with no resolvable target are dropped with
// a diagnostic rather than silently skipped, matching spec §7's "no
// silent data losses" rule.
func Collect(root *svgdom.Element, diags *svcs.Diagnostics) []Animation {
	var out []Animation
	root.Walk(func(e *svgdom.Element) {
		if !animationTags[e.Name] {
			return
		}
		a, ok := parseElement(e, root, diags)
		if !ok {
			return
		}
		out = append(out, a)
	})
	return out
}

func parseElement(e *svgdom.Element, root *svgdom.Element, diags *svcs.Diagnostics) (Animation, bool) {
	targetID := e.Attr("targetElement")
	if targetID == "" && e.Parent != nil {
		targetID = e.Parent.Attr("id")
	}
	if targetID == "" {
		diags.Warnf(svcs.CodeAnimationUnresolved, "<"+e.Name+">", "animation has no resolvable target; skipped")
		return Animation{}, false
	}

	a := Animation{
		ID:       e.Attr("id"),
		TargetID: targetID,
		Timing:   parseTiming(e),
		CalcMode: parseCalcMode(e),
	}
	if kt := e.Attr("keyTimes"); kt != "" {
		a.KeyTimes = parseNumberList(kt)
	}
	if ks := e.Attr("keySplines"); ks != "" {
		a.KeySplines = parseSplines(ks)
	}

	switch e.Name {
	case "animateMotion":
		a.Kind = KindMotion
		a.MotionPath = resolveMotionPath(e, root, diags)
		a.Values = splitValues(e.Attr("values"))
		rot := e.Attr("rotate")
		switch rot {
		case "", "0":
			// no rotation tied to the path's tangent
		case "auto", "auto-reverse":
			a.RotateAuto = true
			if rot == "auto-reverse" {
				a.RotateOffsetDeg = 180
			}
		default:
			if deg, err := strconv.ParseFloat(rot, 64); err == nil {
				a.RotateOffsetDeg = deg
			}
		}
	case "set":
		a.Kind = KindSet
		a.Attribute = e.Attr("attributeName")
		a.Values = []string{e.Attr("to")}
	case "animateColor":
		a.Kind = KindAttribute
		a.Attribute = e.Attr("attributeName")
		a.Values = valuesOrFromTo(e)
	case "animateTransform":
		a.Attribute = "transform"
		a.Kind = transformKind(e.Attr("type"))
		a.Values = valuesOrFromTo(e)
	default: // animate
		a.Kind = KindAttribute
		a.Attribute = e.Attr("attributeName")
		a.Values = valuesOrFromTo(e)
	}

	if a.Kind != KindMotion && a.Attribute == "" {
		diags.Warnf(svcs.CodeAnimationUnresolved, "#"+targetID, "<%s> has no attributeName; skipped", e.Name)
		return Animation{}, false
	}
	return a, true
}

func transformKind(t string) Kind {
	switch t {
	case "scale":
		return KindTransformScale
	case "rotate":
		return KindTransformRotate
	case "skewX", "skewY":
		return KindTransformSkew
	default:
		return KindTransformTranslate
	}
}

func valuesOrFromTo(e *svgdom.Element) []string {
	if v := e.Attr("values"); v != "" {
		return splitValues(v)
	}
	var vals []string
	if from := e.Attr("from"); from != "" {
		vals = append(vals, from)
	}
	if to := e.Attr("to"); to != "" {
		vals = append(vals, to)
	}
	if by := e.Attr("by"); by != "" && len(vals) == 1 {
		// by is relative: the end value is from + by, component-wise,
		// when both parse as number lists of the same length.
		end := by
		f, d := parseNumberList(vals[0]), parseNumberList(by)
		if len(f) > 0 && len(f) == len(d) {
			parts := make([]string, len(f))
			for i := range f {
				parts[i] = strconv.FormatFloat(f[i]+d[i], 'g', -1, 64)
			}
			end = strings.Join(parts, " ")
		}
		vals = append(vals, end)
	}
	return vals
}

func splitValues(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func parseSplines(s string) []Spline {
	groups := strings.Split(s, ";")
	out := make([]Spline, 0, len(groups))
	for _, g := range groups {
		n := parseNumberList(g)
		if len(n) != 4 {
			continue
		}
		out = append(out, Spline{X1: n[0], Y1: n[1], X2: n[2], Y2: n[3]})
	}
	return out
}

func parseCalcMode(e *svgdom.Element) CalcMode {
	switch e.Attr("calcMode") {
	case "discrete":
		return CalcDiscrete
	case "paced":
		return CalcPaced
	case "spline":
		return CalcSpline
	case "linear":
		return CalcLinear
	default:
		if e.Name == "animateMotion" {
			// SMIL's real default for animateMotion is "paced"; the
			// distilled spec's "linear (default)" line describes the
			// general case, not this element-specific override.
			return CalcPaced
		}
		return CalcLinear
	}
}

func parseTiming(e *svgdom.Element) Timing {
	return Timing{
		Begin:  parseBegin(e.Attr("begin")),
		Dur:    parseTimeValue(e.Attr("dur")),
		Repeat: parseRepeat(e.Attr("repeatCount")),
		Fill:   parseFill(e.Attr("fill")),
	}
}

func parseFill(s string) Fill {
	if s == "freeze" {
		return FillFreeze
	}
	return FillRemove
}

func parseRepeat(s string) Repeat {
	s = strings.TrimSpace(s)
	if s == "" {
		return Repeat{Kind: RepeatFinite, Count: 1}
	}
	if s == "indefinite" {
		return Repeat{Kind: RepeatIndefinite}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return Repeat{Kind: RepeatFinite, Count: 1}
	}
	return Repeat{Kind: RepeatFinite, Count: v}
}

// parseBegin parses the first entry of a (possibly comma-separated)
// begin attribute; only the first value in a begin list is honored,
// matching this compiler's single-shot (not restartable) timeline.
func parseBegin(s string) Begin {
	s = strings.TrimSpace(s)
	if s == "" {
		return Begin{Kind: BeginOffset, Offset: 0}
	}
	first := strings.TrimSpace(strings.SplitN(s, ",", 2)[0])
	if !strings.HasPrefix(first, "#") {
		return Begin{Kind: BeginOffset, Offset: parseTimeValue(first)}
	}
	// Event reference: "#id.begin+1s", "#id.end-0.5s", or bare "#id.begin".
	rest := first[1:]
	dotIdx := strings.IndexByte(rest, '.')
	if dotIdx < 0 {
		return Begin{Kind: BeginOffset, Offset: 0}
	}
	refID := rest[:dotIdx]
	eventAndOffset := rest[dotIdx+1:]
	isEnd := strings.HasPrefix(eventAndOffset, "end")
	tail := strings.TrimPrefix(strings.TrimPrefix(eventAndOffset, "end"), "begin")
	tail = strings.TrimSpace(tail)
	offset := 0.0
	if tail != "" {
		sign := 1.0
		if strings.HasPrefix(tail, "-") {
			sign = -1
			tail = tail[1:]
		} else if strings.HasPrefix(tail, "+") {
			tail = tail[1:]
		}
		offset = sign * parseTimeValue(strings.TrimSpace(tail))
	}
	return Begin{Kind: BeginEvent, RefID: refID, RefIsEnd: isEnd, Offset: offset}
}

// parseTimeValue parses an SMIL clock value: a bare number (seconds), or
// one suffixed with "ms", "s", "min", or "h".
func parseTimeValue(s string) float64 {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "indefinite":
		return 0
	case strings.HasSuffix(s, "ms"):
		v, _ := strconv.ParseFloat(strings.TrimSuffix(s, "ms"), 64)
		return v / 1000
	case strings.HasSuffix(s, "min"):
		v, _ := strconv.ParseFloat(strings.TrimSuffix(s, "min"), 64)
		return v * 60
	case strings.HasSuffix(s, "h"):
		v, _ := strconv.ParseFloat(strings.TrimSuffix(s, "h"), 64)
		return v * 3600
	case strings.HasSuffix(s, "s"):
		v, _ := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64)
		return v
	default:
		v, _ := strconv.ParseFloat(s, 64)
		return v
	}
}

// resolveMotionPath returns the path data an <animateMotion> drives
// along: its own path attribute, or an <mpath> child's href resolved
// against another path element in the document (spec §4.8
// "animateMotion ... path built from ... path/mpath href resolution").
func resolveMotionPath(e *svgdom.Element, root *svgdom.Element, diags *svcs.Diagnostics) string {
	if p := e.Attr("path"); p != "" {
		return p
	}
	for _, c := range e.Children {
		if c.Name != "mpath" {
			continue
		}
		href := c.Attr("href")
		if href == "" {
			href = c.Attr("xlink:href")
		}
		id := strings.TrimPrefix(href, "#")
		if id == "" {
			continue
		}
		var found *svgdom.Element
		root.Walk(func(cand *svgdom.Element) {
			if found == nil && cand.Attr("id") == id {
				found = cand
			}
		})
		if found == nil {
			diags.Warnf(svcs.CodeMissingReference, "#"+e.Attr("id"), "mpath references unknown id %q", id)
			return ""
		}
		return found.Attr("d")
	}
	return ""
}
