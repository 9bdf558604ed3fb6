// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irbuild

import (
	"strconv"
	"strings"

	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

// resolvePaint resolves a fill/stroke presentation-attribute value to
// an *ir.Paint, or nil if the paint is "none". `url(#id)` references
// look up scene.Defs (populated by collectDefs); a reference to a
// missing id is a CodeMissingReference diagnostic and falls back to
// solid black (spec §7's replace-with-safe-default policy).
func resolvePaint(scene *ir.Scene, diags *svcs.Diagnostics, elementPath, raw string, opacityAttr string) *ir.Paint {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "none" {
		return nil
	}
	alpha := float32(1)
	if opacityAttr != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(opacityAttr), 64); err == nil {
			alpha = float32(f)
		}
	}
	if strings.HasPrefix(raw, "url(") {
		id := extractURLID(raw)
		if p, ok := scene.Defs[id]; ok {
			return &p
		}
		diags.Warnf(svcs.CodeMissingReference, elementPath, "paint references unknown id %q", id)
		fallback := ir.NewSolid(0x000000, alpha)
		return &fallback
	}
	rgb, a, ok, err := parseColor(raw)
	if err != nil {
		diags.Warnf(svcs.CodeMissingReference, elementPath, "unparseable color %q: %v", raw, err)
		fallback := ir.NewSolid(0x000000, alpha)
		return &fallback
	}
	if !ok {
		return nil
	}
	if opacityAttr != "" {
		a = alpha
	}
	p := ir.NewSolid(rgb, a)
	return &p
}

func extractURLID(raw string) string {
	inner := strings.TrimPrefix(raw, "url(")
	inner = strings.TrimSuffix(strings.TrimSpace(inner), ")")
	inner = strings.Trim(inner, `"'`)
	return strings.TrimPrefix(inner, "#")
}
