// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irbuild

import (
	"strings"

	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/svgdom"
)

// buildRuns walks <text>/<tspan> content and collects styled Runs
// (spec §4.3A): whitespace runs collapse to a single space unless an
// ancestor sets xml:space="preserve" (original_source
// tests/unit/core/ir/conftest.py). Every tspan with text starts a new
// Run, whether or not it changes style; per-run positional offsets
// have no field on ir.Run (spec §3's Run shape is fixed), so a tspan's
// dx/dy is not represented.
func buildRuns(e *svgdom.Element, parent style) []ir.Run {
	var runs []ir.Run
	collectRuns(e, parent, &runs)
	return runs
}

func collectRuns(e *svgdom.Element, s style, runs *[]ir.Run) {
	text := e.CharData
	if s.xmlSpace != "preserve" {
		text = collapseWhitespace(text)
	}
	if text != "" {
		rgb, alpha, ok, _ := parseColor(s.fill)
		if !ok {
			rgb, alpha = 0, 1
		}
		*runs = append(*runs, ir.Run{
			Text:       text,
			FontFamily: s.fontFamily,
			SizePt:     s.fontSizePt,
			Bold:       s.bold,
			Italic:     s.italic,
			RGB:        rgb,
			Alpha:      alpha,
			Direction:  s.direction,
		})
	}
	for _, c := range e.Children {
		if c.Name != "tspan" {
			continue
		}
		child := s.derive(c)
		collectRuns(c, child, runs)
	}
}

func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if strings.TrimSpace(s) == "" && s != "" {
			return ""
		}
		return s
	}
	joined := strings.Join(fields, " ")
	if strings.HasPrefix(s, " ") || strings.HasPrefix(s, "\n") || strings.HasPrefix(s, "\t") {
		joined = " " + joined
	}
	if strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\t") {
		joined = joined + " "
	}
	return joined
}
