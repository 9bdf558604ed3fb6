// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irbuild

import (
	"strconv"
	"strings"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/svgdom"
)

// style carries the inherited presentation-attribute chain (spec §4.3:
// "styling is resolved against the inherited presentation-attribute
// chain at this point"). fill/stroke/font-* inherit down the tree;
// opacity and clip-path apply once, at the node that declares them.
type style struct {
	fill        string
	stroke      string
	strokeWidth float64
	fontFamily  string
	fontSizePt  float64
	bold        bool
	italic      bool
	direction   ir.TextDirection
	xmlSpace    string // "default" or "preserve"
}

func defaultStyle() style {
	return style{
		fill:        "#000000",
		stroke:      "none",
		strokeWidth: 1,
		fontFamily:  "Calibri",
		fontSizePt:  12,
		direction:   ir.DirLTR,
		xmlSpace:    "default",
	}
}

// derive returns the style seen by e's children: parent's style
// overridden by any presentation attributes e declares itself.
func (s style) derive(e *svgdom.Element) style {
	out := s
	if v := firstAttr(e, "fill"); v != "" {
		out.fill = v
	}
	if v := firstAttr(e, "stroke"); v != "" {
		out.stroke = v
	}
	if v := e.Attr("stroke-width"); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			out.strokeWidth = f
		}
	}
	if v := e.Attr("font-family"); v != "" {
		out.fontFamily = strings.Trim(strings.Split(v, ",")[0], `"' `)
	}
	if v := e.Attr("font-size"); v != "" {
		if l, err := parseFontSize(v); err == nil {
			out.fontSizePt = l
		}
	}
	if v := e.Attr("font-weight"); v != "" {
		out.bold = v == "bold" || v == "bolder" || isNumericBold(v)
	}
	if v := e.Attr("font-style"); v != "" {
		out.italic = v == "italic" || v == "oblique"
	}
	if v := e.Attr("direction"); v == "rtl" {
		out.direction = ir.DirRTL
	} else if v == "ltr" {
		out.direction = ir.DirLTR
	}
	if v := e.Attr("xml:space"); v != "" {
		out.xmlSpace = v
	} else if v := e.Attr("space"); v != "" {
		// Parse strips namespace prefixes; xml:space arrives as local
		// name "space" once the xml: prefix is gone.
		out.xmlSpace = v
	}
	return out
}

// firstAttr prefers the plain presentation attribute but falls back to
// the CSS `style="..."` attribute's matching declaration, since both
// are legal per the SVG presentation-attribute rules this module scopes
// to (spec §4.2 Non-goals: "does not evaluate CSS cascades beyond
// presentation attributes").
func firstAttr(e *svgdom.Element, name string) string {
	if v := e.Attr(name); v != "" {
		return v
	}
	styleAttr := e.Attr("style")
	if styleAttr == "" {
		return ""
	}
	for _, decl := range strings.Split(styleAttr, ";") {
		kv := strings.SplitN(decl, ":", 2)
		if len(kv) != 2 {
			continue
		}
		if strings.TrimSpace(kv[0]) == name {
			return strings.TrimSpace(kv[1])
		}
	}
	return ""
}

func isNumericBold(v string) bool {
	n, err := strconv.Atoi(v)
	return err == nil && n >= 600
}

// parseFontSize parses a font-size value to points; SVG font-size is
// most commonly expressed in px or unitless user units, both treated
// as CSS px here and converted to points (1pt = 4/3 px).
func parseFontSize(v string) (float64, error) {
	if strings.HasSuffix(v, "pt") {
		return strconv.ParseFloat(strings.TrimSuffix(v, "pt"), 64)
	}
	l, err := geom.ParseLength(v)
	if err != nil {
		return 0, err
	}
	return l.Px(0) * 0.75, nil
}
