// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgdom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
)

// NormalizedDoc is the output of Preprocess: a fully normalized SVG
// tree ready for IR construction, with viewport dimensions resolved to
// concrete numbers.
type NormalizedDoc struct {
	Root    *Element
	ViewBox geom.Rect
	Width   float64
	Height  float64
}

// parseViewBox parses a `viewBox="minx miny width height"` attribute.
func parseViewBox(s string) (geom.Rect, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 4 {
		return geom.Rect{}, fmt.Errorf("svgdom: viewBox %q: want 4 numbers, got %d", s, len(fields))
	}
	nums := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geom.Rect{}, fmt.Errorf("svgdom: viewBox %q: %w", s, err)
		}
		nums[i] = v
	}
	return geom.Rect{X: nums[0], Y: nums[1], W: nums[2], H: nums[3]}, nil
}

// resolveViewport implements spec §4.2 step 5 ("viewport
// normalization"): missing width/height are filled from viewBox;
// missing viewBox is synthesized from width/height.
func resolveViewport(root *Element) (geom.Rect, float64, float64, error) {
	vbStr := root.Attr("viewBox")
	widthStr := root.Attr("width")
	heightStr := root.Attr("height")

	var vb geom.Rect
	haveVB := false
	if vbStr != "" {
		var err error
		vb, err = parseViewBox(vbStr)
		if err != nil {
			return geom.Rect{}, 0, 0, err
		}
		haveVB = true
	}

	var width, height float64
	if widthStr != "" {
		l, err := geom.ParseLength(widthStr)
		if err != nil {
			return geom.Rect{}, 0, 0, fmt.Errorf("svgdom: width: %w", err)
		}
		width = l.Px(0)
	}
	if heightStr != "" {
		l, err := geom.ParseLength(heightStr)
		if err != nil {
			return geom.Rect{}, 0, 0, fmt.Errorf("svgdom: height: %w", err)
		}
		height = l.Px(0)
	}

	switch {
	case haveVB && width > 0 && height > 0:
		// all present
	case haveVB:
		if width <= 0 {
			width = vb.W
		}
		if height <= 0 {
			height = vb.H
		}
	case width > 0 && height > 0:
		vb = geom.Rect{X: 0, Y: 0, W: width, H: height}
		haveVB = true
	default:
		return geom.Rect{}, 0, 0, fmt.Errorf("svgdom: neither viewBox nor width/height present")
	}
	if !haveVB {
		vb = geom.Rect{X: 0, Y: 0, W: width, H: height}
	}

	root.SetAttr("viewBox", fmt.Sprintf("%g %g %g %g", vb.X, vb.Y, vb.W, vb.H))
	root.SetAttr("width", strconv.FormatFloat(width, 'g', -1, 64))
	root.SetAttr("height", strconv.FormatFloat(height, 'g', -1, 64))
	return vb, width, height, nil
}
