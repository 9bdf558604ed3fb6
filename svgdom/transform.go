// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgdom

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/BramAlkema/svg2pptx-sub018/pathdata"
)

var transformFuncRe = regexp.MustCompile(`(\w+)\s*\(([^)]*)\)`)

// ParseTransform parses an SVG transform-list attribute value into one
// composed geom.Matrix. Exported for irbuild, which needs to resolve a
// <g>'s or gradient's transform attribute the same way this package's
// own flattening pass does.
func ParseTransform(s string) (geom.Matrix, error) { return parseTransformAttr(s) }

// parseTransformAttr parses an SVG transform-list attribute value
// ("translate(10,20) rotate(45) scale(2)") into one composed Matrix,
// applied left to right per the SVG transform grammar.
func parseTransformAttr(s string) (geom.Matrix, error) {
	m := geom.Identity
	s = strings.TrimSpace(s)
	if s == "" {
		return m, nil
	}
	matches := transformFuncRe.FindAllStringSubmatch(s, -1)
	if matches == nil {
		return geom.Matrix{}, fmt.Errorf("svgdom: unparseable transform %q", s)
	}
	for _, mm := range matches {
		name := mm[1]
		args, err := parseNumberList(mm[2])
		if err != nil {
			return geom.Matrix{}, fmt.Errorf("svgdom: transform %q: %w", s, err)
		}
		var fn geom.Matrix
		switch name {
		case "translate":
			tx, ty := arg(args, 0), arg(args, 1)
			fn = geom.Translate(tx, ty)
		case "scale":
			sx := arg(args, 0)
			sy := sx
			if len(args) > 1 {
				sy = args[1]
			}
			fn = geom.Scale(sx, sy)
		case "rotate":
			rad := arg(args, 0) * math.Pi / 180
			if len(args) >= 3 {
				cx, cy := args[1], args[2]
				fn = geom.Translate(cx, cy).Mul(geom.Rotate(rad)).Mul(geom.Translate(-cx, -cy))
			} else {
				fn = geom.Rotate(rad)
			}
		case "skewX":
			fn = geom.SkewX(arg(args, 0) * math.Pi / 180)
		case "skewY":
			fn = geom.SkewY(arg(args, 0) * math.Pi / 180)
		case "matrix":
			if len(args) != 6 {
				return geom.Matrix{}, fmt.Errorf("svgdom: matrix() needs 6 args, got %d", len(args))
			}
			fn = geom.Matrix{A: args[0], B: args[1], C: args[2], D: args[3], E: args[4], F: args[5]}
		default:
			return geom.Matrix{}, fmt.Errorf("svgdom: unknown transform function %q", name)
		}
		m = m.Mul(fn)
	}
	return m, nil
}

func arg(args []float64, i int) float64 {
	if i < len(args) {
		return args[i]
	}
	return 0
}

func parseNumberList(s string) ([]float64, error) {
	s = strings.ReplaceAll(s, ",", " ")
	fields := strings.Fields(s)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// isAxisAligned reports whether m has no rotation or skew component, so
// it can be baked directly into path coordinates without introducing a
// shear the rest of the pipeline can't represent losslessly.
func isAxisAligned(m geom.Matrix) bool {
	const tol = 1e-9
	return math.Abs(m.B) < tol && math.Abs(m.C) < tol
}

// flattenTransforms implements spec §4.2 step 3 ("transform
// flattening"). It walks the tree accumulating ancestor transforms.
// `<path>` leaves always absorb the full accumulated transform directly
// into their `d` coordinates — an affine map applied to a Bezier curve
// is exactly another Bezier curve, so this is never lossy. A `<g>` (or
// other container) with a non-axis-aligned accumulated transform
// (rotation or skew present) instead keeps the composed matrix on
// itself and resets to identity for its children, so the rotation
// survives as one `Group.Transform` rather than being re-derived from
// baked descendant geometry (spec §4.2: "preserve composite matrices on
// Group when folding would lose precision").
func flattenTransforms(e *Element, parentM geom.Matrix) error {
	own := geom.Identity
	if t := e.Attr("transform"); t != "" {
		m, err := parseTransformAttr(t)
		if err != nil {
			return err
		}
		own = m
	}
	accum := parentM.Mul(own)

	if e.Name == "path" {
		if accum.IsIdentity(1e-9) {
			e.RemoveAttr("transform")
			return nil
		}
		d := e.Attr("d")
		subs, err := pathdata.Parse(d)
		if err != nil {
			// Malformed `d`: preserve the matrix explicitly rather than
			// silently dropping the transform.
			e.SetAttr("transform", formatMatrix(accum))
			return nil
		}
		for si := range subs {
			for sj := range subs[si].Segments {
				seg := &subs[si].Segments[sj]
				seg.Start = accum.Apply(seg.Start)
				seg.End = accum.Apply(seg.End)
				if seg.Kind == pathdata.KindCubic {
					seg.C1 = accum.Apply(seg.C1)
					seg.C2 = accum.Apply(seg.C2)
				}
			}
		}
		e.SetAttr("d", pathdata.Format(subs))
		e.RemoveAttr("transform")
		return nil
	}

	if len(e.Children) > 0 {
		if isAxisAligned(accum) {
			for _, c := range e.Children {
				if err := flattenTransforms(c, accum); err != nil {
					return err
				}
			}
			e.RemoveAttr("transform")
			return nil
		}
		for _, c := range e.Children {
			if err := flattenTransforms(c, geom.Identity); err != nil {
				return err
			}
		}
		e.SetAttr("transform", formatMatrix(accum))
		return nil
	}

	// Leaf, non-path element (shapes are converted to <path> before this
	// pass runs — see Preprocess) with an unresolved transform: record
	// the canonical composed matrix.
	if !accum.IsIdentity(1e-9) {
		e.SetAttr("transform", formatMatrix(accum))
	} else {
		e.RemoveAttr("transform")
	}
	return nil
}

func formatMatrix(m geom.Matrix) string {
	return fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)",
		trimFloat(m.A), trimFloat(m.B), trimFloat(m.C), trimFloat(m.D), trimFloat(m.E), trimFloat(m.F))
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
