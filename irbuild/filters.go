// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irbuild

import (
	"strconv"
	"strings"

	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/svgdom"
)

// parseFilterEffects builds the effect chain for one <filter> element
// (spec §4.9). Primitives this module cannot express as a DrawingML
// vector effect are recorded as ir.UnsupportedEffect rather than
// dropped, so the mapper can route the owning shape to its EMF
// fallback with a named diagnostic (SPEC_FULL §4.9A) instead of
// silently losing the effect.
func parseFilterEffects(e *svgdom.Element) []ir.FilterEffect {
	var effects []ir.FilterEffect
	for _, c := range e.Children {
		switch c.Name {
		case "feMorphology":
			effects = append(effects, parseMorphology(c))
		case "feDiffuseLighting":
			effects = append(effects, parseDiffuseLighting(c))
		default:
			effects = append(effects, ir.UnsupportedEffect{Name: c.Name})
		}
	}
	return effects
}

func parseMorphology(e *svgdom.Element) ir.MorphologyEffect {
	op := ir.MorphologyErode
	if e.Attr("operator") == "dilate" {
		op = ir.MorphologyDilate
	}
	rx, ry := parseRadiusPair(e.Attr("radius"))
	return ir.MorphologyEffect{Operator: op, RadiusX: rx, RadiusY: ry}
}

// parseRadiusPair handles feMorphology's radius attribute, which is
// either one shared value or two space-separated radius_x/radius_y
// values.
func parseRadiusPair(s string) (float64, float64) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return 0, 0
	case 1:
		v, _ := strconv.ParseFloat(fields[0], 64)
		return v, v
	default:
		x, _ := strconv.ParseFloat(fields[0], 64)
		y, _ := strconv.ParseFloat(fields[1], 64)
		return x, y
	}
}

// parseDiffuseLighting reads surfaceScale/diffuseConstant/
// lighting-color plus whichever light source child is present. SVG's
// own attribute defaults apply when a light child exists; absent any
// light child at all this falls back to a 45deg-elevation distant
// light so the 3D effect still has a well-defined direction.
func parseDiffuseLighting(e *svgdom.Element) ir.DiffuseLightingEffect {
	out := ir.DiffuseLightingEffect{
		SurfaceScale:    attrFloatDefault(e, "surfaceScale", 1),
		DiffuseConstant: attrFloatDefault(e, "diffuseConstant", 1),
		LightingColor:   0xFFFFFF,
		LightingAlpha:   1,
	}
	if raw := firstAttr(e, "lighting-color"); raw != "" {
		if rgb, alpha, ok, err := parseColor(raw); err == nil && ok {
			out.LightingColor, out.LightingAlpha = rgb, alpha
		}
	}
	var light *svgdom.Element
	for _, c := range e.Children {
		switch c.Name {
		case "feDistantLight", "fePointLight", "feSpotLight":
			light = c
		}
	}
	if light == nil {
		out.LightKind = ir.LightDistant
		out.Elevation = 45
		return out
	}
	switch light.Name {
	case "feDistantLight":
		out.LightKind = ir.LightDistant
		out.Azimuth = attrFloatDefault(light, "azimuth", 0)
		out.Elevation = attrFloatDefault(light, "elevation", 0)
	case "fePointLight":
		out.LightKind = ir.LightPoint
		out.X = attrFloatDefault(light, "x", 0)
		out.Y = attrFloatDefault(light, "y", 0)
		out.Z = attrFloatDefault(light, "z", 0)
	case "feSpotLight":
		out.LightKind = ir.LightSpot
		out.X = attrFloatDefault(light, "x", 0)
		out.Y = attrFloatDefault(light, "y", 0)
		out.Z = attrFloatDefault(light, "z", 0)
		out.PointsAtX = attrFloatDefault(light, "pointsAtX", 0)
		out.PointsAtY = attrFloatDefault(light, "pointsAtY", 0)
		out.PointsAtZ = attrFloatDefault(light, "pointsAtZ", 0)
		out.SpecularExponent = attrFloatDefault(light, "specularExponent", 1)
		out.LimitingConeAngle = attrFloatDefault(light, "limitingConeAngle", 90)
	}
	return out
}
