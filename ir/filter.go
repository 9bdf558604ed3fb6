// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// FilterRef is a weak reference to a filter effect chain owned by the
// Scene's Filters table, mirroring ClipRef's relation-not-ownership
// pattern (spec §9: "a relation, not ownership").
type FilterRef struct {
	ID string
}

// FilterEffect is one primitive step of a filter chain (spec §4.9).
// Scene.Filters stores one []FilterEffect per source <filter> id.
type FilterEffect interface {
	isFilterEffect()
}

// MorphologyOperator selects feMorphology's operator attribute.
type MorphologyOperator int

const (
	MorphologyErode MorphologyOperator = iota
	MorphologyDilate
)

// MorphologyEffect mirrors feMorphology: grows (dilate) or shrinks
// (erode) a shape's silhouette by radius_x/radius_y user-space units.
type MorphologyEffect struct {
	Operator MorphologyOperator
	RadiusX  float64
	RadiusY  float64
}

func (MorphologyEffect) isFilterEffect() {}

// LightSourceKind selects feDiffuseLighting's light source child.
type LightSourceKind int

const (
	LightDistant LightSourceKind = iota
	LightPoint
	LightSpot
)

// DiffuseLightingEffect mirrors feDiffuseLighting plus whichever light
// source child it carries (spec §4.9).
type DiffuseLightingEffect struct {
	SurfaceScale    float64
	DiffuseConstant float64
	LightingColor   uint32
	LightingAlpha   float32

	LightKind LightSourceKind

	// Distant light only.
	Azimuth   float64
	Elevation float64

	// Point/spot light position.
	X, Y, Z float64

	// Spot light only.
	PointsAtX, PointsAtY, PointsAtZ float64
	SpecularExponent                float64
	LimitingConeAngle               float64
}

func (DiffuseLightingEffect) isFilterEffect() {}

// UnsupportedEffect records a filter primitive that cannot be expressed
// as a DrawingML vector effect, so the mapper can route the owning
// shape to its raster fallback with a named diagnostic instead of
// dropping it silently (SPEC_FULL §4.9A).
type UnsupportedEffect struct {
	Name string
}

func (UnsupportedEffect) isFilterEffect() {}
