// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svcs threads the conversion pipeline's shared, request-scoped
// state explicitly, per spec §9's design note: "Thread it explicitly: a
// Context value-or-reference passed through each stage, owning unit
// converter, font service, policy config, and diagnostic sink. No
// module-level mutable state." Each stage in this module receives the
// *Context, or the parts of it that it uses (irbuild and anim get the
// Diagnostics, policy the FontService, anim the Options), rather than
// reaching for a package-level singleton.
package svcs

// Profile selects a PolicyEngine threshold preset (spec §4.4).
type Profile string

const (
	ProfileSpeed    Profile = "speed"
	ProfileBalanced Profile = "balanced"
	ProfileQuality  Profile = "quality"
)

// AnimationMode forces a SMIL lowering strategy (spec §6).
type AnimationMode string

const (
	AnimationAuto       AnimationMode = ""
	AnimationPowerPoint AnimationMode = "powerpoint"
	AnimationBaked      AnimationMode = "baked"
	AnimationStatic     AnimationMode = "static"
)

// Options is the public configuration surface for Convert (spec §6).
type Options struct {
	Profile            Profile
	SlideWidthEMU      int64
	PreserveAnimations bool
	AnimationMode      AnimationMode
	BakeFPS            int
	BakeMaxKeyframes   int
	FontFallback       map[string]string
}

// DefaultOptions returns the default Options. Convert normalizes a zero
// Options toward these values, except PreserveAnimations: a bool's zero
// value cannot be told apart from an explicit false, so a caller that
// wants animations kept either starts from DefaultOptions or sets
// PreserveAnimations itself.
func DefaultOptions() Options {
	return Options{
		Profile:            ProfileBalanced,
		SlideWidthEMU:      0, // 0 means "derive from viewBox aspect ratio", spec §6
		PreserveAnimations: true,
		AnimationMode:      AnimationAuto,
		BakeFPS:            24,
		BakeMaxKeyframes:   30,
	}
}

// Normalize fills in a zero Profile, BakeFPS, BakeMaxKeyframes and
// FontFallback with their defaults, without touching fields the caller
// explicitly set. PreserveAnimations is left as given.
func (o Options) Normalize() Options {
	d := DefaultOptions()
	if o.Profile == "" {
		o.Profile = d.Profile
	}
	if o.BakeFPS <= 0 {
		o.BakeFPS = d.BakeFPS
	}
	if o.BakeMaxKeyframes <= 0 {
		o.BakeMaxKeyframes = d.BakeMaxKeyframes
	}
	if o.FontFallback == nil {
		o.FontFallback = map[string]string{}
	}
	return o
}
