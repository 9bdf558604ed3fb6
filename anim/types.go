// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim compiles SMIL animation elements (<animate>,
// <animateTransform>, <animateColor>, <animateMotion>, <set>) collected
// from a normalized document into either a PowerPoint timing-node tree
// bound to the slide's already-assigned shape IDs, or — when an
// animation is not PowerPoint-expressible — a sequence of baked IR
// scenes sampled at a configurable rate (spec §4.8).
package anim

import "github.com/BramAlkema/svg2pptx-sub018/ir"

// BeginKind discriminates Begin's tagged variant.
type BeginKind int

const (
	// BeginOffset fires Offset seconds after the document timeline
	// starts.
	BeginOffset BeginKind = iota
	// BeginEvent fires Offset seconds after another animation's begin
	// or end event, named by RefID.
	BeginEvent
)

// Begin is one animation's start condition (spec §4.8 "Begin =
// Offset(seconds) | Event{reference, offset}").
type Begin struct {
	Kind     BeginKind
	Offset   float64 // seconds; the Event offset or the Offset duration
	RefID    string   // id of the referenced animation, BeginEvent only
	RefIsEnd bool     // true when the reference names the "end" event
}

// RepeatKind discriminates Repeat's tagged variant.
type RepeatKind int

const (
	RepeatFinite RepeatKind = iota
	RepeatIndefinite
)

// Repeat is an animation's repeatCount.
type Repeat struct {
	Kind  RepeatKind
	Count float64 // valid when Kind == RepeatFinite; SMIL allows fractional counts
}

// Fill selects the animation's post-end hold behavior.
type Fill int

const (
	FillRemove Fill = iota
	FillFreeze
)

// Timing is one animation's temporal placement (spec §4.8).
type Timing struct {
	Begin  Begin
	Dur    float64 // seconds; 0 means "not expressible", triggering baked fallback
	Repeat Repeat
	Fill   Fill
}

// CalcMode selects how values are interpolated between key times (spec
// §4.8 "Interpolation").
type CalcMode int

const (
	CalcLinear CalcMode = iota
	CalcDiscrete
	CalcPaced
	CalcSpline
)

// Kind discriminates what an Animation actually drives (spec §4.8
// "animation_kind").
type Kind int

const (
	KindAttribute Kind = iota
	KindTransformTranslate
	KindTransformScale
	KindTransformRotate
	KindTransformSkew
	KindMotion
	KindSet
)

// Spline is one cubic-Bezier keySplines control-point pair, with
// implicit fixed endpoints (0,0) and (1,1).
type Spline struct {
	X1, Y1, X2, Y2 float64
}

// Animation is one parsed SMIL animation element (spec §4.8
// "Animation{target_id, attribute, animation_kind, values, timing,
// key_times, key_splines, calc_mode}").
type Animation struct {
	// ID is this animation element's own id attribute, if any — the
	// name other animations reference in begin="#id.begin+1s" timing
	// expressions. Empty when the element carries no id.
	ID string

	TargetID   string
	TargetNode ir.NodeID // resolved once the owning Scene is known; 0 if unresolved
	Attribute  string
	Kind       Kind
	Values     []string
	Timing     Timing
	KeyTimes   []float64
	KeySplines []Spline
	CalcMode   CalcMode

	// RotateAuto and RotateOffsetDeg restore animateMotion's
	// rotate="auto"/"auto-reverse" handling (SPEC_FULL §4.8A), which the
	// distilled spec's "motion-path effect" line only gestures at.
	RotateAuto      bool
	RotateOffsetDeg float64

	// MotionPath is the raw path data an animateMotion drives along,
	// resolved from either its own path attribute or an <mpath> child's
	// href reference into the document (spec §4.8 "path/mpath href
	// resolution").
	MotionPath string
}
