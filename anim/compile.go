// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
	"github.com/BramAlkema/svg2pptx-sub018/svgdom"
)

// Result is everything a slide's animations compile down to: a
// PowerPoint timing-node fragment to splice into the slide body, and/or
// a sequence of baked scenes to emit as additional slides (spec §4.8,
// §6 "AnimationMode").
type Result struct {
	TimingXML string
	Baked     []*ir.Scene
}

// Compile runs the full SMIL animation pipeline for one slide: collect
// elements from the source document, resolve their targets against the
// built Scene, resolve the begin-time timeline, then lower each
// animation to either a PowerPoint timing node or a baked frame
// sequence depending on opts.AnimationMode (spec §6).
//
//   - AnimationStatic drops every animation (caller gets a zero Result).
//   - AnimationBaked forces every animation through Bake.
//   - AnimationPowerPoint forces every animation through LowerToTiming,
//     dropping what isn't expressible rather than baking it.
//   - AnimationAuto (the default) uses LowerToTiming where possible and
//     falls back to Bake per-animation, per NeedsBaking.
func Compile(scene *ir.Scene, root *svgdom.Element, shapeIDs map[ir.NodeID]int, opts svcs.Options, diags *svcs.Diagnostics) Result {
	if !opts.PreserveAnimations || opts.AnimationMode == svcs.AnimationStatic {
		return Result{}
	}

	anims := Collect(root, diags)
	if len(anims) == 0 {
		return Result{}
	}
	ResolveTargets(anims, scene, diags)
	begins := ResolveTimeline(anims, diags)

	switch opts.AnimationMode {
	case svcs.AnimationBaked:
		return Result{Baked: BakeAll(scene, anims, begins, opts)}
	case svcs.AnimationPowerPoint:
		return Result{TimingXML: LowerToTiming(anims, begins, shapeIDs, diags)}
	default: // AnimationAuto
		return Result{
			TimingXML: LowerToTiming(anims, begins, shapeIDs, diags),
			Baked:     Bake(scene, anims, begins, opts),
		}
	}
}
