// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg2pptx converts SVG documents into PowerPoint (.pptx)
// presentations. Convert is the single entry point; every other
// package in this module (svgdom, irbuild, policy, mapper, anim,
// ooxml) is an internal stage of its pipeline (spec §5, §6).
package svg2pptx

import (
	"context"
	"strconv"

	"github.com/BramAlkema/svg2pptx-sub018/anim"
	"github.com/BramAlkema/svg2pptx-sub018/irbuild"
	"github.com/BramAlkema/svg2pptx-sub018/mapper"
	"github.com/BramAlkema/svg2pptx-sub018/ooxml"
	"github.com/BramAlkema/svg2pptx-sub018/policy"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
	"github.com/BramAlkema/svg2pptx-sub018/svgdom"
)

// Options is the public configuration surface for Convert (spec §6).
// It is an alias of svcs.Options so every package that threads
// configuration through the pipeline shares one definition.
type Options = svcs.Options

// Diagnostic is one accumulated, non-fatal record of the conversion
// (spec §7).
type Diagnostic = svcs.Diagnostic

// Result is Convert's output: the assembled .pptx bytes plus every
// diagnostic accumulated along the way. Diagnostics are populated even
// when err is nil — a successful conversion can still have dropped or
// approximated elements (spec §7: "never a silent data loss").
type Result struct {
	PPTX        []byte
	Diagnostics []Diagnostic
}

// Convert runs the full pipeline named in spec §5: parse, preprocess,
// build IR, evaluate policy, map each slide, compile animations, and
// package the result. It checks for cooperative cancellation at every
// stage boundary the spec names; on cancellation it returns ctx.Err()
// and no partial output.
func Convert(ctx context.Context, svgBytes []byte, opts Options) (Result, error) {
	opts = opts.Normalize()
	sctx := svcs.NewContext(ctx, opts, nil)
	diags := &sctx.Diagnostics

	doc, err := svgdom.Parse(svgBytes)
	if err != nil {
		return Result{Diagnostics: diags.All()}, err
	}
	if sctx.Cancelled() {
		return Result{Diagnostics: diags.All()}, sctx.Ctx.Err()
	}

	normalized, err := svgdom.Preprocess(doc)
	if err != nil {
		return Result{Diagnostics: diags.All()}, err
	}
	if sctx.Cancelled() {
		return Result{Diagnostics: diags.All()}, sctx.Ctx.Err()
	}

	scene, err := irbuild.Build(normalized, diags)
	if err != nil {
		return Result{Diagnostics: diags.All()}, err
	}
	if sctx.Cancelled() {
		return Result{Diagnostics: diags.All()}, sctx.Ctx.Err()
	}

	cfg := policy.ProfileConfig(opts.Profile)
	decisions := policy.Evaluate(scene, cfg, sctx.Fonts)
	if sctx.Cancelled() {
		return Result{Diagnostics: diags.All()}, sctx.Ctx.Err()
	}

	scale := mapper.NewScale(scene.ViewBox, opts.SlideWidthEMU)
	packager := ooxml.NewPackager(sctx, scale, "")

	sctx.ResetShapeIDs()
	m := mapper.New(sctx, scene, decisions, "slide1")
	body, media := m.MapSlide(scene)
	anims := anim.Compile(scene, normalized.Root, m.ShapeIDs(), opts, diags)

	// AnimationBaked forces every animation through the sampler, so the
	// baked sequence already covers the t=0 frame; the pre-animation
	// static slide would just be a redundant leading frame (spec §8
	// scenario 6: three staggered rectangles bake to three slides, not
	// four).
	firstBakedSlide := 1
	if opts.AnimationMode != svcs.AnimationBaked || len(anims.Baked) == 0 {
		packager.AddSlide(body, media)
		if anims.TimingXML != "" {
			packager.SetTiming(anims.TimingXML)
		}
		if sctx.Cancelled() {
			return Result{Diagnostics: diags.All()}, sctx.Ctx.Err()
		}
		firstBakedSlide = 2
	}

	for i, baked := range anims.Baked {
		bakedDecisions := policy.Evaluate(baked, cfg, sctx.Fonts)
		sctx.ResetShapeIDs()
		bm := mapper.New(sctx, baked, bakedDecisions, slidePartName(i+firstBakedSlide))
		bakedBody, bakedMedia := bm.MapSlide(baked)
		packager.AddSlide(bakedBody, bakedMedia)
		if sctx.Cancelled() {
			return Result{Diagnostics: diags.All()}, sctx.Ctx.Err()
		}
	}

	pptx, err := packager.Build()
	if err != nil {
		return Result{Diagnostics: diags.All()}, err
	}
	return Result{PPTX: pptx, Diagnostics: diags.All()}, nil
}

// slidePartName names the nth slide for the mapper's per-part
// relationship-ID counters (spec §4.6), matching the "slideN" form
// ooxml.Packager assigns when it numbers slides on Build.
func slidePartName(n int) string {
	return "slide" + strconv.Itoa(n)
}
