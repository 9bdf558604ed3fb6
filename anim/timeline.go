// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "github.com/BramAlkema/svg2pptx-sub018/svcs"

// maxResolutionPasses bounds the fixed-point event-resolution loop
// (spec §4.8 "a resolution cap (e.g., 256 passes)").
const maxResolutionPasses = 256

// ResolveTimeline computes each animation's absolute begin time in
// seconds, resolving event-based begins ("#foo.begin+1s") against other
// animations in the same slice by iterating until no new event fires.
// Animations whose reference never resolves are omitted from the
// returned map and get a diagnostic, per spec §4.8: "unresolved
// references are dropped and warned."
func ResolveTimeline(anims []Animation, diags *svcs.Diagnostics) map[int]float64 {
	begin := make(map[int]float64, len(anims))
	end := make(map[int]float64, len(anims))
	byID := make(map[string]int, len(anims))
	for i, a := range anims {
		if a.ID != "" {
			byID[a.ID] = i
		}
		if a.Timing.Begin.Kind == BeginOffset {
			begin[i] = a.Timing.Begin.Offset
			end[i] = begin[i] + a.Timing.Dur
		}
	}

	for pass := 0; pass < maxResolutionPasses; pass++ {
		progressed := false
		for i, a := range anims {
			if _, done := begin[i]; done {
				continue
			}
			if a.Timing.Begin.Kind != BeginEvent {
				continue
			}
			refIdx, ok := byID[a.Timing.Begin.RefID]
			if !ok {
				continue
			}
			var refTime float64
			var refOK bool
			if a.Timing.Begin.RefIsEnd {
				refTime, refOK = end[refIdx]
			} else {
				refTime, refOK = begin[refIdx]
			}
			if !refOK {
				continue
			}
			begin[i] = refTime + a.Timing.Begin.Offset
			end[i] = begin[i] + a.Timing.Dur
			progressed = true
		}
		if !progressed {
			break
		}
	}

	for i, a := range anims {
		if _, ok := begin[i]; !ok {
			diags.Warnf(svcs.CodeAnimationUnresolved, "#"+a.TargetID,
				"begin reference %q could not be resolved after %d passes; animation dropped",
				a.Timing.Begin.RefID, maxResolutionPasses)
		}
	}
	return begin
}
