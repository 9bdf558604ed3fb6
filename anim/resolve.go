// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

// ResolveTargets fills in each animation's TargetNode by looking its
// TargetID up in the scene's NodeByID table (populated by irbuild while
// walking the source document, spec §4.8 "target_id"). Animations whose
// target never made it into the IR — a referenced id that irbuild
// dropped as non-renderable, or a typo in targetElement/the parent
// chain — are left with TargetNode 0 and warned about; NeedsBaking and
// LowerToTiming both already treat TargetNode 0 as unresolved.
func ResolveTargets(anims []Animation, scene *ir.Scene, diags *svcs.Diagnostics) {
	for i := range anims {
		id, ok := scene.NodeByID[anims[i].TargetID]
		if !ok {
			diags.Warnf(svcs.CodeMissingReference, "#"+anims[i].TargetID,
				"animation target %q has no corresponding IR node", anims[i].TargetID)
			continue
		}
		anims[i].TargetNode = id
	}
}
