// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package policy implements the per-element native-vs-fallback decision
// layer (spec §4.4). Decisions are pure functions of an IR node and a
// PolicyConfig; they are computed once per node and stored on a side
// table keyed by ir.NodeID, never folded back into the IR (spec §3
// Lifecycle).
package policy

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

// Config holds the thresholds a profile tunes. It is a plain struct
// rather than an interface because every rule reads from the same
// shape; profiles differ only in the numbers they carry.
type Config struct {
	Profile svcs.Profile

	// MaxPathSegments is the native-eligibility ceiling on a Path's
	// segment count.
	MaxPathSegments int

	// MaxDashEntries is the native-eligibility ceiling on a stroke's
	// dash-array length.
	MaxDashEntries int

	// GroupComplexityCeiling bounds the total descendant segment count
	// a Group may carry before native emission is rejected outright,
	// independent of any individual child's own eligibility (spec
	// §4.4: "a group-level ceiling on descendant complexity to avoid
	// exploding single-shape EMF blobs").
	GroupComplexityCeiling int

	// AllowPatternFill, when false, forces Pattern-painted paths to
	// EMF regardless of segment count.
	AllowPatternFill bool
}

// SpeedProfile returns the aggressive-native, low-threshold config
// (spec §4.4: "aggressive native emission; low thresholds for
// complex; tolerates minor fidelity loss").
func SpeedProfile() Config {
	return Config{
		Profile:                svcs.ProfileSpeed,
		MaxPathSegments:        4000,
		MaxDashEntries:         12,
		GroupComplexityCeiling: 20000,
		AllowPatternFill:       true,
	}
}

// BalancedProfile returns the default config, tuned to typical
// PowerPoint rendering capability (spec §4.4 illustrative thresholds).
func BalancedProfile() Config {
	return Config{
		Profile:                svcs.ProfileBalanced,
		MaxPathSegments:        1000,
		MaxDashEntries:         6,
		GroupComplexityCeiling: 8000,
		AllowPatternFill:       true,
	}
}

// QualityProfile returns the conservative-native config that falls
// back to EMF earlier to preserve appearance (spec §4.4).
func QualityProfile() Config {
	return Config{
		Profile:                svcs.ProfileQuality,
		MaxPathSegments:        300,
		MaxDashEntries:         3,
		GroupComplexityCeiling: 2000,
		AllowPatternFill:       false,
	}
}

// ProfileConfig returns the named profile's config, defaulting to
// BalancedProfile for an unrecognized value.
func ProfileConfig(p svcs.Profile) Config {
	switch p {
	case svcs.ProfileSpeed:
		return SpeedProfile()
	case svcs.ProfileQuality:
		return QualityProfile()
	default:
		return BalancedProfile()
	}
}

// Clone returns a deep copy of c, so a caller may hand out a per-slide
// working copy without the profile constructors racing on shared
// slices (none currently, but copier.Copy is the pack's established
// idiom for struct cloning rather than a hand-rolled field-by-field
// copy — see DESIGN.md).
func (c Config) Clone() Config {
	var out Config
	if err := copier.Copy(&out, &c); err != nil {
		// Config has no unexported or cyclic fields; copier.Copy only
		// errors on those, so this is unreachable in practice.
		panic(fmt.Sprintf("policy: clone failed: %v", err))
	}
	return out
}

// Decision is the per-node outcome (spec §4.4): whether the node emits
// as native DrawingML, and the human-readable reasons that produced
// the verdict (useful for diagnostics and golden-file debugging).
type Decision struct {
	UseNative bool
	Reasons   []string
}

func nativeDecision(reasons ...string) Decision {
	return Decision{UseNative: true, Reasons: reasons}
}

func fallbackDecision(reasons ...string) Decision {
	return Decision{UseNative: false, Reasons: reasons}
}

// Table is the side table mapping each node's stable identity to its
// Decision (spec §3 Lifecycle: "carried on a parallel side-table keyed
// by stable node identity, not mutated into the IR").
type Table map[ir.NodeID]Decision

// Evaluate walks every node in scene.Elements and returns the complete
// decision table for cfg. Evaluation order does not affect the result:
// a Group's decision is the meet (logical AND) over its children's
// decisions plus its own complexity ceiling, so children are always
// evaluated before their parent.
func Evaluate(scene *ir.Scene, cfg Config, fonts *svcs.FontService) Table {
	t := make(Table)
	for _, n := range scene.Elements {
		evaluateNode(n, cfg, fonts, t)
	}
	return t
}

func evaluateNode(n ir.Node, cfg Config, fonts *svcs.FontService, t Table) int {
	switch v := n.(type) {
	case *ir.Path:
		d, weight := decidePath(v, cfg)
		t[v.ID()] = d
		return weight
	case *ir.TextFrame:
		t[v.ID()] = decideTextFrame(v, fonts)
		return len(v.Runs)
	case *ir.Image:
		t[v.ID()] = decideImage(v)
		return 1
	case *ir.Group:
		total := 0
		allNative := true
		var reasons []string
		for _, c := range v.Children {
			total += evaluateNode(c, cfg, fonts, t)
			if d, ok := t[c.ID()]; ok && !d.UseNative {
				allNative = false
			}
		}
		if total > cfg.GroupComplexityCeiling {
			reasons = append(reasons, fmt.Sprintf("descendant complexity %d exceeds ceiling %d", total, cfg.GroupComplexityCeiling))
			t[v.ID()] = fallbackDecision(reasons...)
			return total
		}
		if !allNative {
			t[v.ID()] = fallbackDecision("a descendant requires fallback")
			return total
		}
		t[v.ID()] = nativeDecision("all descendants are native")
		return total
	default:
		return 0
	}
}

func decidePath(p *ir.Path, cfg Config) (Decision, int) {
	n := len(p.Segments)
	if n > cfg.MaxPathSegments {
		return fallbackDecision(fmt.Sprintf("segment count %d exceeds %d", n, cfg.MaxPathSegments)), n
	}
	if p.Fill != nil && p.Fill.Kind() == ir.PaintPattern && !cfg.AllowPatternFill {
		return fallbackDecision("pattern fill not permitted under this profile"), n
	}
	if p.Stroke != nil && len(p.Stroke.DashArray) > cfg.MaxDashEntries {
		return fallbackDecision(fmt.Sprintf("dash-array length %d exceeds %d", len(p.Stroke.DashArray), cfg.MaxDashEntries)), n
	}
	return nativeDecision("within segment, pattern, and dash thresholds"), n
}

func decideTextFrame(tf *ir.TextFrame, fonts *svcs.FontService) Decision {
	for _, r := range tf.Runs {
		if r.Direction != ir.DirLTR {
			return fallbackDecision(fmt.Sprintf("run %q is not left-to-right", r.Text))
		}
		if fonts != nil && !fonts.IsKnown(r.FontFamily) {
			return fallbackDecision(fmt.Sprintf("font %q is not available in the target", r.FontFamily))
		}
	}
	return nativeDecision("all runs are ltr with a known font")
}

func decideImage(img *ir.Image) Decision {
	switch img.Format {
	case ir.ImagePNG, ir.ImageJPEG:
		return nativeDecision("raster format is directly embeddable")
	case ir.ImageSVG:
		return nativeDecision("SVG reference is recursively converted and inlined")
	default:
		return fallbackDecision("unsupported image format")
	}
}
