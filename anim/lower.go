// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"strings"

	"github.com/BramAlkema/svg2pptx-sub018/internal/xmlw"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/pathdata"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

// NeedsBaking reports whether an animation cannot be expressed as a
// PowerPoint timing node and must instead go through Bake (spec §4.8
// "Fallback. Animations whose duration is zero, whose target is
// unresolved, or whose calcMode=spline combined with multi-segment
// color/motion exceeds what PowerPoint expresses are baked").
func NeedsBaking(a Animation) bool {
	if a.Timing.Dur <= 0 {
		return true
	}
	if a.TargetNode == 0 {
		return true
	}
	if a.Kind == KindTransformSkew {
		// DrawingML's timing schema has no skew primitive.
		return true
	}
	multiSegment := len(a.Values) > 2
	if isColorAttribute(a.Attribute) && multiSegment {
		return true
	}
	if a.CalcMode == CalcSpline && multiSegment && a.Kind == KindMotion {
		return true
	}
	return false
}

func isColorAttribute(attr string) bool {
	switch attr {
	case "fill", "stroke", "color", "stop-color", "flood-color", "lighting-color":
		return true
	}
	return false
}

// idAllocator hands out sequential <p:cTn id> values starting at 2 (id 1
// is left unused). LowerToTiming allocates every animation node's ids
// first and the tmRoot and main-sequence ids after them.
type idAllocator struct{ next int }

func (a *idAllocator) next1() int {
	a.next++
	return a.next
}

// LowerToTiming renders a <p:timing> tree binding every
// PowerPoint-expressible animation (NeedsBaking false) to the shape ID
// the mapper assigned its target node, per spec §4.8 "PowerPoint
// lowering". Animations that need baking are silently excluded here;
// callers pair this with Bake for those.
func LowerToTiming(anims []Animation, begins map[int]float64, shapeIDs map[ir.NodeID]int, diags *svcs.Diagnostics) string {
	ids := &idAllocator{next: 1}
	var nodes []string
	for i, a := range anims {
		if NeedsBaking(a) {
			continue
		}
		spid, ok := shapeIDs[a.TargetNode]
		if !ok {
			diags.Warnf(svcs.CodeAnimationUnresolved, "#"+a.TargetID, "animation target has no mapped shape; skipped")
			continue
		}
		begin, ok := begins[i]
		if !ok {
			continue // ResolveTimeline already warned about this one
		}
		node := lowerOne(a, spid, begin, ids)
		if node != "" {
			nodes = append(nodes, node)
		}
	}
	if len(nodes) == 0 {
		return ""
	}

	b := xmlw.NewFragment()
	b.Open("p:timing")
	b.Open("p:tnLst")
	b.Open("p:par")
	b.Open("p:cTn", xmlw.Af("id", "%d", ids.next1()), xmlw.A("dur", "indefinite"), xmlw.A("nodeType", "tmRoot"))
	b.Open("p:childTnLst")
	b.Open("p:seq", xmlw.A("concurrent", "1"), xmlw.A("nextAc", "seek"))
	b.Open("p:cTn", xmlw.Af("id", "%d", ids.next1()), xmlw.A("dur", "indefinite"))
	b.Open("p:childTnLst")
	for _, n := range nodes {
		b.Raw(n)
	}
	b.Close() // childTnLst
	b.Close() // cTn
	b.Close() // seq
	b.Close() // childTnLst
	b.Close() // cTn
	b.Close() // par
	b.Close() // tnLst
	b.Close() // timing
	return b.String()
}

func lowerOne(a Animation, spid int, beginSec float64, ids *idAllocator) string {
	beginMS := int(beginSec*1000 + 0.5)
	durMS := int(a.Timing.Dur*1000 + 0.5)
	accel, decel := easingFor(a)
	fillAttr := "hold"
	if a.Timing.Fill == FillRemove {
		fillAttr = "remove"
	}

	b := xmlw.NewFragment()
	b.Open("p:par")
	b.Open("p:cTn", xmlw.Af("id", "%d", ids.next1()), xmlw.Af("delay", "%d", beginMS), xmlw.A("fill", fillAttr))
	b.Open("p:stCondLst")
	b.SelfClose("p:cond", xmlw.Af("delay", "%d", beginMS))
	b.Close()
	b.Open("p:childTnLst")

	switch {
	case a.Kind == KindSet:
		writeSetNode(b, a, spid, beginMS, ids)
	case a.Kind == KindAttribute && a.Attribute == "opacity":
		writeFadeNode(b, a, spid, durMS, accel, decel, ids)
	case a.Kind == KindAttribute && isColorAttribute(a.Attribute):
		writeColorNode(b, a, spid, durMS, accel, decel, ids)
	case a.Kind == KindTransformScale:
		writeScaleNode(b, a, spid, durMS, accel, decel, ids)
	case a.Kind == KindTransformRotate:
		writeRotateNode(b, a, spid, durMS, accel, decel, ids)
	case a.Kind == KindTransformTranslate || a.Kind == KindMotion:
		writeMotionNode(b, a, spid, durMS, accel, decel, ids)
	default:
		writeFadeNode(b, a, spid, durMS, accel, decel, ids)
	}

	b.Close() // childTnLst
	b.Close() // cTn
	b.Close() // par
	return b.String()
}

func writeTgt(b *xmlw.Builder, spid int) {
	b.Open("p:tgtEl")
	b.SelfClose("p:spTgt", xmlw.Af("spid", "%d", spid))
	b.Close()
}

func writeFadeNode(b *xmlw.Builder, a Animation, spid, durMS, accel, decel int, ids *idAllocator) {
	from, to := "0", "100000"
	if len(a.Values) >= 2 {
		nums0 := parseNumberList(a.Values[0])
		nums1 := parseNumberList(a.Values[len(a.Values)-1])
		if len(nums0) > 0 {
			from = fmt.Sprintf("%d", int(nums0[0]*100000+0.5))
		}
		if len(nums1) > 0 {
			to = fmt.Sprintf("%d", int(nums1[0]*100000+0.5))
		}
	}
	b.Open("p:anim", xmlw.A("calcmode", "lin"), xmlw.A("valueType", "num"))
	b.Open("p:cBhvr")
	b.SelfClose("p:cTn", xmlw.Af("id", "%d", ids.next1()), xmlw.Af("dur", "%d", durMS),
		xmlw.Af("accel", "%d", accel), xmlw.Af("decel", "%d", decel))
	writeTgt(b, spid)
	b.Open("p:attrNameLst")
	b.Open("p:attrName").Text("style.opacity").Close()
	b.Close()
	b.Close() // cBhvr
	b.Open("p:tavLst")
	b.Open("p:tav", xmlw.A("tm", "0"))
	b.Open("p:val")
	b.SelfClose("p:fltVal", xmlw.A("val", from))
	b.Close()
	b.Close()
	b.Open("p:tav", xmlw.A("tm", "100000"))
	b.Open("p:val")
	b.SelfClose("p:fltVal", xmlw.A("val", to))
	b.Close()
	b.Close()
	b.Close() // tavLst
	b.Close() // anim
}

func writeColorNode(b *xmlw.Builder, a Animation, spid, durMS, accel, decel int, ids *idAllocator) {
	var fromHex, toHex string = "000000", "FFFFFF"
	if len(a.Values) >= 1 {
		if c, ok := parseColorValue(a.Values[0]); ok {
			fromHex = fmt.Sprintf("%06X", c)
		}
	}
	if len(a.Values) >= 2 {
		if c, ok := parseColorValue(a.Values[len(a.Values)-1]); ok {
			toHex = fmt.Sprintf("%06X", c)
		}
	}
	b.Open("p:animClr", xmlw.A("clrSpc", "rgb"))
	b.Open("p:cBhvr")
	b.SelfClose("p:cTn", xmlw.Af("id", "%d", ids.next1()), xmlw.Af("dur", "%d", durMS),
		xmlw.Af("accel", "%d", accel), xmlw.Af("decel", "%d", decel))
	writeTgt(b, spid)
	b.Open("p:attrNameLst")
	b.Open("p:attrName").Text("style.color").Close()
	b.Close()
	b.Close() // cBhvr
	b.Open("p:from")
	b.SelfClose("a:srgbClr", xmlw.A("val", fromHex))
	b.Close()
	b.Open("p:to")
	b.SelfClose("a:srgbClr", xmlw.A("val", toHex))
	b.Close()
	b.Close() // animClr
}

func writeScaleNode(b *xmlw.Builder, a Animation, spid, durMS, accel, decel int, ids *idAllocator) {
	toX, toY := 100000, 100000
	if len(a.Values) > 0 {
		nums := parseNumberList(a.Values[len(a.Values)-1])
		if len(nums) >= 1 {
			toX = int(nums[0] * 100000)
		}
		toY = toX
		if len(nums) >= 2 {
			toY = int(nums[1] * 100000)
		}
	}
	b.Open("p:animScale")
	b.Open("p:cBhvr")
	b.SelfClose("p:cTn", xmlw.Af("id", "%d", ids.next1()), xmlw.Af("dur", "%d", durMS),
		xmlw.Af("accel", "%d", accel), xmlw.Af("decel", "%d", decel))
	writeTgt(b, spid)
	b.Close() // cBhvr
	b.SelfClose("p:to", xmlw.Af("x", "%d", toX), xmlw.Af("y", "%d", toY))
	b.Close() // animScale
}

func writeRotateNode(b *xmlw.Builder, a Animation, spid, durMS, accel, decel int, ids *idAllocator) {
	byDeg := 0.0
	if len(a.Values) > 0 {
		nums := parseNumberList(a.Values[len(a.Values)-1])
		if len(nums) > 0 {
			byDeg = nums[0]
		}
		if len(a.Values) > 1 {
			first := parseNumberList(a.Values[0])
			if len(first) > 0 {
				byDeg -= first[0]
			}
		}
	}
	b.Open("p:animRot", xmlw.Af("by", "%d", int(byDeg*60000)))
	b.Open("p:cBhvr")
	b.SelfClose("p:cTn", xmlw.Af("id", "%d", ids.next1()), xmlw.Af("dur", "%d", durMS),
		xmlw.Af("accel", "%d", accel), xmlw.Af("decel", "%d", decel))
	writeTgt(b, spid)
	b.Close() // cBhvr
	b.Close() // animRot
}

func writeMotionNode(b *xmlw.Builder, a Animation, spid, durMS, accel, decel int, ids *idAllocator) {
	path := buildMotionPath(a)
	b.Open("p:animMotion", xmlw.A("path", path), xmlw.A("origin", "layout"), xmlw.A("pathEditMode", "relative"))
	b.Open("p:cBhvr")
	b.SelfClose("p:cTn", xmlw.Af("id", "%d", ids.next1()), xmlw.Af("dur", "%d", durMS),
		xmlw.Af("accel", "%d", accel), xmlw.Af("decel", "%d", decel))
	writeTgt(b, spid)
	b.Close() // cBhvr
	b.Close() // animMotion
}

func writeSetNode(b *xmlw.Builder, a Animation, spid, beginMS int, ids *idAllocator) {
	val := ""
	if len(a.Values) > 0 {
		val = a.Values[0]
	}
	b.Open("p:set")
	b.Open("p:cBhvr")
	b.SelfClose("p:cTn", xmlw.Af("id", "%d", ids.next1()), xmlw.A("dur", "1"))
	writeTgt(b, spid)
	b.Open("p:attrNameLst")
	b.Open("p:attrName").Text(a.Attribute).Close()
	b.Close()
	b.Close() // cBhvr
	b.Open("p:to")
	b.Open("p:strVal", xmlw.A("val", val))
	b.Close()
	b.Close()
	b.Close() // set
}

// buildMotionPath renders the translate/animateMotion values into
// DrawingML's relative-path mini-language, grounded on the original
// implementation's simpler "translate values to path" logic
// (original_source archive/animations_monolithic_backup.py
// _translate_values_to_path) and extended here to full path data when
// an animateMotion references one, via pathdata.Parse.
func buildMotionPath(a Animation) string {
	if a.Kind == KindMotion && a.MotionPath != "" {
		return motionPathFromD(a.MotionPath)
	}
	return translateValuesToPath(a.Values)
}

func translateValuesToPath(values []string) string {
	if len(values) == 0 {
		return "M 0,0 L 0,0"
	}
	parts := []string{"M 0,0"}
	for _, v := range values[1:] {
		nums := parseNumberList(v)
		switch {
		case len(nums) == 0:
			continue
		case len(nums) == 1:
			parts = append(parts, fmt.Sprintf("L %g,0", nums[0]))
		default:
			parts = append(parts, fmt.Sprintf("L %g,%g", nums[0], nums[1]))
		}
	}
	return strings.Join(parts, " ")
}

func motionPathFromD(d string) string {
	subs, err := pathdata.Parse(d)
	if err != nil || len(subs) == 0 {
		return "M 0,0 L 0,0"
	}
	sub := subs[0]
	origin := sub.StartPoint()
	parts := []string{"M 0,0"}
	for _, seg := range sub.Segments {
		switch seg.Kind {
		case pathdata.KindLine:
			parts = append(parts, fmt.Sprintf("L %g,%g", seg.End.X-origin.X, seg.End.Y-origin.Y))
		case pathdata.KindCubic:
			parts = append(parts, fmt.Sprintf("C %g,%g %g,%g %g,%g",
				seg.C1.X-origin.X, seg.C1.Y-origin.Y,
				seg.C2.X-origin.X, seg.C2.Y-origin.Y,
				seg.End.X-origin.X, seg.End.Y-origin.Y))
		}
	}
	return strings.Join(parts, " ")
}
