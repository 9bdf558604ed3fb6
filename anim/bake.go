// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"math"

	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
	"github.com/BramAlkema/svg2pptx-sub018/pathdata"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

// Bake evaluates every animation that NeedsBaking at a fixed sample
// rate and returns one cloned Scene per sample, each with the baked
// animations' effect applied directly to node geometry — spec §4.8's
// fallback: "the compiler evaluates the timeline at a configurable
// sample rate (default 24 Hz, cap 30 keyframes), producing a sequence
// of IR scenes that the packager emits as successive slides." Returns
// nil if nothing needs baking.
func Bake(scene *ir.Scene, anims []Animation, begins map[int]float64, opts svcs.Options) []*ir.Scene {
	return bake(scene, anims, begins, opts, false)
}

// BakeAll bakes every animation regardless of NeedsBaking, for
// AnimationMode=baked, which forgoes PowerPoint timing nodes entirely.
func BakeAll(scene *ir.Scene, anims []Animation, begins map[int]float64, opts svcs.Options) []*ir.Scene {
	return bake(scene, anims, begins, opts, true)
}

func bake(scene *ir.Scene, anims []Animation, begins map[int]float64, opts svcs.Options, all bool) []*ir.Scene {
	type entry struct {
		a     Animation
		begin float64
	}
	var entries []entry
	maxEnd := 0.0
	for i, a := range anims {
		if a.TargetNode == 0 {
			continue
		}
		if !all && !NeedsBaking(a) {
			continue
		}
		begin, ok := begins[i]
		if !ok {
			continue
		}
		entries = append(entries, entry{a: a, begin: begin})
		cycles := 1.0
		if a.Timing.Repeat.Kind == RepeatFinite && a.Timing.Repeat.Count > 1 {
			cycles = a.Timing.Repeat.Count
		}
		end := begin + a.Timing.Dur*cycles
		if end > maxEnd {
			maxEnd = end
		}
	}
	if len(entries) == 0 {
		return nil
	}

	fps := opts.BakeFPS
	if fps <= 0 {
		fps = 24
	}
	maxFrames := opts.BakeMaxKeyframes
	if maxFrames <= 0 {
		maxFrames = 30
	}
	frameCount := int(maxEnd*float64(fps)) + 1
	if frameCount > maxFrames {
		frameCount = maxFrames
	}
	if frameCount < 1 {
		frameCount = 1
	}

	frames := make([]*ir.Scene, 0, frameCount)
	for f := 0; f < frameCount; f++ {
		t := 0.0
		if frameCount > 1 {
			t = maxEnd * float64(f) / float64(frameCount-1)
		}
		clone := cloneScene(scene)
		for _, e := range entries {
			node := findNode(clone.Elements, e.a.TargetNode)
			if node == nil {
				continue
			}
			local := localProgress(e.a, e.begin, t)
			applyAnimation(node, e.a, local)
		}
		frames = append(frames, clone)
	}
	return frames
}

// localProgress maps an absolute sample time t to the animation's local
// [0,1] progress, honoring repeatCount/indefinite wraparound.
func localProgress(a Animation, begin, t float64) float64 {
	if t <= begin || a.Timing.Dur <= 0 {
		return 0
	}
	elapsed := t - begin
	cycles := elapsed / a.Timing.Dur
	if a.Timing.Repeat.Kind == RepeatIndefinite {
		return cycles - math.Floor(cycles)
	}
	if cycles >= a.Timing.Repeat.Count {
		return 1
	}
	return cycles - math.Floor(cycles)
}

func applyAnimation(n ir.Node, a Animation, t float64) {
	switch a.Kind {
	case KindSet:
		applySet(n, a)
	case KindAttribute:
		if isColorAttribute(a.Attribute) {
			if c, ok := sampleAnimationColor(a, t); ok {
				setFillColor(n, c)
			}
			return
		}
		if a.Attribute == "opacity" {
			vals := sampleAnimationNumeric(a, t)
			if len(vals) > 0 {
				setOpacity(n, float32(vals[0]))
			}
		}
	default:
		applyMatrix(n, sampledMatrix(a, t))
	}
}

func applySet(n ir.Node, a Animation) {
	if len(a.Values) == 0 {
		return
	}
	if isColorAttribute(a.Attribute) {
		if c, ok := parseColorValue(a.Values[0]); ok {
			setFillColor(n, c)
		}
		return
	}
	if a.Attribute == "opacity" {
		if nums := parseNumberList(a.Values[0]); len(nums) > 0 {
			setOpacity(n, float32(nums[0]))
		}
	}
}

func setOpacity(n ir.Node, v float32) {
	switch x := n.(type) {
	case *ir.Path:
		x.Opacity = v
	case *ir.TextFrame:
		x.Opacity = v
	case *ir.Group:
		x.Opacity = v
	case *ir.Image:
		x.Opacity = v
	}
}

func setFillColor(n ir.Node, rgb uint32) {
	if p, ok := n.(*ir.Path); ok && p.Fill != nil && p.Fill.Kind() == ir.PaintSolid {
		p.Fill.RGB = rgb
	}
}

// sampledMatrix derives the affine transform a scale/rotate/skew/
// translate/motion animation contributes at local progress t.
func sampledMatrix(a Animation, t float64) geom.Matrix {
	switch a.Kind {
	case KindTransformScale:
		vals := sampleAnimationNumeric(a, t)
		sx, sy := 1.0, 1.0
		if len(vals) > 0 {
			sx, sy = vals[0], vals[0]
		}
		if len(vals) > 1 {
			sy = vals[1]
		}
		return geom.Scale(sx, sy)
	case KindTransformRotate:
		vals := sampleAnimationNumeric(a, t)
		deg, cx, cy := 0.0, 0.0, 0.0
		if len(vals) > 0 {
			deg = vals[0]
		}
		if len(vals) > 2 {
			cx, cy = vals[1], vals[2]
		}
		rad := deg * math.Pi / 180
		return geom.Translate(cx, cy).Mul(geom.Rotate(rad)).Mul(geom.Translate(-cx, -cy))
	case KindTransformSkew:
		vals := sampleAnimationNumeric(a, t)
		deg := 0.0
		if len(vals) > 0 {
			deg = vals[0]
		}
		return geom.SkewX(deg * math.Pi / 180)
	case KindTransformTranslate, KindMotion:
		pt, tangent := sampleMotionPoint(a, t)
		m := geom.Translate(pt.X, pt.Y)
		if a.Kind == KindMotion && a.RotateAuto {
			rad := (tangent + a.RotateOffsetDeg) * math.Pi / 180
			m = m.Mul(geom.Rotate(rad))
		}
		return m
	}
	return geom.Identity
}

// sampleMotionPoint returns the position delta from the motion path's
// origin (or the translate values' origin) and the path tangent angle
// in degrees at local progress t, restoring the richer animateMotion
// handling SPEC_FULL §4.8A calls for.
func sampleMotionPoint(a Animation, t float64) (geom.Point, float64) {
	if a.MotionPath != "" {
		subs, err := pathdata.Parse(a.MotionPath)
		if err == nil && len(subs) > 0 {
			return sampleAlongSubpath(subs[0], t)
		}
	}
	vals := sampleAnimationNumeric(a, t)
	switch {
	case len(vals) >= 2:
		return geom.Point{X: vals[0], Y: vals[1]}, 0
	case len(vals) == 1:
		return geom.Point{X: vals[0]}, 0
	default:
		return geom.Point{}, 0
	}
}

func sampleAlongSubpath(sub pathdata.Subpath, t float64) (geom.Point, float64) {
	if len(sub.Segments) == 0 {
		return geom.Point{}, 0
	}
	origin := sub.StartPoint()
	lens := make([]float64, len(sub.Segments))
	total := 0.0
	for i, seg := range sub.Segments {
		lens[i] = segLength(seg)
		total += lens[i]
	}
	if total == 0 {
		return geom.Point{}, 0
	}
	target := t * total
	acc := 0.0
	for i, seg := range sub.Segments {
		if target <= acc+lens[i] || i == len(sub.Segments)-1 {
			local := 0.0
			if lens[i] > 0 {
				local = (target - acc) / lens[i]
			}
			if local > 1 {
				local = 1
			}
			pt := segPointAt(seg, local)
			tangent := segTangentAt(seg, local)
			return geom.Point{X: pt.X - origin.X, Y: pt.Y - origin.Y}, tangent
		}
		acc += lens[i]
	}
	last := sub.Segments[len(sub.Segments)-1].End
	return geom.Point{X: last.X - origin.X, Y: last.Y - origin.Y}, 0
}

func segLength(seg pathdata.Segment) float64 {
	switch seg.Kind {
	case pathdata.KindCubic:
		chord := seg.Start.Dist(seg.End)
		poly := seg.Start.Dist(seg.C1) + seg.C1.Dist(seg.C2) + seg.C2.Dist(seg.End)
		return (chord + poly) / 2
	default: // KindLine
		return seg.Start.Dist(seg.End)
	}
}

func segPointAt(seg pathdata.Segment, t float64) geom.Point {
	if seg.Kind == pathdata.KindCubic {
		u := 1 - t
		return geom.Point{
			X: u*u*u*seg.Start.X + 3*u*u*t*seg.C1.X + 3*u*t*t*seg.C2.X + t*t*t*seg.End.X,
			Y: u*u*u*seg.Start.Y + 3*u*u*t*seg.C1.Y + 3*u*t*t*seg.C2.Y + t*t*t*seg.End.Y,
		}
	}
	return geom.Point{X: lerp(seg.Start.X, seg.End.X, t), Y: lerp(seg.Start.Y, seg.End.Y, t)}
}

func segTangentAt(seg pathdata.Segment, t float64) float64 {
	var dx, dy float64
	if seg.Kind == pathdata.KindCubic {
		u := 1 - t
		dx = 3*u*u*(seg.C1.X-seg.Start.X) + 6*u*t*(seg.C2.X-seg.C1.X) + 3*t*t*(seg.End.X-seg.C2.X)
		dy = 3*u*u*(seg.C1.Y-seg.Start.Y) + 6*u*t*(seg.C2.Y-seg.C1.Y) + 3*t*t*(seg.End.Y-seg.C2.Y)
	} else {
		dx, dy = seg.End.X-seg.Start.X, seg.End.Y-seg.Start.Y
	}
	return math.Atan2(dy, dx) * 180 / math.Pi
}

func applyMatrix(n ir.Node, m geom.Matrix) {
	switch x := n.(type) {
	case *ir.Group:
		if x.Transform != nil {
			nm := m.Mul(*x.Transform)
			x.Transform = &nm
		} else {
			nm := m
			x.Transform = &nm
		}
	case *ir.Path:
		for i := range x.Segments {
			x.Segments[i].Start = m.Apply(x.Segments[i].Start)
			x.Segments[i].End = m.Apply(x.Segments[i].End)
			x.Segments[i].C1 = m.Apply(x.Segments[i].C1)
			x.Segments[i].C2 = m.Apply(x.Segments[i].C2)
		}
	case *ir.TextFrame:
		x.Origin = m.Apply(x.Origin)
	case *ir.Image:
		origin := m.Apply(geom.Point{X: x.Rect.X, Y: x.Rect.Y})
		x.Rect.X, x.Rect.Y = origin.X, origin.Y
	}
}

// cloneScene deep-copies a Scene's element tree so Bake can mutate each
// sample's geometry independently without disturbing the source IR
// (spec §3 Lifecycle: "IR nodes are created once ... and never mutated
// afterward" — baking produces new Scenes rather than violating that).
func cloneScene(s *ir.Scene) *ir.Scene {
	clone := &ir.Scene{
		ViewBox: s.ViewBox, Width: s.Width, Height: s.Height,
		Defs: s.Defs, Clips: s.Clips, Filters: s.Filters, NodeByID: s.NodeByID,
	}
	clone.Elements = make([]ir.Node, len(s.Elements))
	for i, n := range s.Elements {
		clone.Elements[i] = cloneNode(n)
	}
	return clone
}

func cloneNode(n ir.Node) ir.Node {
	switch v := n.(type) {
	case *ir.Path:
		c := *v
		c.Segments = append([]ir.Segment(nil), v.Segments...)
		if v.Fill != nil {
			f := *v.Fill
			c.Fill = &f
		}
		if v.Stroke != nil {
			s := *v.Stroke
			s.DashArray = append([]float64(nil), v.Stroke.DashArray...)
			c.Stroke = &s
		}
		return &c
	case *ir.TextFrame:
		c := *v
		c.Runs = append([]ir.Run(nil), v.Runs...)
		return &c
	case *ir.Image:
		c := *v
		return &c
	case *ir.Group:
		c := *v
		c.Children = make([]ir.Node, len(v.Children))
		for i, ch := range v.Children {
			c.Children[i] = cloneNode(ch)
		}
		return &c
	default:
		return n
	}
}

func findNode(nodes []ir.Node, id ir.NodeID) ir.Node {
	for _, n := range nodes {
		if n.ID() == id {
			return n
		}
		if g, ok := n.(*ir.Group); ok {
			if found := findNode(g.Children, id); found != nil {
				return found
			}
		}
	}
	return nil
}
