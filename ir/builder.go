// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/BramAlkema/svg2pptx-sub018/geom"

// NewPath constructs a Path node with a freshly allocated ID from s.
func (s *Scene) NewPath(segments []Segment, fill *Paint, stroke *Stroke, opacity float32, clip *ClipRef, closed bool) *Path {
	return &Path{
		base:     base{id: s.NextID(), Opacity: opacity, Clip: clip},
		Segments: LowerArcs(segments),
		Fill:     fill,
		Stroke:   stroke,
		Closed:   closed,
	}
}

// NewTextFrame constructs a TextFrame node.
func (s *Scene) NewTextFrame(origin geom.Point, width, height float64, anchor TextAnchor, runs []Run, opacity float32, clip *ClipRef) *TextFrame {
	return &TextFrame{
		base:   base{id: s.NextID(), Opacity: opacity, Clip: clip},
		Origin: origin, Width: width, Height: height,
		Anchor: anchor, Runs: runs,
	}
}

// NewGroup constructs a Group node owning children.
func (s *Scene) NewGroup(children []Node, transform *geom.Matrix, opacity float32, clip *ClipRef) *Group {
	return &Group{
		base:      base{id: s.NextID(), Opacity: opacity, Clip: clip},
		Children:  children,
		Transform: transform,
	}
}

// NewImage constructs an Image node.
func (s *Scene) NewImage(href string, format ImageFormat, data []byte, rect geom.Rect, par PreserveAspectRatio, opacity float32, clip *ClipRef) *Image {
	return &Image{
		base:                base{id: s.NextID(), Opacity: opacity, Clip: clip},
		Href:                href,
		Format:              format,
		Data:                data,
		Rect:                rect,
		PreserveAspectRatio: par,
	}
}

// Acyclic reports whether the subtree rooted at nodes contains no Group
// that (transitively) contains itself as a child (spec §3 invariant 1,
// tested per spec §8 "IR acyclicity"). Since Group.Children is built
// bottom-up by NewGroup and Go has no back-references without explicit
// aliasing, this performs a defensive identity-cycle walk rather than
// assuming the invariant holds by construction.
func Acyclic(nodes []Node) bool {
	visiting := make(map[NodeID]bool)
	var walk func(n Node) bool
	walk = func(n Node) bool {
		g, ok := n.(*Group)
		if !ok {
			return true
		}
		if visiting[g.id] {
			return false
		}
		visiting[g.id] = true
		defer delete(visiting, g.id)
		for _, c := range g.Children {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	for _, n := range nodes {
		if !walk(n) {
			return false
		}
	}
	return true
}
