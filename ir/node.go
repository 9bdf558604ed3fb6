// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/BramAlkema/svg2pptx-sub018/geom"

// NodeID is a stable identity for an IR node, used to key the policy
// engine's side-table of decisions (spec §3 Lifecycle: "Annotations...
// are carried on a parallel side-table keyed by stable node identity,
// not mutated into the IR"). IDs are assigned once at construction time
// and never reused within a Scene.
type NodeID uint32

// Node is the IR node tagged variant from spec §3: Path, TextFrame,
// Group, or Image. Scene is the tree root and is not itself a Node.
type Node interface {
	// ID returns the node's stable identity.
	ID() NodeID
	isNode()
}

// base carries the fields common to every node: identity, opacity, and
// an optional clip reference.
type base struct {
	id      NodeID
	Opacity float32
	Clip    *ClipRef
	Filter  *FilterRef
}

// ID implements Node.
func (b base) ID() NodeID { return b.id }

func (base) isNode() {}

// TextAnchor selects how a TextFrame's runs align to its origin.
type TextAnchor int

const (
	AnchorStart TextAnchor = iota
	AnchorMiddle
	AnchorEnd
)

// TextDirection is the run's writing direction.
type TextDirection int

const (
	DirLTR TextDirection = iota
	DirRTL
)

// Run is one styled span of text within a TextFrame.
type Run struct {
	Text       string
	FontFamily string
	SizePt     float64
	Bold       bool
	Italic     bool
	RGB        uint32
	Alpha      float32
	Direction  TextDirection
}

// Path is a filled/stroked vector outline.
type Path struct {
	base
	Segments []Segment
	Fill     *Paint
	Stroke   *Stroke
	Closed   bool
}

// TextFrame is a positioned block of styled text runs.
type TextFrame struct {
	base
	Origin geom.Point
	Width  float64
	Height float64
	Anchor TextAnchor
	Runs   []Run
}

// Group is the only composite IR node; it exclusively owns its
// children (spec §3 Ownership, invariant 1: never contains an
// ancestor).
type Group struct {
	base
	Children  []Node
	Transform *geom.Matrix
}

// ImageFormat names the raster/vector encoding of an Image's source
// bytes.
type ImageFormat int

const (
	ImagePNG ImageFormat = iota
	ImageJPEG
	ImageEMF // a pre-synthesized EMF referenced directly
	ImageSVG // an SVG reference, recursively converted and inlined
)

// PreserveAspectRatio mirrors the SVG attribute of the same name for
// Image placement.
type PreserveAspectRatio struct {
	Align string // e.g. "xMidYMid", "none"
	Slice bool
}

// Image is a raster image or an EMF/SVG reference.
type Image struct {
	base
	Href                string
	Format              ImageFormat
	Data                []byte
	Rect                geom.Rect
	PreserveAspectRatio PreserveAspectRatio
}

// ClipRef is a weak reference to a clip path owned by the Scene's Clips
// table (spec §3 Ownership: "the clip's geometry is owned by the
// table, not by the referring node").
type ClipRef struct {
	ID       string
	Strategy ClipStrategy
}

// ClipStrategy selects how a clip is lowered when native clipping isn't
// expressible in DrawingML.
type ClipStrategy int

const (
	ClipNative ClipStrategy = iota
	ClipRaster
)

// ClipPath is clip geometry owned by a Scene's Clips table.
type ClipPath struct {
	Segments []Segment
}

// Scene is the IR tree root; it exclusively owns its element tree
// (spec §3 Ownership).
type Scene struct {
	Elements []Node
	ViewBox  geom.Rect
	Width    uint32
	Height   uint32

	// Defs and Clips are scene-level relations (spec §9: "a relation,
	// not ownership"), keyed by the SVG document's id attribute values.
	Defs  map[string]Paint
	Clips map[string]ClipPath

	// NodeByID resolves a source document's id attribute to the NodeID
	// assigned to the element built from it, so later stages (the
	// animation compiler's target_id references) can find a node
	// without re-walking the source tree.
	NodeByID map[string]NodeID

	// Filters holds each source <filter> element's parsed effect chain,
	// keyed by id, mirroring Clips' relation-not-ownership pattern.
	Filters map[string][]FilterEffect

	nextID NodeID
}

// NewScene returns an empty Scene with its relation tables initialized.
func NewScene(viewBox geom.Rect, width, height uint32) *Scene {
	return &Scene{
		ViewBox: viewBox, Width: width, Height: height,
		Defs: make(map[string]Paint), Clips: make(map[string]ClipPath),
		NodeByID: make(map[string]NodeID),
		Filters:  make(map[string][]FilterEffect),
	}
}

// NextID allocates a fresh, stable NodeID for this scene.
func (s *Scene) NextID() NodeID {
	s.nextID++
	return s.nextID
}
