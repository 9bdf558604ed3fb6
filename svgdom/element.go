// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgdom parses an SVG document into a lightweight generic
// element tree and normalizes it per spec §4.2: namespace resolution,
// shape-to-path conversion, transform flattening, identity removal, and
// viewport normalization. The normalized tree is the input to irbuild's
// IR construction.
package svgdom

import "encoding/xml"

// Element is one node of the parsed SVG tree. Namespace prefixes are
// stripped at parse time (spec §4.2 step 1): Name is always the local
// part, matching the teacher's XMLAttr convention of matching on
// attr.Name.Local rather than the qualified name
// (colors/gradient/parse.go).
type Element struct {
	Name     string
	Attrs    []xml.Attr
	Children []*Element
	CharData string
	Parent   *Element
}

// Attr returns the value of the named attribute, or "" if absent.
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return true
		}
	}
	return false
}

// SetAttr sets (overwriting if present) the named attribute.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name.Local == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// RemoveAttr deletes the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	out := e.Attrs[:0]
	for _, a := range e.Attrs {
		if a.Name.Local != name {
			out = append(out, a)
		}
	}
	e.Attrs = out
}

// Walk calls fn for e and every descendant, pre-order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// Document is a parsed, not-yet-normalized SVG tree.
type Document struct {
	Root *Element
}
