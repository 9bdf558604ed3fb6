// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xmlw is a minimal XML token writer used by every mapper and
// packager function in this module. Spec §9 calls out the source's
// templated string concatenation for DrawingML/PresentationML XML as
// "brittle and duplicated" and asks for "a single XML writer that
// guarantees escaping, attribute ordering, and namespace declarations;
// every mapper emits events/tokens, never raw strings." This package is
// that writer: callers build a tree of Open/Attr/Text/Close calls and
// render once; escaping is structural, not a per-call-site
// responsibility.
package xmlw

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Attr is one XML attribute, name and value in emission order —
// attributes are never reordered or deduplicated by this package,
// matching spec §9's "attribute ordering" guarantee (callers get
// exactly the order they asked for).
type Attr struct {
	Name  string
	Value string
}

// A is a convenience constructor for Attr.
func A(name, value string) Attr { return Attr{Name: name, Value: value} }

// Af is a convenience constructor for an Attr whose value is formatted
// with fmt.Sprintf.
func Af(name, format string, args ...any) Attr {
	return Attr{Name: name, Value: fmt.Sprintf(format, args...)}
}

// Builder accumulates XML output. The zero value is an empty fragment
// builder, the same as NewFragment returns; New adds the XML
// declaration.
type Builder struct {
	buf   bytes.Buffer
	stack []string
}

// New returns a Builder with the standard XML declaration already
// written, matching every part this module emits (spec §6: "All XML
// parts are UTF-8 with a standalone declaration").
func New() *Builder {
	b := &Builder{}
	b.buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	return b
}

// NewFragment returns a Builder without an XML declaration, for
// sub-trees embedded inside another document (e.g. a single <p:sp>
// rendered independently and then spliced into a slide body).
func NewFragment() *Builder { return &Builder{} }

// Open writes a start tag with the given attributes and pushes it onto
// the open-element stack.
func (b *Builder) Open(name string, attrs ...Attr) *Builder {
	b.writeTag(name, attrs, false)
	b.stack = append(b.stack, name)
	return b
}

// SelfClose writes a self-closing element and does not push it onto
// the stack.
func (b *Builder) SelfClose(name string, attrs ...Attr) *Builder {
	b.writeTag(name, attrs, true)
	return b
}

func (b *Builder) writeTag(name string, attrs []Attr, self bool) {
	b.buf.WriteByte('<')
	b.buf.WriteString(name)
	for _, a := range attrs {
		b.buf.WriteByte(' ')
		b.buf.WriteString(a.Name)
		b.buf.WriteString(`="`)
		escapeInto(&b.buf, a.Value)
		b.buf.WriteByte('"')
	}
	if self {
		b.buf.WriteString("/>")
	} else {
		b.buf.WriteByte('>')
	}
}

// Close closes the most recently opened element. It panics if no
// element is open — a programming error in the calling mapper, not a
// condition that can arise from malformed SVG input.
func (b *Builder) Close() *Builder {
	if len(b.stack) == 0 {
		panic("xmlw: Close with no open element")
	}
	name := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.buf.WriteString("</")
	b.buf.WriteString(name)
	b.buf.WriteByte('>')
	return b
}

// Text appends escaped character data.
func (b *Builder) Text(s string) *Builder {
	escapeInto(&b.buf, s)
	return b
}

// Raw appends s verbatim, unescaped. Reserved for splicing in
// already-rendered fragments from another Builder — never for
// attacker-controlled strings.
func (b *Builder) Raw(s string) *Builder {
	b.buf.WriteString(s)
	return b
}

// String renders the accumulated document. It panics if any element is
// still open.
func (b *Builder) String() string {
	if len(b.stack) != 0 {
		panic("xmlw: String with unclosed elements: " + strings.Join(b.stack, ","))
	}
	return b.buf.String()
}

// Bytes is equivalent to []byte(b.String()).
func (b *Builder) Bytes() []byte {
	return []byte(b.String())
}

func escapeInto(buf *bytes.Buffer, s string) {
	// xml.EscapeText escapes &, <, >, ', ", \t, \n, \r and the bytes
	// that would otherwise produce invalid XML 1.0 text — exactly what
	// both attribute values and character data need, so both contexts
	// share one escaper rather than two hand-rolled ones.
	_ = xml.EscapeText(buf, []byte(s))
}

// EscapeAttr escapes s for use as a raw attribute value outside of a
// Builder (e.g. when formatting into a legacy fmt.Sprintf template
// during incremental migration). Prefer Builder.Open/A for new code.
func EscapeAttr(s string) string {
	var buf bytes.Buffer
	escapeInto(&buf, s)
	return buf.String()
}
