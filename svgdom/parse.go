// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgdom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Parse decodes raw SVG bytes into a Document. It uses a
// charset-tolerant decoder (golang.org/x/net/html/charset), matching
// the teacher's colors/gradient/parse.go convention of wiring
// charset.NewReaderLabel as the decoder's CharsetReader so documents
// declaring a non-UTF-8 encoding still parse.
func Parse(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	dec.Strict = false

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("svgdom: parse: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local, Attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				el.Parent = parent
				parent.Children = append(parent.Children, el)
			} else {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("svgdom: parse: unbalanced end element %q", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				cur := stack[len(stack)-1]
				cur.CharData += string(t)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("svgdom: parse: no root element")
	}
	if strings.ToLower(root.Name) != "svg" {
		return nil, fmt.Errorf("svgdom: parse: root element is %q, not svg", root.Name)
	}
	return &Document{Root: root}, nil
}
