// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgdom

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// circleK is the cubic-Bezier magnitude that approximates a quarter
// circle of radius 1 to within ~0.027% (spec §4.2 step 2).
const circleK = 0.5522847498

// convertShapes implements spec §4.2 step 2 ("shape-to-path"): it
// rewrites <rect>, <circle>, <ellipse>, <line>, <polyline>, <polygon>
// elements in place into equivalent <path d="..."> elements, retaining
// the original geometry attributes as `data-*` attributes for
// round-trip debugging.
func convertShapes(e *Element) error {
	for i, c := range e.Children {
		d, dataAttrs, err := shapeToPathD(c)
		if err != nil {
			return fmt.Errorf("svgdom: %s: %w", c.Name, err)
		}
		if d != "" {
			newEl := &Element{Name: "path", Parent: e}
			for _, a := range c.Attrs {
				if isGeometryAttr(c.Name, a.Name.Local) {
					newEl.Attrs = append(newEl.Attrs, xml.Attr{
						Name:  xml.Name{Local: "data-" + c.Name + "-" + a.Name.Local},
						Value: a.Value,
					})
					continue
				}
				newEl.Attrs = append(newEl.Attrs, a)
			}
			newEl.Attrs = append(newEl.Attrs, dataAttrs...)
			newEl.SetAttr("d", d)
			newEl.Children = c.Children
			for _, cc := range newEl.Children {
				cc.Parent = newEl
			}
			e.Children[i] = newEl
			c = newEl
		}
		if err := convertShapes(c); err != nil {
			return err
		}
	}
	return nil
}

func isGeometryAttr(shape, name string) bool {
	switch shape {
	case "rect":
		return name == "x" || name == "y" || name == "width" || name == "height" || name == "rx" || name == "ry"
	case "circle":
		return name == "cx" || name == "cy" || name == "r"
	case "ellipse":
		return name == "cx" || name == "cy" || name == "rx" || name == "ry"
	case "line":
		return name == "x1" || name == "y1" || name == "x2" || name == "y2"
	case "polyline", "polygon":
		return name == "points"
	}
	return false
}

// shapeToPathD returns the equivalent `d` string for a shape element,
// and any extra attributes to add to the path; every converter here
// returns none, since convertShapes itself renames the original
// geometry attributes to data-*. A return of ("", nil, nil) means e is
// not a shape element, or is a rect, circle or ellipse with a
// non-positive size.
func shapeToPathD(e *Element) (string, []xml.Attr, error) {
	switch e.Name {
	case "rect":
		return rectToPath(e)
	case "circle":
		return circleToPath(e)
	case "ellipse":
		return ellipseToPath(e)
	case "line":
		return lineToPath(e)
	case "polyline":
		return polyToPath(e, false)
	case "polygon":
		return polyToPath(e, true)
	}
	return "", nil, nil
}

func numAttr(e *Element, name string, def float64) (float64, error) {
	v := e.Attr(name)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("attribute %q: %w", name, err)
	}
	return f, nil
}

func rectToPath(e *Element) (string, []xml.Attr, error) {
	x, err := numAttr(e, "x", 0)
	if err != nil {
		return "", nil, err
	}
	y, err := numAttr(e, "y", 0)
	if err != nil {
		return "", nil, err
	}
	w, err := numAttr(e, "width", 0)
	if err != nil {
		return "", nil, err
	}
	h, err := numAttr(e, "height", 0)
	if err != nil {
		return "", nil, err
	}
	if w <= 0 || h <= 0 {
		return "", nil, nil
	}
	rx, err := numAttr(e, "rx", -1)
	if err != nil {
		return "", nil, err
	}
	ry, err := numAttr(e, "ry", -1)
	if err != nil {
		return "", nil, err
	}
	if rx < 0 && ry >= 0 {
		rx = ry
	}
	if ry < 0 && rx >= 0 {
		ry = rx
	}
	if rx <= 0 || ry <= 0 {
		d := fmt.Sprintf("M %g %g L %g %g L %g %g L %g %g Z",
			x, y, x+w, y, x+w, y+h, x, y+h)
		return d, nil, nil
	}
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	kx, ky := rx*circleK, ry*circleK
	d := fmt.Sprintf(
		"M %g %g L %g %g C %g %g %g %g %g %g "+
			"L %g %g C %g %g %g %g %g %g "+
			"L %g %g C %g %g %g %g %g %g "+
			"L %g %g C %g %g %g %g %g %g Z",
		x+rx, y,
		x+w-rx, y,
		x+w-rx+kx, y, x+w, y+ry-ky, x+w, y+ry,
		x+w, y+h-ry,
		x+w, y+h-ry+ky, x+w-rx+kx, y+h, x+w-rx, y+h,
		x+rx, y+h,
		x+rx-kx, y+h, x, y+h-ry+ky, x, y+h-ry,
		x, y+ry,
		x, y+ry-ky, x+rx-kx, y, x+rx, y,
	)
	return d, nil, nil
}

func circleToPath(e *Element) (string, []xml.Attr, error) {
	cx, err := numAttr(e, "cx", 0)
	if err != nil {
		return "", nil, err
	}
	cy, err := numAttr(e, "cy", 0)
	if err != nil {
		return "", nil, err
	}
	r, err := numAttr(e, "r", 0)
	if err != nil {
		return "", nil, err
	}
	if r <= 0 {
		return "", nil, nil
	}
	return ellipseD(cx, cy, r, r), nil, nil
}

func ellipseToPath(e *Element) (string, []xml.Attr, error) {
	cx, err := numAttr(e, "cx", 0)
	if err != nil {
		return "", nil, err
	}
	cy, err := numAttr(e, "cy", 0)
	if err != nil {
		return "", nil, err
	}
	rx, err := numAttr(e, "rx", 0)
	if err != nil {
		return "", nil, err
	}
	ry, err := numAttr(e, "ry", 0)
	if err != nil {
		return "", nil, err
	}
	if rx <= 0 || ry <= 0 {
		return "", nil, nil
	}
	return ellipseD(cx, cy, rx, ry), nil, nil
}

func ellipseD(cx, cy, rx, ry float64) string {
	kx, ky := rx*circleK, ry*circleK
	return fmt.Sprintf(
		"M %g %g "+
			"C %g %g %g %g %g %g "+
			"C %g %g %g %g %g %g "+
			"C %g %g %g %g %g %g "+
			"C %g %g %g %g %g %g Z",
		cx+rx, cy,
		cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry,
		cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy,
		cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry,
		cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy,
	)
}

func lineToPath(e *Element) (string, []xml.Attr, error) {
	x1, err := numAttr(e, "x1", 0)
	if err != nil {
		return "", nil, err
	}
	y1, err := numAttr(e, "y1", 0)
	if err != nil {
		return "", nil, err
	}
	x2, err := numAttr(e, "x2", 0)
	if err != nil {
		return "", nil, err
	}
	y2, err := numAttr(e, "y2", 0)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("M %g %g L %g %g", x1, y1, x2, y2), nil, nil
}

func polyToPath(e *Element, closed bool) (string, []xml.Attr, error) {
	pts := e.Attr("points")
	fields := strings.FieldsFunc(pts, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
	if len(fields)%2 != 0 || len(fields) == 0 {
		return "", nil, nil
	}
	var b strings.Builder
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return "", nil, fmt.Errorf("points: %w", err)
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return "", nil, fmt.Errorf("points: %w", err)
		}
		if i == 0 {
			fmt.Fprintf(&b, "M %g %g", x, y)
		} else {
			fmt.Fprintf(&b, " L %g %g", x, y)
		}
	}
	if closed {
		b.WriteString(" Z")
	}
	return b.String(), nil, nil
}
