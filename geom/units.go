// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit discriminates the physical unit a Length was written in,
// mirroring the teacher units package's Value/Units pairing
// (units/units_test.go: "Value{1.0, un}", "StringToValue").
type Unit int

const (
	UnitPx Unit = iota
	UnitIn
	UnitCm
	UnitMm
	UnitPt
	UnitPc
	UnitPercent
	UnitNone // bare number, treated identically to px
)

// pxPerUnit holds the CSS-defined px-equivalence for absolute units
// (96 CSS px per inch).
var pxPerUnit = map[Unit]float64{
	UnitPx:   1,
	UnitIn:   96,
	UnitCm:   96 / 2.54,
	UnitMm:   96 / 25.4,
	UnitPt:   96.0 / 72.0,
	UnitPc:   16,
	UnitNone: 1,
}

// Length is a parsed SVG/CSS length, e.g. "12.5", "3in", "50%".
type Length struct {
	Val  float64
	Unit Unit
}

var unitSuffixes = []struct {
	suffix string
	unit   Unit
}{
	{"px", UnitPx},
	{"in", UnitIn},
	{"cm", UnitCm},
	{"mm", UnitMm},
	{"pt", UnitPt},
	{"pc", UnitPc},
	{"%", UnitPercent},
}

// ParseLength parses a length string per the SVG presentation-attribute
// grammar. A bare number has UnitNone, numerically equivalent to px.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Length{}, fmt.Errorf("geom: empty length")
	}
	for _, u := range unitSuffixes {
		if strings.HasSuffix(s, u.suffix) {
			numPart := strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			v, err := strconv.ParseFloat(numPart, 64)
			if err != nil {
				return Length{}, fmt.Errorf("geom: invalid length %q: %w", s, err)
			}
			return Length{Val: v, Unit: u.unit}, nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Length{}, fmt.Errorf("geom: invalid length %q: %w", s, err)
	}
	return Length{Val: v, Unit: UnitNone}, nil
}

// Px resolves the length to CSS pixels. percentBasis is the reference
// dimension (e.g. viewport width) used when Unit is UnitPercent.
func (l Length) Px(percentBasis float64) float64 {
	if l.Unit == UnitPercent {
		return l.Val / 100 * percentBasis
	}
	factor, ok := pxPerUnit[l.Unit]
	if !ok {
		factor = 1
	}
	return l.Val * factor
}
