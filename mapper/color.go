// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"fmt"
	"math"

	"github.com/BramAlkema/svg2pptx-sub018/internal/xmlw"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
)

// srgbClr renders an <a:srgbClr> with an optional <a:alpha> child, the
// building block every fill/line/stop emission below shares.
func srgbClr(b *xmlw.Builder, rgb uint32, alpha float32) {
	hex := fmt.Sprintf("%06X", rgb&0xFFFFFF)
	if alpha >= 1 {
		b.SelfClose("a:srgbClr", xmlw.A("val", hex))
		return
	}
	b.Open("a:srgbClr", xmlw.A("val", hex))
	pct := int(alpha * 100000)
	if pct < 0 {
		pct = 0
	}
	b.SelfClose("a:alpha", xmlw.Af("val", "%d", pct))
	b.Close()
}

// permille converts a [0,1] gradient stop offset to the integer
// per-mille DrawingML expects (spec §4.5: "offset is emitted as
// integer per-mille (0-100000)").
func permille(offset float64) int {
	v := int(offset*100000 + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 100000 {
		v = 100000
	}
	return v
}

// writeGradStops renders the <a:gsLst> shared by linear and radial
// gradients.
func writeGradStops(b *xmlw.Builder, stops []ir.GradientStop) {
	b.Open("a:gsLst")
	for _, s := range stops {
		b.Open("a:gs", xmlw.Af("pos", "%d", permille(s.Offset)))
		srgbClr(b, s.RGB, s.Alpha)
		b.Close()
	}
	b.Close()
}

func spreadAttr(spread ir.SpreadMethod) string {
	switch spread {
	case ir.SpreadReflect:
		return "reflect"
	case ir.SpreadRepeat:
		return "tile"
	default:
		return "clamp"
	}
}

// writeFill renders the <a:solidFill>/<a:gradFill> subtree for a
// native-emitted Path's fill or stroke line. Pattern paints are not
// valid <a:solidFill>/<a:gradFill> content; writeFill emits nothing for
// them, and a pattern-filled path is routed upstream to an EMF tile
// fill instead (see writePatternPath in mapper.go).
func writeFill(b *xmlw.Builder, p *ir.Paint) {
	if p == nil {
		return
	}
	switch p.Kind() {
	case ir.PaintSolid:
		b.Open("a:solidFill")
		srgbClr(b, p.RGB, p.Alpha)
		b.Close()
	case ir.PaintLinearGradient:
		b.Open("a:gradFill", xmlw.A("flip", "none"), xmlw.A("rotWithShape", "1"))
		writeGradStops(b, p.Stops)
		angle := linearGradientAngle(*p)
		b.SelfClose("a:lin", xmlw.Af("ang", "%d", angle), xmlw.A("scaled", "1"))
		b.Close()
	case ir.PaintRadialGradient:
		b.Open("a:gradFill", xmlw.A("flip", "none"), xmlw.A("rotWithShape", "1"))
		writeGradStops(b, p.Stops)
		b.Open("a:path", xmlw.A("path", "circle"))
		b.SelfClose("a:fillToRect", xmlw.A("l", "50000"), xmlw.A("t", "50000"), xmlw.A("r", "50000"), xmlw.A("b", "50000"))
		b.Close()
		b.Close()
	}
}

// linearGradientAngle converts a LinearGradient's Start/End points to
// the 60,000ths-of-a-degree angle <a:lin ang> expects, measured
// clockwise from 3 o'clock as DrawingML defines it.
func linearGradientAngle(p ir.Paint) int {
	dx := p.End.X - p.Start.X
	dy := p.End.Y - p.Start.Y
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return int(deg*60000 + 0.5)
}
