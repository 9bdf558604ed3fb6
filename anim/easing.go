// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

// easingPreset is a PowerPoint timing node's acceleration/deceleration
// pair, in units of 0.001% of the node's duration (spec §4.8 "PowerPoint
// exposes integer accel/decel in units of 0.001% of duration").
type easingPreset struct{ accel, decel int }

// easingTable is the "small table lookup" spec §4.8 asks for, mapping
// common named easing curves to PowerPoint's accel/decel pair.
var easingTable = map[string]easingPreset{
	"linear":      {0, 0},
	"ease":        {20000, 20000},
	"ease-in":     {50000, 0},
	"ease-out":    {0, 50000},
	"ease-in-out": {35000, 35000},
}

// easingFor derives a PowerPoint accel/decel pair for one animation,
// preferring keySplines when present and otherwise falling back on
// calcMode (spec §4.8 "Easing mapping").
func easingFor(a Animation) (accel, decel int) {
	if len(a.KeySplines) > 0 {
		return mapKeySplinesToEasing(a.KeySplines)
	}
	switch a.CalcMode {
	case CalcLinear:
		p := easingTable["linear"]
		return p.accel, p.decel
	case CalcDiscrete:
		return 0, 0
	case CalcSpline:
		p := easingTable["ease"]
		return p.accel, p.decel
	default:
		return 0, 0
	}
}

// mapKeySplinesToEasing approximates a keySplines control-point pair as
// an accel/decel ramp: the first control point's x handle measures how
// much of the segment is spent accelerating, the second's distance from
// 1 measures how much is spent decelerating.
func mapKeySplinesToEasing(splines []Spline) (accel, decel int) {
	sp := splines[0]
	return pctOf(sp.X1), pctOf(1 - sp.X2)
}

func pctOf(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return int(v*100000 + 0.5)
}
