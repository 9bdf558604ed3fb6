// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"github.com/BramAlkema/svg2pptx-sub018/geom"
	"github.com/BramAlkema/svg2pptx-sub018/internal/xmlw"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
)

// writeGroup emits a <p:grpSp> and recurses into its children with the
// group's transform folded into accum. Spec §4.5 calls for the
// group's own <a:xfrm> to carry "the flattened child offset" — here
// the flattening happens earlier, at the point each descendant's own
// geometry is emitted (writeNativePath bakes the full accumulated
// matrix, including any skew, directly into its points; writeTextFrame
// and writeImage approximate it via an <a:xfrm rot> plus scaled
// extents), so the group wrapper itself carries an identity xfrm: its
// job is clustering for z-order, not coordinate translation.
func (m *Mapper) writeGroup(b *xmlw.Builder, g *ir.Group, accum geom.Matrix) {
	id := m.ctx.NextShapeID()
	m.shapeIDs[g.ID()] = id
	childAccum := accum
	if g.Transform != nil {
		childAccum = accum.Mul(*g.Transform)
	}

	b.Open("p:grpSp")
	b.Open("p:nvGrpSpPr")
	b.SelfClose("p:cNvPr", xmlw.Af("id", "%d", id), xmlw.Af("name", "Group %d", id))
	b.SelfClose("p:cNvGrpSpPr")
	b.SelfClose("p:nvPr")
	b.Close() // p:nvGrpSpPr

	b.Open("p:grpSpPr")
	b.Open("a:xfrm")
	b.SelfClose("a:off", xmlw.A("x", "0"), xmlw.A("y", "0"))
	b.SelfClose("a:ext", xmlw.A("cx", "0"), xmlw.A("cy", "0"))
	b.SelfClose("a:chOff", xmlw.A("x", "0"), xmlw.A("y", "0"))
	b.SelfClose("a:chExt", xmlw.A("cx", "0"), xmlw.A("cy", "0"))
	b.Close()
	b.Close() // p:grpSpPr

	for _, child := range g.Children {
		m.writeNode(b, child, childAccum)
	}

	b.Close() // p:grpSp
}
