// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapper

import (
	"fmt"

	"github.com/BramAlkema/svg2pptx-sub018/filterfx"
	"github.com/BramAlkema/svg2pptx-sub018/ir"
)

// filterEffects resolves ref against the scene's filter table and
// lowers it to a DrawingML fragment, or a zero Result if the node
// carries no filter or the reference doesn't resolve.
func (m *Mapper) filterEffects(ref *ir.FilterRef, node ir.Node) filterfx.Result {
	if ref == nil {
		return filterfx.Result{}
	}
	effects, ok := m.filters[ref.ID]
	if !ok {
		return filterfx.Result{}
	}
	return filterfx.Lower(effects, &m.ctx.Diagnostics, fmt.Sprintf("node#%d", node.ID()))
}
