// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgdom

import "github.com/BramAlkema/svg2pptx-sub018/geom"

const svgNamespace = "http://www.w3.org/2000/svg"

// Preprocess runs spec §4.2's five normalization steps, in order, over
// a parsed Document and returns a NormalizedDoc. Preprocess is
// idempotent: running it again on its own output is a no-op, since
// each step either already holds (identity transforms, explicit
// viewBox) or has nothing left to do (no remaining shape elements).
func Preprocess(doc *Document) (*NormalizedDoc, error) {
	root := doc.Root

	// 1. Namespace resolution: Parse already stripped prefixes to local
	// names; attach the SVG namespace to the root if absent.
	if root.Attr("xmlns") == "" {
		root.SetAttr("xmlns", svgNamespace)
	}

	// 2. Shape-to-path.
	if err := convertShapes(root); err != nil {
		return nil, err
	}

	// 3. Transform flattening.
	if err := flattenTransforms(root, geom.Identity); err != nil {
		return nil, err
	}
	root.RemoveAttr("transform")

	// 4. Identity removal: empty <g> wrappers left behind by shape
	// conversion or transform flattening are pruned.
	removeEmptyGroups(root)

	// 5. Viewport normalization.
	vb, w, h, err := resolveViewport(root)
	if err != nil {
		return nil, err
	}

	return &NormalizedDoc{Root: root, ViewBox: vb, Width: w, Height: h}, nil
}

// removeEmptyGroups prunes <g> elements with no children and no
// meaningful remaining attributes (id/class are kept as potential
// targets of external references and are not by themselves
// "meaningful" for rendering, so a <g id="x"/> with nothing else is
// still pruned).
func removeEmptyGroups(e *Element) {
	kept := e.Children[:0]
	for _, c := range e.Children {
		removeEmptyGroups(c)
		if c.Name == "g" && len(c.Children) == 0 {
			continue
		}
		kept = append(kept, c)
	}
	e.Children = kept
}
