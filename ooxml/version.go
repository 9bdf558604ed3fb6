// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ooxml

import (
	"github.com/Masterminds/semver/v3"

	"github.com/BramAlkema/svg2pptx-sub018/internal/xerrors"
)

// resolvedGeneratorVersion parses generatorVersion through semver and
// re-renders its canonical form, so docProps/app.xml's generator string
// is stamped from a validated version rather than an unchecked literal
// (SPEC_FULL §4.6A: "the semver-stamped generator string").
func resolvedGeneratorVersion() string {
	v := xerrors.Must1(semver.NewVersion(generatorVersion))
	return v.String()
}
