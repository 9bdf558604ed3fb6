// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConvertsFileAndExitsSuccess(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.svg")
	out := filepath.Join(dir, "out.pptx")
	require.NoError(t, os.WriteFile(in, []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
		<rect width="10" height="10" fill="#abc"/>
	</svg>`), 0o644))

	code := run([]string{in, out})
	assert.Equal(t, exitSuccess, code)
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunMissingInputExitsInputError(t *testing.T) {
	dir := t.TempDir()
	code := run([]string{filepath.Join(dir, "ghost.svg"), filepath.Join(dir, "out.pptx")})
	assert.Equal(t, exitInputError, code)
}

func TestRunWrongArgCountExitsInputError(t *testing.T) {
	code := run([]string{"onlyone"})
	assert.Equal(t, exitInputError, code)
}

func TestRunMalformedSVGExitsConvertError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.svg")
	out := filepath.Join(dir, "out.pptx")
	require.NoError(t, os.WriteFile(in, []byte("not xml at all <<<"), 0o644))

	code := run([]string{in, out})
	assert.Equal(t, exitConvertErr, code)
}

func TestRunHonorsProfileFlag(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.svg")
	out := filepath.Join(dir, "out.pptx")
	require.NoError(t, os.WriteFile(in, []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
		<rect width="10" height="10" fill="#abc"/>
	</svg>`), 0o644))

	code := run([]string{"--profile", "quality", in, out})
	assert.Equal(t, exitSuccess, code)
}

func TestRunWritesOutputErrorOnUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.svg")
	require.NoError(t, os.WriteFile(in, []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
		<rect width="10" height="10" fill="#abc"/>
	</svg>`), 0o644))

	code := run([]string{in, filepath.Join(dir, "no-such-dir", "out.pptx")})
	assert.Equal(t, exitOutputErr, code)
}
