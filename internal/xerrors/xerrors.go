// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xerrors provides small generic error-handling helpers for
// internal-bug paths only: programming errors the policy engine or
// packager discover about their own invariants (spec §7's "Policy-engine
// assertion failure ... Fatal (internal bug)" and "OOXML packager I/O
// failure ... Fatal"). Per-element SVG failures never use these — they
// flow through svcs.Diagnostic instead, so one bad element never
// poisons the whole slide (spec §7, §9).
package xerrors

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log logs err if non-nil and returns it unchanged. Intended usage:
//
//	return xerrors.Log(doSomethingInternal())
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 logs err if non-nil and returns v regardless. Intended usage:
//
//	v := xerrors.Log1(doSomethingInternal())
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must1 panics if err is non-nil, otherwise returns v. Reserved for
// invariants that, if violated, indicate a bug in this codebase rather
// than malformed input (malformed input is always a Diagnostic, never a
// panic).
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// CallerInfo returns the function name, file, and line of the function
// that called the function that called CallerInfo — i.e. the site that
// called Log or Log1.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}
