// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svcs

import (
	"context"
	"log/slog"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// FontService resolves a requested font family to one available to the
// target renderer, using the font_fallback option (spec §6) and a
// Jaro-Winkler fuzzy match (wired per SPEC_FULL.md §2B) when no exact
// mapping is configured.
type FontService struct {
	fallback map[string]string
	known    []string
}

// NewFontService builds a FontService from the font_fallback option and
// a list of font families the target renderer is known to support.
func NewFontService(fallback map[string]string, known []string) *FontService {
	return &FontService{fallback: fallback, known: known}
}

// Resolve returns the font family to emit for a requested family.
func (f *FontService) Resolve(requested string) string {
	if requested == "" {
		return "Calibri"
	}
	if mapped, ok := f.fallback[requested]; ok {
		return mapped
	}
	for _, k := range f.known {
		if k == requested {
			return requested
		}
	}
	if len(f.known) == 0 {
		return requested
	}
	best := f.known[0]
	bestScore := 0.0
	jw := metrics.NewJaroWinkler()
	for _, k := range f.known {
		score := strutil.Similarity(requested, k, jw)
		if score > bestScore {
			bestScore = score
			best = k
		}
	}
	return best
}

// IsKnown reports whether family is, verbatim, one of the target
// renderer's known fonts — a strict membership check used by the
// policy engine's native-text-capable rule, as distinct from Resolve's
// best-effort fuzzy substitution used at mapping time.
func (f *FontService) IsKnown(family string) bool {
	for _, k := range f.known {
		if k == family {
			return true
		}
	}
	return false
}

// Context threads the conversion's request-scoped services through
// every pipeline stage explicitly (spec §9). A Context is created once
// per conversion request and owns no state shared with any other
// in-flight request (spec §5: "each request owns its IR, its EMF blob
// store, and its packager state — there is no shared mutable state
// between requests").
type Context struct {
	Ctx         context.Context
	Options     Options
	Fonts       *FontService
	Diagnostics Diagnostics
	Logger      *slog.Logger

	shapeIDCounter int
	relIDCounters  map[string]int
}

// NewContext builds a Context for one conversion request.
func NewContext(ctx context.Context, opts Options, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{
		Ctx:           ctx,
		Options:       opts.Normalize(),
		Fonts:         NewFontService(opts.FontFallback, defaultKnownFonts),
		Logger:        logger,
		relIDCounters: make(map[string]int),
	}
}

var defaultKnownFonts = []string{
	"Calibri", "Arial", "Times New Roman", "Segoe UI", "Verdana", "Georgia",
}

// Cancelled reports whether the request's context has been cancelled.
// Callers check this at each stage boundary named in spec §5
// ("after parser, preprocessor, IR construction, policy, mapper per
// slide, packager").
func (c *Context) Cancelled() bool {
	if c.Ctx == nil {
		return false
	}
	select {
	case <-c.Ctx.Done():
		return true
	default:
		return false
	}
}

// NextShapeID returns the next per-slide monotonically increasing shape
// ID, starting at 2 (spec §4.5: "1 is reserved for the spTree root").
// Callers reset this per slide via ResetShapeIDs.
func (c *Context) NextShapeID() int {
	if c.shapeIDCounter == 0 {
		c.shapeIDCounter = 1
	}
	c.shapeIDCounter++
	return c.shapeIDCounter
}

// ResetShapeIDs resets the per-slide shape ID counter; call once before
// mapping each new slide.
func (c *Context) ResetShapeIDs() { c.shapeIDCounter = 1 }

// NextRelID returns the next monotonic rId for the named part, starting
// at 1 (spec §4.6: "Per-part monotonic rId{n} starting at 1").
func (c *Context) NextRelID(part string) int {
	c.relIDCounters[part]++
	return c.relIDCounters[part]
}
