// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ooxml

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"

	"github.com/BramAlkema/svg2pptx-sub018/internal/xerrors"
	"github.com/BramAlkema/svg2pptx-sub018/mapper"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

type slideEntry struct {
	body   string
	media  map[string]string // local rId -> package-relative target ("../media/xxx.ext")
	timing string            // <p:timing> fragment, empty when the slide has no animations
}

// Packager accumulates rendered slides and their media, then assembles
// a single .pptx byte stream, per spec §4.6.
type Packager struct {
	ctx    *svcs.Context
	scale  mapper.Scale
	title  string
	slides []slideEntry

	mediaByHash map[string]string // content hash -> zip path ("ppt/media/xxx.ext")
	mediaBlobs  map[string][]byte // zip path -> data
}

// NewPackager returns a Packager targeting the given slide geometry.
func NewPackager(ctx *svcs.Context, scale mapper.Scale, title string) *Packager {
	return &Packager{
		ctx:         ctx,
		scale:       scale,
		title:       title,
		mediaByHash: make(map[string]string),
		mediaBlobs:  make(map[string][]byte),
	}
}

// AddSlide appends one mapper-rendered slide body and its media parts.
// Media already deduplicated by the mapper within its own slide is
// deduplicated again here across slides by the same content hash (spec
// §4.7: "the packager tracks (hash → media_path, rId) and reuses
// relationships when the same pattern appears on multiple elements").
func (p *Packager) AddSlide(spTreeBody string, media []mapper.MediaPart) {
	rels := make(map[string]string, len(media))
	for _, m := range media {
		rels[m.RelID] = "../" + p.internMedia(m)
	}
	p.slides = append(p.slides, slideEntry{body: spTreeBody, media: rels})
}

// SetTiming attaches a <p:timing> fragment (the animation compiler's
// PowerPoint timing-node tree, spec §4.8) to the most recently added
// slide. A no-op if no slide has been added yet.
func (p *Packager) SetTiming(timingXML string) {
	if len(p.slides) == 0 {
		return
	}
	p.slides[len(p.slides)-1].timing = timingXML
}

func (p *Packager) internMedia(m mapper.MediaPart) string {
	if path, ok := p.mediaByHash[m.Hash]; ok {
		return path
	}
	prefix := "image"
	if m.Ext == "emf" {
		prefix = "emf"
	}
	path := fmt.Sprintf("media/%s_%s.%s", prefix, m.Hash, m.Ext)
	p.mediaByHash[m.Hash] = path
	p.mediaBlobs["ppt/"+path] = m.Data
	return path
}

// Build renders every accumulated part into a deflated ZIP stream. It
// checks for cancellation before starting, the last of the stage
// boundaries spec §5 names ("after parser, preprocessor, IR
// construction, policy, mapper per slide, packager").
func (p *Packager) Build() ([]byte, error) {
	if p.ctx.Cancelled() {
		return nil, p.ctx.Ctx.Err()
	}
	sldW, sldH := p.scale.SlideWidthEMU, p.scale.SlideHeightEMU

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	exts := map[string]bool{"xml": true, "rels": true}
	for zipPath := range p.mediaBlobs {
		exts[extOf(zipPath)] = true
	}

	// [Content_Types].xml must be the first entry for some consumers
	// (spec §4.6 "ZIP emission").
	if err := writeEntry(zw, "[Content_Types].xml", contentTypesXML(exts, len(p.slides))); err != nil {
		return nil, xerrors.Log(err)
	}
	if err := writeEntry(zw, "_rels/.rels", rootRelsXML()); err != nil {
		return nil, xerrors.Log(err)
	}
	if err := writeEntry(zw, "docProps/core.xml", docPropsCoreXML(p.title)); err != nil {
		return nil, xerrors.Log(err)
	}
	if err := writeEntry(zw, "docProps/app.xml", docPropsAppXML(len(p.slides))); err != nil {
		return nil, xerrors.Log(err)
	}

	notesW, notesH := sldH, sldW // notes page is the slide's rotated counterpart
	if err := writeEntry(zw, "ppt/presentation.xml", presentationXML(len(p.slides), sldW, sldH, notesW, notesH)); err != nil {
		return nil, xerrors.Log(err)
	}
	if err := writeEntry(zw, "ppt/_rels/presentation.xml.rels", presentationRelsXML(len(p.slides))); err != nil {
		return nil, xerrors.Log(err)
	}
	if err := writeEntry(zw, "ppt/slideMasters/slideMaster1.xml", slideMasterXML()); err != nil {
		return nil, xerrors.Log(err)
	}
	if err := writeEntry(zw, "ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML()); err != nil {
		return nil, xerrors.Log(err)
	}
	if err := writeEntry(zw, "ppt/slideLayouts/slideLayout1.xml", slideLayoutXML()); err != nil {
		return nil, xerrors.Log(err)
	}
	if err := writeEntry(zw, "ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML()); err != nil {
		return nil, xerrors.Log(err)
	}
	if err := writeEntry(zw, "ppt/theme/theme1.xml", themeXML()); err != nil {
		return nil, xerrors.Log(err)
	}

	for i, s := range p.slides {
		n := i + 1
		if err := writeEntry(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRelsXML(s.media)); err != nil {
			return nil, xerrors.Log(err)
		}
		if err := writeEntry(zw, fmt.Sprintf("ppt/slides/slide%d.xml", n), slideXML(s.body, s.timing)); err != nil {
			return nil, xerrors.Log(err)
		}
	}

	// Media parts last; ordering is stable regardless of map iteration,
	// since every referencing .rels has already been written above.
	paths := make([]string, 0, len(p.mediaBlobs))
	for path := range p.mediaBlobs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		if err := writeEntry(zw, path, p.mediaBlobs[path]); err != nil {
			return nil, xerrors.Log(err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, xerrors.Log(fmt.Errorf("ooxml: closing zip writer: %w", err))
	}
	return buf.Bytes(), nil
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("ooxml: creating zip entry %s: %w", name, err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("ooxml: writing zip entry %s: %w", name, err)
	}
	return nil
}

func extOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return ""
}
