// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ooxml assembles mapper output (slide bodies and media parts)
// into a complete .pptx byte stream, per spec §4.6.
package ooxml

const (
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsOfficeDocRels  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCoreProps      = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC             = "http://purl.org/dc/elements/1.1/"
	nsDCTerms        = "http://purl.org/dc/terms/"
	nsDCMIType       = "http://purl.org/dc/dcmitype/"
	nsXSI            = "http://www.w3.org/2001/XMLSchema-instance"
	nsExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDocPropsVTypes = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
)

const (
	relTypeOfficeDocument = nsOfficeDocRels + "/officeDocument"
	relTypeSlideMaster    = nsOfficeDocRels + "/slideMaster"
	relTypeSlideLayout    = nsOfficeDocRels + "/slideLayout"
	relTypeSlide          = nsOfficeDocRels + "/slide"
	relTypeTheme          = nsOfficeDocRels + "/theme"
	relTypeImage          = nsOfficeDocRels + "/image"
	relTypeCoreProps      = nsOfficeDocRels + "/metadata/core-properties"
	relTypeExtendedProps  = nsOfficeDocRels + "/extended-properties"
)

// contentType returns the Default content type for a part's file
// extension, per spec §4.6: "One Default per used file extension (xml,
// rels, emf, png, jpeg)".
func contentType(ext string) (string, bool) {
	switch ext {
	case "rels":
		return "application/vnd.openxmlformats-package.relationships+xml", true
	case "xml":
		return "application/xml", true
	case "emf":
		return "image/x-emf", true
	case "png":
		return "image/png", true
	case "jpeg":
		return "image/jpeg", true
	default:
		return "", false
	}
}
