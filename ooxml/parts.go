// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ooxml

import (
	"sort"

	"github.com/BramAlkema/svg2pptx-sub018/internal/xmlw"
)

// generatorVersion is parsed through semver each time docProps/app.xml
// is rendered, so a malformed literal here panics the moment this
// package is exercised, rather than silently corrupting docProps/app.xml.
const generatorVersion = "1.0.0"

func contentTypesXML(exts map[string]bool, slideCount int) []byte {
	b := xmlw.New()
	b.Open("Types", xmlw.A("xmlns", nsContentTypes))
	for _, ext := range []string{"rels", "xml", "emf", "png", "jpeg"} {
		if !exts[ext] {
			continue
		}
		ct, _ := contentType(ext)
		b.SelfClose("Default", xmlw.A("Extension", ext), xmlw.A("ContentType", ct))
	}
	override := func(part, ct string) {
		b.SelfClose("Override", xmlw.A("PartName", part), xmlw.A("ContentType", ct))
	}
	override("/ppt/presentation.xml", "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml")
	override("/ppt/slideMasters/slideMaster1.xml", "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml")
	override("/ppt/slideLayouts/slideLayout1.xml", "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml")
	override("/ppt/theme/theme1.xml", "application/vnd.openxmlformats-officedocument.theme+xml")
	override("/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml")
	override("/docProps/app.xml", "application/vnd.openxmlformats-officedocument.extended-properties+xml")
	for i := 1; i <= slideCount; i++ {
		override(slidePartName(i), "application/vnd.openxmlformats-officedocument.presentationml.slide+xml")
	}
	b.Close()
	return b.Bytes()
}

func slidePartName(n int) string {
	return "/ppt/slides/slide" + itoa(n) + ".xml"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func rootRelsXML() []byte {
	b := xmlw.New()
	b.Open("Relationships", xmlw.A("xmlns", nsRelationships))
	b.SelfClose("Relationship", xmlw.A("Id", "rId1"), xmlw.A("Type", relTypeOfficeDocument), xmlw.A("Target", "ppt/presentation.xml"))
	b.SelfClose("Relationship", xmlw.A("Id", "rId2"), xmlw.A("Type", relTypeCoreProps), xmlw.A("Target", "docProps/core.xml"))
	b.SelfClose("Relationship", xmlw.A("Id", "rId3"), xmlw.A("Type", relTypeExtendedProps), xmlw.A("Target", "docProps/app.xml"))
	b.Close()
	return b.Bytes()
}

func presentationXML(slideCount int, sldW, sldH, notesW, notesH int64) []byte {
	b := xmlw.New()
	b.Open("p:presentation", xmlw.A("xmlns:a", nsDrawingML), xmlw.A("xmlns:r", nsOfficeDocRels), xmlw.A("xmlns:p", nsPresentationML))
	b.Open("p:sldMasterIdLst")
	b.SelfClose("p:sldMasterId", xmlw.A("id", "2147483648"), xmlw.A("r:id", "rId1"))
	b.Close()
	b.Open("p:sldIdLst")
	for i := 0; i < slideCount; i++ {
		b.SelfClose("p:sldId", xmlw.Af("id", "%d", 256+i), xmlw.Af("r:id", "rId%d", i+2))
	}
	b.Close()
	b.SelfClose("p:sldSz", xmlw.Af("cx", "%d", sldW), xmlw.Af("cy", "%d", sldH))
	b.SelfClose("p:notesSz", xmlw.Af("cx", "%d", notesW), xmlw.Af("cy", "%d", notesH))
	b.SelfClose("p:defaultTextStyle")
	b.Close()
	return b.Bytes()
}

func presentationRelsXML(slideCount int) []byte {
	b := xmlw.New()
	b.Open("Relationships", xmlw.A("xmlns", nsRelationships))
	b.SelfClose("Relationship", xmlw.A("Id", "rId1"), xmlw.A("Type", relTypeSlideMaster), xmlw.A("Target", "slideMasters/slideMaster1.xml"))
	for i := 0; i < slideCount; i++ {
		b.SelfClose("Relationship", xmlw.Af("Id", "rId%d", i+2), xmlw.A("Type", relTypeSlide), xmlw.Af("Target", "slides/slide%d.xml", i+1))
	}
	// Theme is referenced from the master's own rels, not presentation's,
	// matching writer_parts.go's layout (teacher grounding).
	b.Close()
	return b.Bytes()
}

func slideMasterXML() []byte {
	b := xmlw.New()
	b.Open("p:sldMaster", xmlw.A("xmlns:a", nsDrawingML), xmlw.A("xmlns:r", nsOfficeDocRels), xmlw.A("xmlns:p", nsPresentationML))
	writeEmptySpTree(b)
	b.SelfClose("p:clrMap", xmlw.A("bg1", "lt1"), xmlw.A("tx1", "dk1"), xmlw.A("bg2", "lt2"), xmlw.A("tx2", "dk2"),
		xmlw.A("accent1", "accent1"), xmlw.A("accent2", "accent2"), xmlw.A("accent3", "accent3"),
		xmlw.A("accent4", "accent4"), xmlw.A("accent5", "accent5"), xmlw.A("accent6", "accent6"),
		xmlw.A("hlink", "hlink"), xmlw.A("folHlink", "folHlink"))
	b.Open("p:sldLayoutIdLst")
	b.SelfClose("p:sldLayoutId", xmlw.A("id", "2147483649"), xmlw.A("r:id", "rId1"))
	b.Close()
	b.Close()
	return b.Bytes()
}

func slideMasterRelsXML() []byte {
	b := xmlw.New()
	b.Open("Relationships", xmlw.A("xmlns", nsRelationships))
	b.SelfClose("Relationship", xmlw.A("Id", "rId1"), xmlw.A("Type", relTypeSlideLayout), xmlw.A("Target", "../slideLayouts/slideLayout1.xml"))
	b.SelfClose("Relationship", xmlw.A("Id", "rId2"), xmlw.A("Type", relTypeTheme), xmlw.A("Target", "../theme/theme1.xml"))
	b.Close()
	return b.Bytes()
}

func slideLayoutXML() []byte {
	b := xmlw.New()
	b.Open("p:sldLayout", xmlw.A("xmlns:a", nsDrawingML), xmlw.A("xmlns:r", nsOfficeDocRels), xmlw.A("xmlns:p", nsPresentationML),
		xmlw.A("type", "blank"), xmlw.A("preserve", "1"))
	b.Open("p:cSld", xmlw.A("name", "Blank"))
	writeEmptySpTreeBody(b)
	b.Close()
	b.Open("p:clrMapOvr")
	b.SelfClose("a:masterClrMapping")
	b.Close()
	b.Close()
	return b.Bytes()
}

func slideLayoutRelsXML() []byte {
	b := xmlw.New()
	b.Open("Relationships", xmlw.A("xmlns", nsRelationships))
	b.SelfClose("Relationship", xmlw.A("Id", "rId1"), xmlw.A("Type", relTypeSlideMaster), xmlw.A("Target", "../slideMasters/slideMaster1.xml"))
	b.Close()
	return b.Bytes()
}

// writeEmptySpTree wraps writeEmptySpTreeBody in the <p:cSld> shell
// slideMaster1.xml needs (slideLayout/slide wrap it differently, so
// those call writeEmptySpTreeBody directly).
func writeEmptySpTree(b *xmlw.Builder) {
	b.Open("p:cSld")
	writeEmptySpTreeBody(b)
	b.Close()
}

func writeEmptySpTreeBody(b *xmlw.Builder) {
	b.Open("p:spTree")
	b.Open("p:nvGrpSpPr")
	b.SelfClose("p:cNvPr", xmlw.A("id", "1"), xmlw.A("name", ""))
	b.SelfClose("p:cNvGrpSpPr")
	b.SelfClose("p:nvPr")
	b.Close()
	b.Open("p:grpSpPr")
	b.Open("a:xfrm")
	b.SelfClose("a:off", xmlw.A("x", "0"), xmlw.A("y", "0"))
	b.SelfClose("a:ext", xmlw.A("cx", "0"), xmlw.A("cy", "0"))
	b.Close()
	b.Close()
	b.Close() // p:spTree
}

// slideXML wraps a mapper-rendered spTree body (the inner children only)
// into the full <p:sld> document.
func slideXML(spTreeBody, timingXML string) []byte {
	b := xmlw.New()
	b.Open("p:sld", xmlw.A("xmlns:a", nsDrawingML), xmlw.A("xmlns:r", nsOfficeDocRels), xmlw.A("xmlns:p", nsPresentationML))
	b.Open("p:cSld")
	b.Open("p:spTree")
	b.Open("p:nvGrpSpPr")
	b.SelfClose("p:cNvPr", xmlw.A("id", "1"), xmlw.A("name", ""))
	b.SelfClose("p:cNvGrpSpPr")
	b.SelfClose("p:nvPr")
	b.Close()
	b.Open("p:grpSpPr")
	b.Open("a:xfrm")
	b.SelfClose("a:off", xmlw.A("x", "0"), xmlw.A("y", "0"))
	b.SelfClose("a:ext", xmlw.A("cx", "0"), xmlw.A("cy", "0"))
	b.Close()
	b.Close()
	b.Raw(spTreeBody)
	b.Close() // p:spTree
	b.Close() // p:cSld
	b.Open("p:clrMapOvr")
	b.SelfClose("a:masterClrMapping")
	b.Close()
	if timingXML != "" {
		b.Raw(timingXML)
	}
	b.Close() // p:sld
	return b.Bytes()
}

func slideRelsXML(media map[string]string) []byte {
	rIDs := make([]string, 0, len(media))
	for rID := range media {
		rIDs = append(rIDs, rID)
	}
	sort.Strings(rIDs)

	// The layout takes the lowest rId the slide's media did not claim.
	layoutID := "rId1"
	for n := 2; media[layoutID] != ""; n++ {
		layoutID = "rId" + itoa(n)
	}

	b := xmlw.New()
	b.Open("Relationships", xmlw.A("xmlns", nsRelationships))
	b.SelfClose("Relationship", xmlw.A("Id", layoutID), xmlw.A("Type", relTypeSlideLayout), xmlw.A("Target", "../slideLayouts/slideLayout1.xml"))
	for _, rID := range rIDs {
		b.SelfClose("Relationship", xmlw.A("Id", rID), xmlw.A("Type", relTypeImage), xmlw.A("Target", media[rID]))
	}
	b.Close()
	return b.Bytes()
}

func themeXML() []byte {
	b := xmlw.New()
	b.Open("a:theme", xmlw.A("xmlns:a", nsDrawingML), xmlw.A("name", "Office Theme"))
	b.Open("a:themeElements")
	b.Open("a:clrScheme", xmlw.A("name", "Office"))
	clr := func(tag, kind, val string) {
		b.Open(tag)
		if kind == "sys" {
			b.SelfClose("a:sysClr", xmlw.A("val", val), xmlw.A("lastClr", "000000"))
		} else {
			b.SelfClose("a:srgbClr", xmlw.A("val", val))
		}
		b.Close()
	}
	clr("a:dk1", "sys", "windowText")
	clr("a:lt1", "sys", "window")
	clr("a:dk2", "srgb", "44546A")
	clr("a:lt2", "srgb", "E7E6E6")
	clr("a:accent1", "srgb", "4472C4")
	clr("a:accent2", "srgb", "ED7D31")
	clr("a:accent3", "srgb", "A5A5A5")
	clr("a:accent4", "srgb", "FFC000")
	clr("a:accent5", "srgb", "5B9BD5")
	clr("a:accent6", "srgb", "70AD47")
	clr("a:hlink", "srgb", "0563C1")
	clr("a:folHlink", "srgb", "954F72")
	b.Close() // a:clrScheme
	b.Open("a:fontScheme", xmlw.A("name", "Office"))
	b.Open("a:majorFont")
	b.SelfClose("a:latin", xmlw.A("typeface", "Calibri Light"))
	b.Close()
	b.Open("a:minorFont")
	b.SelfClose("a:latin", xmlw.A("typeface", "Calibri"))
	b.Close()
	b.Close() // a:fontScheme
	b.SelfClose("a:fmtScheme", xmlw.A("name", "Office"))
	b.Close() // a:themeElements
	b.SelfClose("a:objectDefaults")
	b.SelfClose("a:extraClrSchemeLst")
	b.Close() // a:theme
	return b.Bytes()
}

func docPropsCoreXML(title string) []byte {
	b := xmlw.New()
	b.Open("cp:coreProperties", xmlw.A("xmlns:cp", nsCoreProps), xmlw.A("xmlns:dc", nsDC),
		xmlw.A("xmlns:dcterms", nsDCTerms), xmlw.A("xmlns:dcmitype", nsDCMIType), xmlw.A("xmlns:xsi", nsXSI))
	b.Open("dc:title")
	b.Text(title)
	b.Close()
	b.Open("dc:creator")
	b.Text("svg2pptx")
	b.Close()
	b.Close()
	return b.Bytes()
}

func docPropsAppXML(slideCount int) []byte {
	b := xmlw.New()
	b.Open("Properties", xmlw.A("xmlns", nsExtendedProps), xmlw.A("xmlns:vt", nsDocPropsVTypes))
	b.Open("Application")
	b.Text("svg2pptx " + resolvedGeneratorVersion())
	b.Close()
	b.Open("Slides")
	b.Text(itoa(slideCount))
	b.Close()
	b.Close()
	return b.Bytes()
}
