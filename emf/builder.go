// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emf

// EmfBuilder accumulates EMF records for one blob (spec §4.7:
// "EmfBuilder accumulates EMF records; finalize() returns the byte
// blob with a correctly patched header"). A builder is single-use:
// construct with New, call the drawing methods, then Finalize.
type EmfBuilder struct {
	bounds, frame Rect
	records       []record
	nextHandle    uint32
	maxHandle     uint32
}

// New returns a builder for one EMF blob with the given logical-unit
// bounds and 0.01mm device-unit frame rectangle.
func New(bounds, frame Rect) *EmfBuilder {
	return &EmfBuilder{bounds: bounds, frame: frame, nextHandle: 1}
}

// Point16 is a 16-bit signed coordinate pair, the point representation
// EMR_POLYGON16/EMR_POLYBEZIER16 use.
type Point16 struct{ X, Y int16 }

func clampInt16(v float64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// Point16FromFloat converts a floating logical-unit coordinate to the
// clamped 16-bit representation EMF point records carry.
func Point16FromFloat(x, y float64) Point16 {
	return Point16{X: clampInt16(x), Y: clampInt16(y)}
}

// CreatePen allocates a pen object (EMR_CREATEPEN) and returns its
// handle. style is one of the Windows PS_* constants (PenSolid /
// PenDash / PenNull, defined below); width is in logical units.
func (b *EmfBuilder) CreatePen(style uint32, width int32, rgb uint32) uint32 {
	payload := make([]byte, 20)
	putUint32(payload[0:4], b.nextHandle) // ihObject
	putUint32(payload[4:8], style)        // LogPen.lopnStyle
	putInt32(payload[8:12], width)        // LogPen.lopnWidth.x
	putInt32(payload[12:16], 0)           // LogPen.lopnWidth.y (unused)
	putUint32(payload[16:20], rgb)        // LogPen.lopnColor
	b.records = append(b.records, record{kind: EMR_CREATEPEN, payload: payload})
	return b.allocHandle()
}

// CreateBrushIndirect allocates a solid brush object
// (EMR_CREATEBRUSHINDIRECT) and returns its handle.
func (b *EmfBuilder) CreateBrushIndirect(rgb uint32) uint32 {
	payload := make([]byte, 16)
	putUint32(payload[0:4], b.nextHandle) // ihBrush
	putUint32(payload[4:8], 0)            // BrushStyle = BS_SOLID
	putUint32(payload[8:12], rgb)
	putUint32(payload[12:16], 0) // hatch style (unused for solid)
	b.records = append(b.records, record{kind: EMR_CREATEBRUSHINDIRECT, payload: payload})
	return b.allocHandle()
}

func (b *EmfBuilder) allocHandle() uint32 {
	h := b.nextHandle
	b.nextHandle++
	if h > b.maxHandle {
		b.maxHandle = h
	}
	return h
}

// SelectObject emits EMR_SELECTOBJECT for a previously created handle.
func (b *EmfBuilder) SelectObject(handle uint32) {
	payload := make([]byte, 4)
	putUint32(payload, handle)
	b.records = append(b.records, record{kind: EMR_SELECTOBJECT, payload: payload})
}

// Rectangle emits EMR_RECTANGLE.
func (b *EmfBuilder) Rectangle(r Rect) {
	payload := make([]byte, 16)
	putInt32(payload[0:4], r.Left)
	putInt32(payload[4:8], r.Top)
	putInt32(payload[8:12], r.Right)
	putInt32(payload[12:16], r.Bottom)
	b.records = append(b.records, record{kind: EMR_RECTANGLE, payload: payload})
}

// MoveToEx emits EMR_MOVETOEX, setting the current position.
func (b *EmfBuilder) MoveToEx(p Point16) {
	payload := make([]byte, 8)
	putInt32(payload[0:4], int32(p.X))
	putInt32(payload[4:8], int32(p.Y))
	b.records = append(b.records, record{kind: EMR_MOVETOEX, payload: payload})
}

// LineTo emits EMR_LINETO, drawing from the current position to p.
func (b *EmfBuilder) LineTo(p Point16) {
	payload := make([]byte, 8)
	putInt32(payload[0:4], int32(p.X))
	putInt32(payload[4:8], int32(p.Y))
	b.records = append(b.records, record{kind: EMR_LINETO, payload: payload})
}

// Polygon16 emits EMR_POLYGON16: a closed filled polygon over pts.
func (b *EmfBuilder) Polygon16(bounds Rect, pts []Point16) {
	b.records = append(b.records, polyPointRecord(EMR_POLYGON16, bounds, pts))
}

// PolyBezier16 emits EMR_POLYBEZIER16: a cubic-Bezier chain. pts must
// be 1 + 3*n points (start point, then three control/endpoints per
// curve segment), matching the GDI convention.
func (b *EmfBuilder) PolyBezier16(bounds Rect, pts []Point16) {
	b.records = append(b.records, polyPointRecord(EMR_POLYBEZIER16, bounds, pts))
}

func polyPointRecord(kind RecordType, bounds Rect, pts []Point16) record {
	payload := make([]byte, 20+4*len(pts))
	putInt32(payload[0:4], bounds.Left)
	putInt32(payload[4:8], bounds.Top)
	putInt32(payload[8:12], bounds.Right)
	putInt32(payload[12:16], bounds.Bottom)
	putUint32(payload[16:20], uint32(len(pts)))
	for i, p := range pts {
		off := 20 + i*4
		putInt16(payload[off:off+2], p.X)
		putInt16(payload[off+2:off+4], p.Y)
	}
	return record{kind: kind, payload: payload}
}

// Finalize renders the complete EMF blob: the header record followed
// by every accumulated record and a trailing EMR_EOF, with the
// header's total-size, record-count, and handle-count fields patched
// to their final values (spec §4.7).
func (b *EmfBuilder) Finalize() []byte {
	eof := record{kind: EMR_EOF, payload: make([]byte, 8)} // nPalEntries=0, offPalEntries=0(+sizeLast handled by caller's reader)
	all := append(append([]record(nil), b.records...), eof)

	var body []byte
	for _, r := range all {
		body = append(body, r.encode()...)
	}

	headerPlaceholder := buildHeader(b.bounds, b.frame, 0, 0, 0)
	totalSize := uint32(len(headerPlaceholder) + len(body))
	recordCount := uint32(len(all) + 1) // +1 for the header record itself
	handleCount := b.maxHandle + 1

	header := buildHeader(b.bounds, b.frame, totalSize, recordCount, handleCount)
	out := make([]byte, 0, len(header)+len(body))
	out = append(out, header...)
	out = append(out, body...)
	return out
}

// Pen styles (Windows PS_* subset used by the pattern tile library).
const (
	PenSolid uint32 = 0
	PenDash  uint32 = 1
	PenNull  uint32 = 5
)
