// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emf synthesizes Enhanced Metafile blobs used as the
// vector-compatible fallback for SVG patterns and filter effects
// PowerPoint cannot express natively (spec §4.7). No example repo in
// the pack emits EMF, so the record layout follows spec §4.7's
// field-level description directly rather than any teacher file.
package emf

import "encoding/binary"

// RecordType names an EMR record kind, the subset named in spec §4.7.
type RecordType uint32

const (
	EMR_HEADER                RecordType = 1
	EMR_POLYBEZIER16          RecordType = 85
	EMR_POLYGON16             RecordType = 86
	EMR_MOVETOEX              RecordType = 27
	EMR_LINETO                RecordType = 54
	EMR_RECTANGLE             RecordType = 43
	EMR_SELECTOBJECT          RecordType = 37
	EMR_CREATEPEN             RecordType = 38
	EMR_CREATEBRUSHINDIRECT   RecordType = 39
	EMR_EOF                   RecordType = 14
)

// record is one little-endian EMR record: {type:u32, size:u32,
// payload:[u8]}. size includes the 8-byte header and is always a
// multiple of 4 (spec §4.7), enforced here by zero-padding payload.
type record struct {
	kind    RecordType
	payload []byte
}

func (r record) encode() []byte {
	payload := r.payload
	if pad := len(payload) % 4; pad != 0 {
		payload = append(append([]byte(nil), payload...), make([]byte, 4-pad)...)
	}
	size := uint32(8 + len(payload))
	buf := make([]byte, 8, 8+len(payload))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(r.kind))
	binary.LittleEndian.PutUint32(buf[4:8], size)
	buf = append(buf, payload...)
	return buf
}

func putInt32(b []byte, v int32)   { binary.LittleEndian.PutUint32(b, uint32(v)) }
func putUint32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
func putInt16(b []byte, v int16)   { binary.LittleEndian.PutUint16(b, uint16(v)) }
