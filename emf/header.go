// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emf

// deviceDPI is the fixed device resolution spec §4.7 requires headers
// to declare.
const deviceDPI = 96

// signature is the ASCII marker spec §4.7 requires in the header
// record, padded to 8 bytes.
var signature = [8]byte{'E', 'N', 'H', 'M', 'E', 'T', 'A', ' '}

// Rect is an integer rectangle, used for both the logical-unit bounds
// rectangle and the 0.01mm device-unit frame rectangle spec §4.7
// names separately.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// buildHeader renders the EMR_HEADER record for the given bounds
// (logical units) and frame (0.01mm device units). bytesTotal,
// recordCount, and handleCount are filled in by finalize once the
// whole blob is known, per spec §4.7 ("finalize() returns the byte
// blob with a correctly patched header").
func buildHeader(bounds, frame Rect, bytesTotal, recordCount, handleCount uint32) []byte {
	payload := make([]byte, 64)
	putInt32(payload[0:4], bounds.Left)
	putInt32(payload[4:8], bounds.Top)
	putInt32(payload[8:12], bounds.Right)
	putInt32(payload[12:16], bounds.Bottom)
	putInt32(payload[16:20], frame.Left)
	putInt32(payload[20:24], frame.Top)
	putInt32(payload[24:28], frame.Right)
	putInt32(payload[28:32], frame.Bottom)
	copy(payload[32:40], signature[:])
	putUint32(payload[40:44], 0x00010000) // nVersion
	putUint32(payload[44:48], bytesTotal)
	putUint32(payload[48:52], recordCount)
	putUint32(payload[52:56], handleCount)
	putUint32(payload[56:60], deviceDPI)
	putUint32(payload[60:64], deviceDPI)
	return record{kind: EMR_HEADER, payload: payload}.encode()
}
