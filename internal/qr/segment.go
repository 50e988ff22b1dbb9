/*
 * Copyright © 2026, panicqr authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 * Modeled after https://github.com/grkuntzmd/qrcodegen (qrsegment.go)'s
 * QRSegment, reduced to a borrowed-pointer view (no owned Data slice, no
 * allocation) and to the two modes spec.md §3/§4.3 require: byte and the
 * custom 13-bit numeric repacking.
 */

package qr

// Segment is a view over caller-owned bytes tagged with a mode. It owns
// nothing; the backing array must outlive any encode call that uses it.
type Segment struct {
	kind segKind
	data []byte
}

// ByteSegment wraps data for 8-bit byte mode: one segment character per
// input byte, emitted as-is.
func ByteSegment(data []byte) Segment {
	return Segment{kind: kindByte, data: data}
}

// NumericSegment wraps data for the custom numeric repacking described in
// spec.md §4.3: the buffer is read as a bit stream, 13 bits at a time, each
// group reinterpreted as up to a 4-digit decimal number and re-emitted
// using the standard QR numeric encoding rule.
func NumericSegment(data []byte) Segment {
	return Segment{kind: kindNumeric, data: data}
}

// numChars returns the value placed in the segment's character-count
// field.
func (s Segment) numChars() int {
	switch s.kind {
	case kindByte:
		return len(s.data)
	case kindNumeric:
		return numericCharCount(len(s.data) * 8)
	default:
		panic("qr: unknown segment kind")
	}
}

// numericCharCount computes the character-count field for a numeric
// segment spanning dataBits bits of source, per spec.md §4.3: 4 digits per
// full 13-bit group, plus the digit count of a non-empty trailing group.
func numericCharCount(dataBits int) int {
	full := dataBits / 13
	rem := dataBits % 13
	trailing := 0
	if rem != 0 {
		trailing = (rem + 1) / 3
	}
	return 4*full + trailing
}

// takeBits13 reads up to 13 bits from data starting at bitOffset,
// MSB-first across the whole buffer, and returns (value, actualBits).
// actualBits is 0 once bitOffset has consumed the entire buffer, signaling
// end of stream; it is less than 13 only for the final group.
func takeBits13(data []byte, bitOffset int) (value uint32, actualBits int) {
	totalBits := len(data) * 8
	if bitOffset >= totalBits {
		return 0, 0
	}
	n := totalBits - bitOffset
	if n > 13 {
		n = 13
	}
	for i := 0; i < n; i++ {
		bitPos := bitOffset + i
		b := data[bitPos/8]
		shift := uint(7 - bitPos%8)
		bit := (b >> shift) & 1
		value = value<<1 | uint32(bit)
	}
	return value, n
}

// digitsOf splits v into exactly n decimal digits, most significant first,
// taking the n least-significant decimal digits of v (v is assumed to fit,
// per numericCharCount's sizing of the trailing group).
func digitsOf(v uint32, n int) [4]byte {
	var out [4]byte
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v % 10)
		v /= 10
	}
	return out
}
