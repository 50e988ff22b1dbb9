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
 * Package qr implements the hard core of spec.md: a no-allocation Model-2
 * QR Code encoder fixed to ECC level Low and mask pattern 0, modeled after
 * grkuntzmd-qrcodegen's EncodeSegments (qrcode.go) but restructured around
 * caller-supplied buffers and the flat C-shaped entry points spec.md §6
 * calls for (MaxDataSize/Generate instead of a *QRCode constructor).
 */

package qr

import (
	"errors"
	"fmt"
)

// Byte-mode framing overhead: a 4-bit mode indicator, a 16-bit
// character-count field (the widest band), and a 4-bit terminator,
// rounded up to whole bytes -- 3 bytes, per spec.md §3.
const byteModeOverhead = 3

// MinDataBufCap and MinTmpBufCap are the smallest data/tmp buffer sizes
// that Generate accepts, sized to the largest supported version (40):
// MinDataBufCap = ceil(177/8)*177 = 4071 bytes of packed bitmap,
// MinTmpBufCap = totalCodewords(40) = 3706 bytes of encoded message.
const (
	MinDataBufCap = 4071
	MinTmpBufCap  = 3706
)

// Validation errors returned by MaxDataSize and Generate.
var (
	ErrInvalidVersion   = errors.New("qr: version out of range [1,40]")
	ErrBufferTooSmall   = errors.New("qr: destination buffer too small")
	ErrCapacityExceeded = errors.New("qr: payload exceeds version capacity")
)

// MaxDataSize returns the byte-mode capacity of a symbol at the given
// version, per spec.md §6. With urlLen == 0 it is D(version) - 3. With
// urlLen > 0 it assumes the two-segment byte(url)+numeric(data) layout and
// accounts for the numeric mode's 13-bits-in/40-bits-out expansion. It
// returns 0 for an invalid version, or when the URL alone would already
// exhaust the capacity.
func MaxDataSize(version, urlLen int) int {
	if version < MinVersion || version > MaxVersion {
		return 0
	}
	d := dataCapacity(version)
	if urlLen == 0 {
		avail := d - byteModeOverhead
		if avail < 0 {
			return 0
		}
		return avail
	}
	headroom := d - urlLen - 5
	if headroom <= 0 {
		return 0
	}
	return headroom * 39 / 40
}

// Generate encodes data[:dataLen] (and, if url is non-empty, a preceding
// byte segment holding url followed by a numeric segment holding
// data[:dataLen]) into a QR Code symbol of the given version and ECC
// level Low, mask pattern 0.
//
// data holds the payload on entry; the resulting packed 1-bpp bitmap
// (row-major, stride ceil(width/8) bytes, MSB first, set bit = dark
// module) is written back into data, overwriting it, per the "in-then-out"
// buffer contract in spec.md §9 -- the payload is fully consumed into tmp
// before any bitmap bytes are written. tmp is used as scratch for the
// encoded message and is also overwritten. Both buffers must be at least
// MinDataBufCap and MinTmpBufCap bytes respectively, regardless of the
// requested version -- callers that always pass maximally sized buffers
// never need to reallocate between symbols.
//
// Generate returns the symbol width W(version) = 4*version+17 on success,
// or an error (and 0) on validation failure or capacity overflow. No
// partial state is left on the input side: on error, data and tmp
// contents are undefined.
func Generate(url string, data []byte, dataLen int, version int, dataCap int, tmp []byte, tmpCap int) (int, error) {
	if version < MinVersion || version > MaxVersion {
		return 0, ErrInvalidVersion
	}
	if dataCap < MinDataBufCap || len(data) < dataCap {
		return 0, ErrBufferTooSmall
	}
	if tmpCap < MinTmpBufCap || len(tmp) < tmpCap {
		return 0, ErrBufferTooSmall
	}
	if dataLen < 0 || dataLen > len(data) {
		return 0, ErrBufferTooSmall
	}

	size := width(version)
	stride := (size + 7) / 8
	need := stride * size
	if need > dataCap {
		return 0, ErrBufferTooSmall
	}

	payload := data[:dataLen]
	var segs []Segment
	if url != "" {
		segs = []Segment{ByteSegment([]byte(url)), NumericSegment(payload)}
	} else {
		segs = []Segment{ByteSegment(payload)}
	}

	total := totalCodewords(version)
	if total > tmpCap {
		return 0, ErrBufferTooSmall
	}
	if err := Encode(segs, version, tmp[:total]); err != nil {
		return 0, fmt.Errorf("qr: %w", ErrCapacityExceeded)
	}

	for i := 0; i < need; i++ {
		data[i] = 0
	}
	paintMatrix(data[:need], version, tmp[:total])

	return size, nil
}
