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
 * Modeled after the teacher's qrcodegen_test.go: table-driven tests built
 * around testify's assert/require, one function per invariant named in
 * spec.md §8.
 */

package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidth(t *testing.T) {
	var data [MinDataBufCap]byte
	var tmp [MinTmpBufCap]byte
	for v := MinVersion; v <= MaxVersion; v++ {
		w, err := Generate("", data[:], 4, v, len(data), tmp[:], len(tmp))
		require.NoError(t, err, "version %d", v)
		assert.Equal(t, 4*v+17, w, "version %d", v)
	}
}

func TestMaxDataSizeMatchesTable(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		want := dataCapacity(v) - byteModeOverhead
		if want < 0 {
			want = 0
		}
		assert.Equal(t, want, MaxDataSize(v, 0), "version %d", v)
	}
}

func TestMaxDataSizeInvalidVersion(t *testing.T) {
	assert.Equal(t, 0, MaxDataSize(0, 0))
	assert.Equal(t, 0, MaxDataSize(41, 0))
}

func TestMinimumSymbol(t *testing.T) {
	var data [MinDataBufCap]byte
	var tmp [MinTmpBufCap]byte
	copy(data[:], "HELLO\n")

	w, err := Generate("", data[:], 6, 1, len(data), tmp[:], len(tmp))
	require.NoError(t, err)
	assert.Equal(t, 21, w)

	got := decodeByteSegment(t, data[:], 1)
	assert.Equal(t, "HELLO\n", got)
}

func TestEmptyInput(t *testing.T) {
	var data [MinDataBufCap]byte
	var tmp [MinTmpBufCap]byte

	w, err := Generate("", data[:], 0, 5, len(data), tmp[:], len(tmp))
	require.NoError(t, err)
	assert.Equal(t, 37, w)

	got := decodeByteSegment(t, data[:], 5)
	assert.Equal(t, "", got)
}

func TestVersionSweepRoundTrip(t *testing.T) {
	var data [MinDataBufCap]byte
	var tmp [MinTmpBufCap]byte

	for v := MinVersion; v <= MaxVersion; v++ {
		n := MaxDataSize(v, 0)
		payload := make([]byte, n)
		for i := range payload {
			payload[i] = 0x41
		}
		copy(data[:], payload)

		_, err := Generate("", data[:], n, v, len(data), tmp[:], len(tmp))
		require.NoError(t, err, "version %d", v)

		got := decodeByteSegment(t, data[:], v)
		assert.Equal(t, string(payload), got, "version %d", v)
	}
}

func TestCapacityExceeded(t *testing.T) {
	var data [MinDataBufCap]byte
	var tmp [MinTmpBufCap]byte

	n := MaxDataSize(1, 0) + 1
	_, err := Generate("", data[:], n, 1, len(data), tmp[:], len(tmp))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestInvalidVersionRejected(t *testing.T) {
	var data [MinDataBufCap]byte
	var tmp [MinTmpBufCap]byte

	_, err := Generate("", data[:], 0, 0, len(data), tmp[:], len(tmp))
	assert.ErrorIs(t, err, ErrInvalidVersion)

	_, err = Generate("", data[:], 0, 41, len(data), tmp[:], len(tmp))
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestBufferTooSmallRejected(t *testing.T) {
	var tmp [MinTmpBufCap]byte
	small := make([]byte, MinDataBufCap-1)

	_, err := Generate("", small, 0, 1, len(small), tmp[:], len(tmp))
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestDeterminism(t *testing.T) {
	var data1, data2 [MinDataBufCap]byte
	var tmp [MinTmpBufCap]byte
	copy(data1[:], "the kernel wept")
	copy(data2[:], "the kernel wept")

	_, err := Generate("", data1[:], 15, 3, len(data1), tmp[:], len(tmp))
	require.NoError(t, err)
	_, err = Generate("", data2[:], 15, 3, len(data2), tmp[:], len(tmp))
	require.NoError(t, err)

	assert.Equal(t, data1, data2)
}

func TestReedSolomonRemainder(t *testing.T) {
	// P7 is the generator polynomial for version 1: a known-zero message
	// (an all-zero block) must produce an all-zero remainder regardless of
	// generator, since GF(256) multiplication by zero is zero throughout
	// the long division.
	data := make([]byte, 19)
	dst := make([]byte, 7)
	computeRemainder(data, p7[:], dst)
	for _, b := range dst {
		assert.Equal(t, byte(0), b)
	}
}

func TestNumericCharCount(t *testing.T) {
	assert.Equal(t, 0, numericCharCount(0))
	assert.Equal(t, 4, numericCharCount(13))
	assert.Equal(t, 8, numericCharCount(26))
	assert.Equal(t, 4, numericCharCount(14)) // trailing 1 bit rounds down to 0 extra digits
}

// decodeByteSegment is a minimal reference decoder used only by these
// tests: it undoes exactly what Generate does (mask 0, canonical
// interleave, byte-mode framing) to recover the original payload, acting
// as the "standards-compliant decoder" stand-in from spec.md §8's
// round-trip property.
func decodeByteSegment(t *testing.T, bitmap []byte, version int) string {
	t.Helper()
	size := width(version)
	stride := (size + 7) / 8

	var reserved [maxReservedBytes]byte
	rsv := reserved[:stride*size]
	markFn := func(x, y int, dark bool) {
		setModule(rsv, stride, x, y, true)
	}
	drawTiming(markFn, size)
	drawFinder(markFn, 3, 3, size)
	drawFinder(markFn, size-4, 3, size)
	drawFinder(markFn, 3, size-4, size)
	drawAlignmentPatterns(markFn, version)
	drawFormatInfo(markFn, size)
	drawVersionInfo(markFn, version, size)

	unmasked := make([]byte, len(bitmap))
	copy(unmasked, bitmap)
	applyMask(unmasked, rsv, stride, size)

	bits := make([]bool, 0, dataCapacity(version)*8+eccLength(version)*8*2)
	x := size - 1
	for x >= 1 {
		if x == 6 {
			x = 5
		}
		upward := (x+1)&2 == 0
		for row := 0; row < size; row++ {
			var y int
			if upward {
				y = size - 1 - row
			} else {
				y = row
			}
			for j := 0; j < 2; j++ {
				xx := x - j
				if !isReserved(rsv, stride, xx, y) {
					idx := y*stride + xx/8
					shift := uint(7 - xx%8)
					bit := unmasked[idx]>>shift&1 == 1
					bits = append(bits, bit)
				}
			}
		}
		x -= 2
	}

	readBits := func(n int) uint32 {
		var v uint32
		for i := 0; i < n; i++ {
			v <<= 1
			if len(bits) > 0 && bits[0] {
				v |= 1
			}
			bits = bits[1:]
		}
		return v
	}

	mode := readBits(4)
	require.Equal(t, uint32(modeByte), mode)
	count := int(readBits(charCountBits(kindByte, version)))
	out := make([]byte, count)
	for i := 0; i < count; i++ {
		out[i] = byte(readBits(8))
	}
	return string(out)
}
