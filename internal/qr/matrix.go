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
 * Modeled after grkuntzmd-qrcodegen's drawFunctionPatterns / drawFinderPattern
 * / drawAlignmentPattern / drawFormatBits / drawVersion / drawCodewords /
 * applyMask (qrcode.go), restructured to paint a packed 1-bpp bitmap plus a
 * stack-sized reserved-cell bitmap instead of [][]module/[][]bool, since
 * spec.md §3 requires the symbol as a packed row-major bitmap and §5
 * forbids per-symbol heap allocation. Format/version information is read
 * from the embedded tables in version.go rather than recomputed via BCH,
 * per spec.md §4.2.
 */

package qr

// maxReservedBytes is the packed-bitmap size of the largest supported
// symbol (version 40, 177x177 modules, stride 23), used to size the fixed
// stack array that tracks reserved cells during painting.
const maxReservedBytes = 23 * 177

// paintMatrix lays out all function patterns, walks the interleaved data
// stream into the data area, and applies mask pattern 0. buf is the
// packed-bitmap output (row-major, stride bytes per row, MSB first); it
// must be zeroed by the caller before calling paintMatrix.
func paintMatrix(buf []byte, version int, tmp []byte) {
	size := width(version)
	stride := (size + 7) / 8

	var reserved [maxReservedBytes]byte
	rsv := reserved[:stride*size]

	setFn := func(x, y int, dark bool) {
		setModule(buf, stride, x, y, dark)
		setModule(rsv, stride, x, y, true)
	}

	drawTiming(setFn, size)
	drawFinder(setFn, 3, 3, size)
	drawFinder(setFn, size-4, 3, size)
	drawFinder(setFn, 3, size-4, size)
	drawAlignmentPatterns(setFn, version)
	drawFormatInfo(setFn, size)
	drawVersionInfo(setFn, version, size)

	drawCodewords(buf, rsv, stride, size, version, tmp)
	applyMask(buf, rsv, stride, size)
}

func drawTiming(setFn func(x, y int, dark bool), size int) {
	for i := 0; i < size; i++ {
		setFn(6, i, i%2 == 0)
		setFn(i, 6, i%2 == 0)
	}
}

// drawFinder paints a 9x9 finder pattern (3x3 solid center, a light ring,
// a 7x7 dark ring, and a light one-module separator) centered at (x, y).
func drawFinder(setFn func(x, y int, dark bool), x, y, size int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= size || yy < 0 || yy >= size {
				continue
			}
			dist := absInt(dx)
			if ady := absInt(dy); ady > dist {
				dist = ady
			}
			setFn(xx, yy, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPatterns paints a 5x5 concentric alignment pattern at every
// center in ALIGN[v] x ALIGN[v] that does not collide with a finder.
func drawAlignmentPatterns(setFn func(x, y int, dark bool), version int) {
	positions := alignPositions[version-1]
	n := len(positions)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue // overlaps a finder corner
			}
			cx, cy := int(positions[i]), int(positions[j])
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					dist := absInt(dx)
					if ady := absInt(dy); ady > dist {
						dist = ady
					}
					setFn(cx+dx, cy+dy, dist != 1)
				}
			}
		}
	}
}

// drawFormatInfo paints the two copies of the 15-bit ECC-Low, mask-0
// format word around the finders.
func drawFormatInfo(setFn func(x, y int, dark bool), size int) {
	bits := formatInfoL[0]

	for i := 0; i <= 5; i++ {
		setFn(8, i, bitAt(bits, i))
	}
	setFn(8, 7, bitAt(bits, 6))
	setFn(8, 8, bitAt(bits, 7))
	setFn(7, 8, bitAt(bits, 8))
	for i := 9; i < 15; i++ {
		setFn(14-i, 8, bitAt(bits, i))
	}

	for i := 0; i < 8; i++ {
		setFn(size-1-i, 8, bitAt(bits, i))
	}
	for i := 8; i < 15; i++ {
		setFn(8, size-15+i, bitAt(bits, i))
	}
	setFn(8, size-8, true)
}

// drawVersionInfo paints the two copies of the 18-bit version word, for
// version >= 7 only.
func drawVersionInfo(setFn func(x, y int, dark bool), version, size int) {
	if version < 7 {
		return
	}
	bits := versionInfo[version-1]
	for i := 0; i < 18; i++ {
		dark := bitAt(bits, i)
		a := size - 11 + i%3
		b := i / 3
		setFn(a, b, dark)
		setFn(b, a, dark)
	}
}

// drawCodewords walks the canonical zig-zag data path (spec.md §4.4),
// placing each interleaved codeword bit MSB-first into the first
// non-reserved cell it finds, leaving any trailing unused data cells clear
// (light, i.e. zero remainder bits) before masking.
func drawCodewords(buf, rsv []byte, stride, size, version int, tmp []byte) {
	it := newInterleaver(tmp, version)
	curByte, bitsLeft := byte(0), 0
	more := true

	nextBit := func() (bool, bool) {
		if bitsLeft == 0 {
			if !more {
				return false, false
			}
			var b byte
			b, more = it.next()
			if !more {
				return false, false
			}
			curByte = b
			bitsLeft = 8
		}
		bitsLeft--
		bit := (curByte>>uint(bitsLeft))&1 == 1
		return bit, true
	}

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
					bit, ok := nextBit()
					dark := ok && bit
					setModule(buf, stride, xx, y, dark)
				}
			}
		}
		x -= 2
	}
}

// applyMask toggles every non-reserved cell for which (x xor y) mod 2 == 0
// (mask pattern 0).
func applyMask(buf, rsv []byte, stride, size int) {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if isReserved(rsv, stride, x, y) {
				continue
			}
			if (x^y)&1 == 0 {
				toggleModule(buf, stride, x, y)
			}
		}
	}
}

func bitAt(v uint32, i int) bool {
	return (v>>uint(i))&1 == 1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func setModule(buf []byte, stride, x, y int, dark bool) {
	idx := y*stride + x/8
	shift := uint(7 - x%8)
	if dark {
		buf[idx] |= 1 << shift
	} else {
		buf[idx] &^= 1 << shift
	}
}

func isReserved(rsv []byte, stride, x, y int) bool {
	idx := y*stride + x/8
	shift := uint(7 - x%8)
	return rsv[idx]>>shift&1 == 1
}

func toggleModule(buf []byte, stride, x, y int) {
	idx := y*stride + x/8
	shift := uint(7 - x%8)
	buf[idx] ^= 1 << shift
}
