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
 */

package fb

// Colors used by PaintBitmap: a plain white quiet zone and black modules,
// packed 0x00RRGGBB.
const (
	ColorWhite uint32 = 0x00FFFFFF
	ColorBlack uint32 = 0x00000000
)

// PaintBitmap draws a packed 1-bpp QR bitmap (row-major, stride bytes per
// row, MSB first, set bit = dark module, as produced by qr.Generate) onto
// b, each module scaled to modulePixels x modulePixels, with its top-left
// corner at (originX, originY). It draws a one-module-wide white quiet
// zone around the symbol, per the blitter contract in spec.md §6.
func PaintBitmap(b Blitter, bitmap []byte, width, stride, modulePixels, originX, originY int) error {
	quiet := modulePixels
	full := (width + 2) * modulePixels
	if err := b.FillRect(originX, originY, full, full, ColorWhite); err != nil {
		return err
	}

	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			idx := y*stride + x/8
			shift := uint(7 - x%8)
			dark := bitmap[idx]>>shift&1 == 1
			if !dark {
				continue
			}
			px := originX + quiet + x*modulePixels
			py := originY + quiet + y*modulePixels
			if err := b.FillRect(px, py, modulePixels, modulePixels, ColorBlack); err != nil {
				return err
			}
		}
	}
	return nil
}
