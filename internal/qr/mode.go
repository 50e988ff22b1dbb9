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
 * Modeled after https://github.com/grkuntzmd/qrcodegen (mode.go), reduced
 * to the two modes this encoder supports and the fixed ECC-Low version
 * bands from spec.md §4.3.
 */

package qr

// mode indicators, the 4-bit headers that prefix each segment.
const (
	modeByte       = 0b0100
	modeNumeric    = 0b0001
	modeTerminator = 0b0000
)

// segKind distinguishes the two segment payload encodings this package
// supports (byte and the custom 13-bit-to-4-digit numeric repacking).
type segKind int8

const (
	kindByte segKind = iota
	kindNumeric
)

// charCountBits returns the character-count field width for the given
// segment kind at the given QR version, per the table in spec.md §4.3.
func charCountBits(kind segKind, version int) int {
	switch {
	case version <= 9:
		if kind == kindByte {
			return 8
		}
		return 10
	case version <= 26:
		if kind == kindByte {
			return 16
		}
		return 12
	default:
		if kind == kindByte {
			return 16
		}
		return 14
	}
}
