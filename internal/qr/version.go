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
 * Modeled after https://github.com/grkuntzmd/qrcodegen (package.go), with
 * the per-version tables collapsed to the single ECC level this encoder
 * supports (Low) and restructured around explicit block-group parameters
 * instead of recomputed block-size arithmetic.
 */

package qr

// MinVersion and MaxVersion bound the QR code version range this encoder
// supports.
const (
	MinVersion = 1
	MaxVersion = 40
)

// vparam holds the per-version, ECC-level-Low block layout: which of the
// ten generator polynomials applies, how many blocks are in each of the two
// groups, and the data length of a short-group block. The long-group block
// (if g2 > 0) is always one codeword longer.
type vparam struct {
	polyIndex int
	g1        int
	g2        int
	s1        int
}

// vparams is indexed by version-1. Values are the canonical QR Model 2,
// ECC level Low, block structure (ISO/IEC 18004 table 9).
var vparams = [MaxVersion]vparam{
	{0, 1, 0, 19},    // v 1  D=19
	{1, 1, 0, 34},    // v 2  D=34
	{2, 1, 0, 55},    // v 3  D=55
	{4, 1, 0, 80},    // v 4  D=80
	{7, 1, 0, 108},   // v 5  D=108
	{3, 2, 0, 68},    // v 6  D=136
	{4, 2, 0, 78},    // v 7  D=156
	{6, 2, 0, 97},    // v 8  D=194
	{9, 2, 0, 116},   // v 9  D=232
	{3, 2, 2, 68},    // v10  D=274
	{4, 4, 0, 81},    // v11  D=324
	{6, 2, 2, 92},    // v12  D=370
	{7, 4, 0, 107},   // v13  D=428
	{9, 3, 1, 115},   // v14  D=461
	{5, 5, 1, 87},    // v15  D=523
	{6, 5, 1, 98},    // v16  D=589
	{8, 1, 5, 107},   // v17  D=647
	{9, 5, 1, 120},   // v18  D=721
	{8, 3, 4, 113},   // v19  D=795
	{8, 3, 5, 107},   // v20  D=861
	{8, 4, 4, 116},   // v21  D=932
	{8, 2, 7, 111},   // v22  D=1006
	{9, 4, 5, 121},   // v23  D=1094
	{9, 6, 4, 117},   // v24  D=1174
	{7, 8, 4, 106},   // v25  D=1276
	{8, 10, 2, 114},  // v26  D=1370
	{9, 8, 4, 122},   // v27  D=1468
	{9, 3, 10, 117},  // v28  D=1531
	{9, 7, 7, 116},   // v29  D=1631
	{9, 5, 10, 115},  // v30  D=1735
	{9, 13, 3, 115},  // v31  D=1843
	{9, 17, 0, 115},  // v32  D=1955
	{9, 17, 1, 115},  // v33  D=2071
	{9, 13, 6, 115},  // v34  D=2191
	{9, 12, 7, 121},  // v35  D=2306
	{9, 6, 14, 121},  // v36  D=2434
	{9, 17, 4, 122},  // v37  D=2566
	{9, 4, 18, 122},  // v38  D=2702
	{9, 20, 4, 117},  // v39  D=2812
	{9, 19, 6, 118},  // v40  D=2956
}

// generator polynomials, one per distinct ECC codeword count used at ECC
// level Low across all 40 versions. Coefficients are stored highest power
// first, excluding the implicit leading 1, in the log domain's source
// representation (plain GF(256) field elements, as reedSolomonComputeRemainder
// expects) — embedded verbatim per spec.md §4.2; never recomputed at
// runtime.
var (
	p7  = [7]byte{127, 122, 154, 164, 11, 68, 117}
	p10 = [10]byte{216, 194, 159, 111, 199, 94, 95, 113, 157, 193}
	p15 = [15]byte{29, 196, 111, 163, 112, 74, 10, 105, 105, 139, 132, 151, 32, 134, 26}
	p18 = [18]byte{239, 251, 183, 113, 149, 175, 199, 215, 240, 220, 73, 82, 173, 75, 32, 67, 217, 146}
	p20 = [20]byte{152, 185, 240, 5, 111, 99, 6, 220, 112, 150, 69, 36, 187, 22, 228, 198, 121, 121, 165, 174}
	p22 = [22]byte{89, 179, 131, 176, 182, 244, 19, 189, 69, 40, 28, 137, 29, 123, 67, 253, 86, 218, 230, 26, 145, 245}
	p24 = [24]byte{122, 118, 169, 70, 178, 237, 216, 102, 115, 150, 229, 73, 130, 72, 61, 43, 206, 1, 237, 247, 127, 217, 144, 117}
	p26 = [26]byte{246, 51, 183, 4, 136, 98, 199, 152, 77, 56, 206, 24, 145, 40, 209, 117, 233, 42, 135, 68, 70, 144, 146, 77, 43, 94}
	p28 = [28]byte{252, 9, 28, 13, 18, 251, 208, 150, 103, 174, 100, 41, 167, 12, 247, 56, 117, 119, 233, 127, 181, 100, 121, 147, 176, 74, 58, 197}
	p30 = [30]byte{212, 246, 77, 73, 195, 192, 75, 98, 5, 70, 103, 177, 22, 217, 138, 51, 181, 246, 72, 25, 18, 46, 228, 74, 216, 195, 11, 106, 130, 150}
)

// generatorPolys maps polyIndex to the corresponding generator polynomial
// slice. Slicing the fixed arrays above does not allocate.
var generatorPolys = [10][]byte{
	p7[:], p10[:], p15[:], p18[:], p20[:], p22[:], p24[:], p26[:], p28[:], p30[:],
}

// alignPositions is indexed by version-1 and holds the alignment-pattern
// center coordinates along one axis (the full set of centers is the cross
// product of this list with itself, see §4.4).
var alignPositions = [MaxVersion][]byte{
	{}, {6, 18}, {6, 22}, {6, 26}, {6, 30}, {6, 34},
	{6, 22, 38}, {6, 24, 42}, {6, 26, 46}, {6, 28, 50},
	{6, 30, 54}, {6, 32, 58}, {6, 34, 62},
	{6, 26, 46, 66}, {6, 26, 48, 70}, {6, 26, 50, 74}, {6, 30, 54, 78}, {6, 30, 56, 82}, {6, 30, 58, 86},
	{6, 34, 62, 90},
	{6, 28, 50, 72, 94}, {6, 26, 50, 74, 98}, {6, 30, 54, 78, 102}, {6, 28, 54, 80, 106}, {6, 32, 58, 84, 110},
	{6, 30, 58, 86, 114}, {6, 34, 62, 90, 118},
	{6, 26, 50, 74, 98, 122}, {6, 30, 54, 78, 102, 126}, {6, 26, 52, 78, 104, 130}, {6, 30, 56, 82, 108, 134},
	{6, 34, 60, 86, 112, 138}, {6, 30, 58, 86, 114, 142}, {6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150}, {6, 24, 50, 76, 102, 128, 154}, {6, 28, 54, 80, 106, 132, 158},
	{6, 32, 58, 84, 110, 136, 162}, {6, 26, 54, 82, 110, 138, 166}, {6, 30, 58, 86, 114, 142, 170},
}

// versionInfo is indexed by version-1 and holds the 18-bit version
// information word (BCH(18,6) encoded), zero for v<7 where it is unused.
var versionInfo = [MaxVersion]uint32{
	0, 0, 0, 0, 0, 0,
	0x07C94, 0x085BC, 0x09A99, 0x0A4D3, 0x0BBF6, 0x0C762, 0x0D847, 0x0E60D,
	0x0F928, 0x10B78, 0x1145D, 0x12A17, 0x13532, 0x149A6, 0x15683, 0x168C9,
	0x177EC, 0x18EC4, 0x191E1, 0x1AFAB, 0x1B08E, 0x1CC1A, 0x1D33F, 0x1ED75,
	0x1F250, 0x209D5, 0x216F0, 0x228BA, 0x2379F, 0x24B0B, 0x2542E, 0x26A64,
	0x27541, 0x28C69,
}

// formatInfoL holds the eight 15-bit format-information words for ECC
// level Low, across mask patterns 0..7. Only index 0 (mask pattern 0) is
// used by this encoder, but the table is kept complete for documentation
// and for use by a decoder/tester validating other masks.
var formatInfoL = [8]uint32{
	0x77C4, 0x72F3, 0x7DAA, 0x789D, 0x662F, 0x6318, 0x6C41, 0x6976,
}

// eccLength returns E(v): the number of ECC codewords per block.
func eccLength(version int) int {
	return len(generatorPolys[vparams[version-1].polyIndex])
}

// dataCapacity returns D(v): the number of data codewords (bytes) carried
// by a symbol of the given version before Reed-Solomon parity is appended.
func dataCapacity(version int) int {
	p := vparams[version-1]
	return p.g1*p.s1 + p.g2*(p.s1+1)
}

// width returns W(v) = 4v+17, the module width/height of the symbol.
func width(version int) int {
	return 4*version + 17
}

// totalCodewords returns D(v) + E(v)*(g1+g2), the size of the fully
// encoded message (data plus interleaved parity).
func totalCodewords(version int) int {
	p := vparams[version-1]
	return dataCapacity(version) + eccLength(version)*(p.g1+p.g2)
}
