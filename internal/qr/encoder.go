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
 * Framing and interleaving are modeled after grkuntzmd-qrcodegen's
 * EncodeSegments/addECCAndInterleave (qrcode.go), generalized from a
 * single in-memory []byte message to an explicit data+parity layout in a
 * caller-supplied buffer (spec.md §3's "Encoded message" data model) with
 * a separate, allocation-free interleaving iterator for the matrix
 * painter to consume (spec.md §4.3's "Interleaving (output order)").
 */

package qr

import "errors"

// ErrSegmentsTooLarge is returned when the segments do not fit the data
// capacity of the requested version.
var ErrSegmentsTooLarge = errors.New("qr: segments exceed data capacity for this version")

// Encode builds the encoded message (data codewords, then parity bytes,
// block order) for segs at the given version into tmp, which must have
// length at least totalCodewords(version). It never allocates.
func Encode(segs []Segment, version int, tmp []byte) error {
	p := vparams[version-1]
	d := dataCapacity(version)
	eccLen := eccLength(version)
	if len(tmp) < d+eccLen*(p.g1+p.g2) {
		panic("qr: tmp buffer too small")
	}

	for i := range tmp[:d] {
		tmp[i] = 0
	}

	bw := newBitWriter(tmp[:d])
	for _, seg := range segs {
		if err := writeSegment(&bw, seg, version); err != nil {
			return err
		}
	}

	dataCapacityBits := d * 8
	if bw.bitLen() > dataCapacityBits {
		return ErrSegmentsTooLarge
	}

	term := 4
	if rem := dataCapacityBits - bw.bitLen(); rem < term {
		term = rem
	}
	bw.appendBits(0, term)
	bw.padToByte()

	padStart := bw.bitLen() / 8
	padByte := uint32(0xEC)
	if padStart%2 != 0 {
		padByte = 0x11
	}
	for bw.bitLen() < dataCapacityBits {
		bw.appendBits(padByte, 8)
		padByte ^= 0xEC ^ 0x11
	}

	encodeECC(tmp, version)
	return nil
}

// writeSegment appends one segment's mode header, character-count field,
// and payload bits.
func writeSegment(bw *bitWriter, seg Segment, version int) error {
	switch seg.kind {
	case kindByte:
		ccBits := charCountBits(kindByte, version)
		if len(seg.data) >= 1<<uint(ccBits) || bw.bitLen()+4+ccBits+8*len(seg.data) > bw.capBits() {
			return ErrSegmentsTooLarge
		}
		bw.appendBits(modeByte, 4)
		bw.appendBits(uint32(seg.numChars()), ccBits)
		for _, b := range seg.data {
			bw.appendBits(uint32(b), 8)
		}
	case kindNumeric:
		ccBits := charCountBits(kindNumeric, version)
		chars := seg.numChars()
		payloadBits := 10*(chars/3) + [3]int{0, 4, 7}[chars%3]
		if chars >= 1<<uint(ccBits) || bw.bitLen()+4+ccBits+payloadBits > bw.capBits() {
			return ErrSegmentsTooLarge
		}
		bw.appendBits(modeNumeric, 4)
		bw.appendBits(uint32(chars), ccBits)
		writeNumericPayload(bw, seg.data)
	default:
		return errors.New("qr: unknown segment kind")
	}
	return nil
}

// writeNumericPayload implements the custom 13-bit-to-4-digit repacking
// from spec.md §4.3: each 13-bit group of the source becomes up to 4
// decimal digits, pushed onto a small FIFO; the FIFO is drained 3 digits
// at a time (10 bits) as soon as it has enough, and flushed as a short
// group (1 digit: 4 bits, 2 digits: 7 bits) once the source is exhausted.
func writeNumericPayload(bw *bitWriter, data []byte) {
	var pending [6]byte // at most 4 pushed before a drain, plus up to 2 left over
	n := 0

	drain3 := func() {
		for n >= 3 {
			v := uint32(pending[0])*100 + uint32(pending[1])*10 + uint32(pending[2])
			bw.appendBits(v, 10)
			copy(pending[:], pending[3:n])
			n -= 3
		}
	}

	offset := 0
	for {
		v, bits := takeBits13(data, offset)
		if bits == 0 {
			break
		}
		offset += bits
		digits := 4
		if bits < 13 {
			digits = (bits + 1) / 3
		}
		ds := digitsOf(v, digits)
		for i := 0; i < digits; i++ {
			pending[n] = ds[i]
			n++
		}
		drain3()
	}

	switch n {
	case 2:
		v := uint32(pending[0])*10 + uint32(pending[1])
		bw.appendBits(v, 7)
	case 1:
		bw.appendBits(uint32(pending[0]), 4)
	}
}

// encodeECC computes and stores the Reed-Solomon parity for every block.
// tmp[:D(v)] must already hold the padded data codewords; parity is
// written to tmp[D(v):totalCodewords(v)].
func encodeECC(tmp []byte, version int) {
	p := vparams[version-1]
	gen := generatorPolys[p.polyIndex]
	eccLen := len(gen)
	d := dataCapacity(version)

	blockOffset := 0
	parityOffset := d
	for b := 0; b < p.g1; b++ {
		block := tmp[blockOffset : blockOffset+p.s1]
		computeRemainder(block, gen, tmp[parityOffset:parityOffset+eccLen])
		blockOffset += p.s1
		parityOffset += eccLen
	}
	s2 := p.s1 + 1
	for b := 0; b < p.g2; b++ {
		block := tmp[blockOffset : blockOffset+s2]
		computeRemainder(block, gen, tmp[parityOffset:parityOffset+eccLen])
		blockOffset += s2
		parityOffset += eccLen
	}
}

// interleaver produces the canonical interleaved codeword stream (spec.md
// §4.3) from an encoded message buffer, one byte per call, without
// allocating.
type interleaver struct {
	tmp     []byte
	version int

	g1, g2, s1, s2, eccLen int
	d                      int

	phase int // 0: group columns, 1: extra column, 2: parity columns
	col   int
	block int
}

func newInterleaver(tmp []byte, version int) interleaver {
	p := vparams[version-1]
	return interleaver{
		tmp:     tmp,
		version: version,
		g1:      p.g1,
		g2:      p.g2,
		s1:      p.s1,
		s2:      p.s1 + 1,
		eccLen:  eccLength(version),
		d:       dataCapacity(version),
	}
}

// next returns the next codeword in interleaved order and true, or
// (0, false) once the stream is exhausted.
func (it *interleaver) next() (byte, bool) {
	numBlocks := it.g1 + it.g2
	for {
		switch it.phase {
		case 0: // columns 0..s1-1 across all blocks
			if it.col >= it.s1 {
				it.phase = 1
				it.col = 0
				continue
			}
			if it.block >= numBlocks {
				it.block = 0
				it.col++
				continue
			}
			b := it.block
			it.block++
			return it.tmp[it.blockDataOffset(b)+it.col], true
		case 1: // the extra column, group-2 blocks only
			if it.g2 == 0 || it.s2 == it.s1 {
				it.phase = 2
				it.col = 0
				it.block = 0
				continue
			}
			if it.block >= it.g2 {
				it.phase = 2
				it.col = 0
				it.block = 0
				continue
			}
			b := it.g1 + it.block
			it.block++
			return it.tmp[it.blockDataOffset(b)+it.s1], true
		case 2: // parity columns across all blocks
			if it.col >= it.eccLen {
				return 0, false
			}
			if it.block >= numBlocks {
				it.block = 0
				it.col++
				continue
			}
			b := it.block
			it.block++
			return it.tmp[it.d+b*it.eccLen+it.col], true
		default:
			return 0, false
		}
	}
}

// blockDataOffset returns the offset into tmp where block b's data
// codewords begin.
func (it *interleaver) blockDataOffset(b int) int {
	if b < it.g1 {
		return b * it.s1
	}
	return it.g1*it.s1 + (b-it.g1)*it.s2
}
