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
 * The binary search and the recompression pass follow spec.md §4.5
 * directly; Compress is deliberately a narrow interface (not a direct
 * *zstd.Encoder dependency) so the search loop can be exercised against a
 * fake in tests the way the teacher's own package keeps its core
 * allocation-free and dependency-light.
 */

// Package fitter finds the largest prefix of a log buffer whose compressed,
// header-framed image fits a QR symbol's data capacity.
package fitter

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/grkuntzmd/panicqr/internal/qr"
)

// Frame layout constants (spec.md §3, "Payload frame").
const (
	Magic      uint32 = 0x5A535444
	HeaderSize        = 8
)

// Sentinel errors for the three failure kinds spec.md §7 assigns to the
// fitter.
var (
	// ErrBufferTooSmall is returned when scratch or dst is smaller than
	// the requested version's capacity.
	ErrBufferTooSmall = errors.New("fitter: destination buffer smaller than version capacity")
	// ErrCapacityTooSmall is returned when a version's byte-mode capacity
	// cannot even hold the 8-byte header.
	ErrCapacityTooSmall = errors.New("fitter: version capacity too small for a payload header")
	// ErrNothingFits is returned when no prefix of the source, however
	// short, compresses within capacity.
	ErrNothingFits = errors.New("fitter: no prefix of input fits the symbol capacity")
	// ErrInconsistentRecompress is returned when the deterministic final
	// recompression pass produces a frame that no longer fits, despite
	// search having recorded a fit for the same prefix length.
	ErrInconsistentRecompress = errors.New("fitter: final recompression pass no longer fits")
)

// Compressor compresses src at a fixed configured level into dst, returning
// the slice of dst written to. It reports an error when src cannot be
// compressed into dst's capacity (the fitter treats this as "this prefix
// length does not fit" during search, and as a hard failure during the
// final pass).
type Compressor interface {
	Compress(dst, src []byte) ([]byte, error)
}

// Result reports the outcome of a successful Fit.
type Result struct {
	// FrameLen is the total length of the frame written to dst, header
	// included.
	FrameLen int
	// Consumed is best_k: the number of source bytes folded into the
	// frame. The driver loop advances its cursor by this amount.
	Consumed int
	// CompressedLen is the ZSTD-frame length alone, excluding the header.
	CompressedLen int
}

// Fit performs the binary search from spec.md §4.5 and writes the final
// frame into dst. scratch is used to probe candidate prefix lengths during
// the search without touching dst; both scratch and dst must have
// capacity at least qr.MaxDataSize(version, 0) to avoid allocating inside
// the search loop. src is never mutated.
func Fit(c Compressor, src []byte, version int, scratch, dst []byte) (Result, error) {
	capBytes := qr.MaxDataSize(version, 0)
	if capBytes <= HeaderSize {
		return Result{}, ErrCapacityTooSmall
	}
	if len(dst) < capBytes || len(scratch) < capBytes {
		return Result{}, ErrBufferTooSmall
	}
	budget := capBytes - HeaderSize

	n := len(src)
	lo, hi := 1, n
	bestK, bestSize := 0, 0

	for lo <= hi {
		m := lo + (hi-lo)/2
		out, err := c.Compress(scratch[:0], src[:m])
		if err != nil || len(out) > budget {
			hi = m - 1
			continue
		}
		bestK, bestSize = m, len(out)
		lo = m + 1
	}

	if bestK == 0 {
		return Result{}, ErrNothingFits
	}

	final, err := c.Compress(dst[HeaderSize:HeaderSize], src[:bestK])
	if err != nil || len(final) > budget {
		return Result{}, fmt.Errorf("%w (recorded %d bytes for k=%d)", ErrInconsistentRecompress, bestSize, bestK)
	}

	binary.LittleEndian.PutUint32(dst[0:4], Magic)
	binary.LittleEndian.PutUint32(dst[4:8], uint32(bestK))

	return Result{
		FrameLen:      HeaderSize + len(final),
		Consumed:      bestK,
		CompressedLen: len(final),
	}, nil
}
