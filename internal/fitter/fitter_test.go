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

package fitter

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grkuntzmd/panicqr/internal/qr"
)

// repeatCompressor is a fake Compressor standing in for ZSTD: it "compresses"
// by run-length-collapsing a buffer of identical bytes into a fixed 4-byte
// encoding, letting tests drive clean, predictable capacity boundaries
// without linking a real codec.
type repeatCompressor struct {
	refuseAbove int // refuse (simulate a compression error) for inputs longer than this
}

func (r repeatCompressor) Compress(dst, src []byte) ([]byte, error) {
	if r.refuseAbove > 0 && len(src) > r.refuseAbove {
		return nil, assert.AnError
	}
	out := append(dst, byte(len(src)>>24), byte(len(src)>>16), byte(len(src)>>8), byte(len(src)))
	return out, nil
}

func TestFitExactBoundary(t *testing.T) {
	version := 20
	capBytes := qr.MaxDataSize(version, 0)
	scratch := make([]byte, capBytes)
	dst := make([]byte, capBytes)

	src := make([]byte, 2000)
	res, err := Fit(repeatCompressor{}, src, version, scratch, dst)
	require.NoError(t, err)
	assert.Equal(t, 2000, res.Consumed)
	assert.Equal(t, HeaderSize+4, res.FrameLen)

	gotMagic := binary.LittleEndian.Uint32(dst[0:4])
	gotLen := binary.LittleEndian.Uint32(dst[4:8])
	assert.Equal(t, Magic, gotMagic)
	assert.Equal(t, uint32(2000), gotLen)
}

func TestFitMonotonicity(t *testing.T) {
	version := 10
	capBytes := qr.MaxDataSize(version, 0)
	scratch := make([]byte, capBytes)
	dst := make([]byte, capBytes)

	// The fake compressor's output size is exactly 4 bytes regardless of
	// input length, so every prefix fits; Fit must return the longest one,
	// the full source.
	src := make([]byte, 10240)
	res, err := Fit(repeatCompressor{}, src, version, scratch, dst)
	require.NoError(t, err)
	assert.Equal(t, len(src), res.Consumed)
}

func TestFitNothingFits(t *testing.T) {
	version := 1
	capBytes := qr.MaxDataSize(version, 0)
	scratch := make([]byte, capBytes)
	dst := make([]byte, capBytes)

	src := make([]byte, 10)
	_, err := Fit(alwaysFail{}, src, version, scratch, dst)
	assert.ErrorIs(t, err, ErrNothingFits)
}

type alwaysFail struct{}

func (alwaysFail) Compress(dst, src []byte) ([]byte, error) {
	return nil, assert.AnError
}

func TestFitBufferTooSmall(t *testing.T) {
	version := 5
	capBytes := qr.MaxDataSize(version, 0)
	scratch := make([]byte, capBytes-1)
	dst := make([]byte, capBytes)

	_, err := Fit(repeatCompressor{}, make([]byte, 100), version, scratch, dst)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestFitDeterministic(t *testing.T) {
	version := 15
	capBytes := qr.MaxDataSize(version, 0)
	scratch := make([]byte, capBytes)
	dst1 := make([]byte, capBytes)
	dst2 := make([]byte, capBytes)

	src := make([]byte, 500)
	for i := range src {
		src[i] = byte(i)
	}

	r1, err := Fit(repeatCompressor{}, src, version, scratch, dst1)
	require.NoError(t, err)
	r2, err := Fit(repeatCompressor{}, src, version, scratch, dst2)
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.Equal(t, dst1, dst2)
}
