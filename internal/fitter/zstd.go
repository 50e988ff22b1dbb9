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
	"errors"
	"fmt"
	"runtime"

	"github.com/klauspost/compress/zstd"
)

// ErrScratchExhausted is returned by ZstdCompressor.Compress when the
// encoded output would not fit inside dst's existing capacity. The
// caller's no-allocation contract forbids the encoder silently growing
// dst's backing array, per spec.md §9's note on sizing ZSTD scratch
// exactly for the configured level.
var ErrScratchExhausted = errors.New("fitter: zstd output exceeds scratch capacity")

// ZstdCompressor adapts a *zstd.Encoder, configured once at a fixed
// level, to the Compressor interface.
type ZstdCompressor struct {
	enc *zstd.Encoder
}

// encoderOptions collects ZstdCompressor construction options, built up
// through With* functions the same way the teacher's segmentEncoder took
// its options.
type encoderOptions struct {
	level       int
	concurrency int
	singleShot  bool
}

// Option configures NewZstdCompressor.
type Option func(*encoderOptions)

// WithConcurrency caps the number of goroutines the encoder may use for
// its internal pipeline. A capture daemon running under a panic, where
// every other processor is assumed quiescent (spec.md §5), should pass 1.
func WithConcurrency(n int) Option {
	return func(o *encoderOptions) { o.concurrency = n }
}

// WithSingleSegment selects the single-segment ZSTD frame encoding, which
// omits the content-size-unknown frame header bit and slightly lowers
// per-frame overhead -- worthwhile when every frame is small enough to fit
// one QR symbol.
func WithSingleSegment(single bool) Option {
	return func(o *encoderOptions) { o.singleShot = single }
}

// NewZstdCompressor builds a compressor at the given level (1..22, per
// spec.md §6's configuration surface). Levels outside 1..22 are rejected up
// front rather than left to fail deep inside a capture run; an accepted
// level is mapped onto one of the encoder's presets by
// zstd.EncoderLevelFromZstd.
// By default it matches runtime.GOMAXPROCS(0) worth of concurrency and
// disables single-segment framing; pass options to override either.
func NewZstdCompressor(level int, opts ...Option) (*ZstdCompressor, error) {
	if level < 1 || level > 22 {
		return nil, fmt.Errorf("fitter: compression level %d out of range [1,22]", level)
	}

	o := encoderOptions{level: level, concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}

	encOpts := []zstd.EOption{
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(o.level)),
		zstd.WithEncoderConcurrency(o.concurrency),
	}
	if o.singleShot {
		encOpts = append(encOpts, zstd.WithSingleSegment(true))
	}

	enc, err := zstd.NewWriter(nil, encOpts...)
	if err != nil {
		return nil, fmt.Errorf("fitter: building zstd encoder: %w", err)
	}
	return &ZstdCompressor{enc: enc}, nil
}

// Compress implements Compressor. dst must be passed with len 0 and its
// full target capacity; EncodeAll appends to dst, and a result whose
// backing array differs from dst's (detected via capacity growth) is
// reported as ErrScratchExhausted instead of silently allocating.
func (z *ZstdCompressor) Compress(dst, src []byte) ([]byte, error) {
	wantCap := cap(dst)
	out := z.enc.EncodeAll(src, dst)
	if cap(out) > wantCap {
		return nil, ErrScratchExhausted
	}
	return out, nil
}

// Close releases the encoder's internal resources.
func (z *ZstdCompressor) Close() error {
	return z.enc.Close()
}
