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
 * Context replaces the source's process-wide static state (the
 * framebuffer handle, the ZSTD context, the log buffer, the cursor) with
 * an explicit struct a panic notifier borrows, per spec.md §9's design
 * note. The driver loop is the one named in spec.md §4.5: fit, encode,
 * blit, delay, advance; skip 1024 bytes and retry on a failed fit.
 */

// Package capture wires the fitter and the QR encoder to a log source and
// a framebuffer, implementing the driver loop spec.md §4.5 describes.
package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grkuntzmd/panicqr/internal/config"
	"github.com/grkuntzmd/panicqr/internal/fb"
	"github.com/grkuntzmd/panicqr/internal/fitter"
	"github.com/grkuntzmd/panicqr/internal/qr"
)

// driverSkipBytes is the fixed skip distance the driver loop advances by
// when no prefix of the remaining log fits a symbol, per spec.md §4.5 and
// §8's "driver skip" scenario.
const driverSkipBytes = 1024

// KernelLogReader drains the kernel log ring into a caller-supplied
// buffer. It is the "kernel-log iterator" collaborator spec.md §6 treats
// as external.
type KernelLogReader interface {
	Drain(buf []byte) (int, error)
}

// PanicNotifier blocks until a panic (or an equivalent capture trigger)
// is reported, or ctx is cancelled. It is the "panic-notifier
// registration" collaborator spec.md §6 treats as external.
type PanicNotifier interface {
	Wait(ctx context.Context) error
}

// Context owns every buffer and collaborator a capture run needs. None of
// it is global: a panic notifier holds exactly one Context and passes it
// by reference to Run.
type Context struct {
	logger     *zap.Logger
	compressor fitter.Compressor
	blitter    fb.Blitter
	kmsg       KernelLogReader
	cfg        config.Config

	logBuf  []byte
	frame   []byte // dst for fitter.Fit, then reused as qr.Generate's data buffer
	scratch []byte
	tmp     []byte
}

// New allocates every buffer a Context needs, once, at startup.
func New(cfg config.Config, logger *zap.Logger, compressor fitter.Compressor, blitter fb.Blitter, kmsg KernelLogReader, logBufSize int) *Context {
	return &Context{
		logger:     logger,
		compressor: compressor,
		blitter:    blitter,
		kmsg:       kmsg,
		cfg:        cfg,
		logBuf:     make([]byte, logBufSize),
		frame:      make([]byte, qr.MinDataBufCap),
		scratch:    make([]byte, qr.MinDataBufCap),
		tmp:        make([]byte, qr.MinTmpBufCap),
	}
}

// Run blocks waiting for notifier, then drains the kernel log and drives
// one capture session per panic, forever (or until ctx is cancelled).
func (c *Context) Run(ctx context.Context, notifier PanicNotifier) error {
	for {
		if err := notifier.Wait(ctx); err != nil {
			return fmt.Errorf("capture: waiting for panic notification: %w", err)
		}

		session := uuid.New()
		n, err := c.kmsg.Drain(c.logBuf)
		if err != nil {
			c.logger.Error("draining kernel log", zap.String("session", session.String()), zap.Error(err))
			continue
		}
		c.logger.Info("capture session starting",
			zap.String("session", session.String()),
			zap.Int("bytes", n),
			zap.Int("version", c.cfg.Version))

		c.driveSession(session, c.logBuf[:n])
	}
}

// driveSession runs the spec.md §4.5 driver loop over log to completion,
// emitting one symbol per successful fit.
func (c *Context) driveSession(session uuid.UUID, log []byte) {
	pos := 0
	frames := 0
	for pos < len(log) {
		res, err := fitter.Fit(c.compressor, log[pos:], c.cfg.Version, c.scratch, c.frame)
		if err != nil {
			c.logger.Warn("no prefix fit this symbol's capacity, skipping",
				zap.String("session", session.String()), zap.Int("pos", pos), zap.Error(err))
			pos += min(driverSkipBytes, len(log)-pos)
			continue
		}

		width, err := qr.Generate("", c.frame, res.FrameLen, c.cfg.Version, len(c.frame), c.tmp, len(c.tmp))
		if err != nil {
			c.logger.Error("qr_generate failed for a fitted frame",
				zap.String("session", session.String()), zap.Int("pos", pos), zap.Error(err))
			pos += min(driverSkipBytes, len(log)-pos)
			continue
		}

		stride := (width + 7) / 8
		if err := fb.PaintBitmap(c.blitter, c.frame, width, stride, c.cfg.ModulePixels, c.cfg.PositionX, c.cfg.PositionY); err != nil {
			c.logger.Error("blitting frame", zap.String("session", session.String()), zap.Error(err))
		}

		frames++
		time.Sleep(c.cfg.FrameDelay)
		pos += res.Consumed
	}
	c.logger.Info("capture session complete", zap.String("session", session.String()), zap.Int("frames", frames))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
