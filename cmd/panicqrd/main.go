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

//go:build linux

// Command panicqrd is the capture daemon: it waits for a kernel panic,
// drains /dev/kmsg, and broadcasts the log as a sequence of QR symbols on
// the framebuffer until the log is exhausted.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/grkuntzmd/panicqr/internal/capture"
	"github.com/grkuntzmd/panicqr/internal/config"
	"github.com/grkuntzmd/panicqr/internal/fb"
	"github.com/grkuntzmd/panicqr/internal/fitter"
)

// logBufSize bounds how much of the kernel log ring a single capture
// session can hold; large enough to cover several megabytes of panic
// output without growing at runtime.
const logBufSize = 4 << 20

func main() {
	app := cli.NewApp()
	app.Name = "panicqrd"
	app.Usage = "broadcast the kernel log as QR symbols after a panic"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "kmsg", Value: "/dev/kmsg", Usage: "kernel log device"},
		cli.StringFlag{Name: "fb", Value: "/dev/fb0", Usage: "framebuffer device"},
		cli.IntFlag{Name: "version", Usage: "QR version override (defaults to PANICQR_VERSION)"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "panicqrd:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if v := c.Int("version"); v != 0 {
		cfg.Version = v
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	compressor, err := fitter.NewZstdCompressor(cfg.CompressionLevel)
	if err != nil {
		return fmt.Errorf("building compressor: %w", err)
	}
	defer compressor.Close()

	blitter, err := fb.Open(c.String("fb"))
	if err != nil {
		return fmt.Errorf("opening framebuffer: %w", err)
	}
	defer blitter.Close()

	kmsg := capture.NewKmsgReader(c.String("kmsg"))
	notifier := capture.NewPanicWatcher(c.String("kmsg"))

	captureCtx := capture.New(cfg, logger, compressor, blitter, kmsg, logBufSize)

	runCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("panicqrd starting",
		zap.Int("version", cfg.Version),
		zap.Int("compression_level", cfg.CompressionLevel),
		zap.Duration("frame_delay", cfg.FrameDelay),
		zap.String("kmsg", c.String("kmsg")),
		zap.String("fb", c.String("fb")))

	if err := captureCtx.Run(runCtx, notifier); err != nil {
		if runCtx.Err() != nil {
			logger.Info("panicqrd shutting down", zap.Error(err))
			return nil
		}
		return fmt.Errorf("capture loop exited: %w", err)
	}
	return nil
}
