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

// Package config loads the daemon's small configuration surface: the QR
// version to target, the ZSTD compression level, the inter-frame delay,
// and the on-screen position and size the blitter draws into. None of
// this is read by the core (internal/qr, internal/fitter); it is plumbed
// in once at startup and handed to internal/capture as plain values.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the daemon's full configuration surface, loadable from the
// environment with the PANICQR_ prefix (e.g. PANICQR_VERSION=20).
type Config struct {
	// Version is the QR symbol version (1..40) every frame is rendered at.
	Version int `envconfig:"VERSION" default:"20"`
	// CompressionLevel is the ZSTD level (1..22) used by the fitter.
	CompressionLevel int `envconfig:"COMPRESSION_LEVEL" default:"3"`
	// FrameDelay is how long the driver pauses after blitting a frame,
	// giving a scanner time to acquire it before the next is drawn.
	FrameDelay time.Duration `envconfig:"FRAME_DELAY" default:"1500ms"`
	// PositionX and PositionY are the top-left corner, in pixels, where
	// the quiet zone begins.
	PositionX int `envconfig:"POSITION_X" default:"0"`
	PositionY int `envconfig:"POSITION_Y" default:"0"`
	// ModulePixels is the side length, in framebuffer pixels, of one QR
	// module; the blitter draws each module as a ModulePixels x
	// ModulePixels square.
	ModulePixels int `envconfig:"MODULE_PIXELS" default:"4"`
}

// Load reads Config from the environment, applying defaults for any unset
// field, then validates it.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("panicqr", &c); err != nil {
		return Config{}, fmt.Errorf("config: reading environment: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every field against the bounds the core and the
// collaborators impose (spec.md §6).
func (c Config) Validate() error {
	if c.Version < 1 || c.Version > 40 {
		return fmt.Errorf("config: version %d out of range [1,40]", c.Version)
	}
	if c.CompressionLevel < 1 || c.CompressionLevel > 22 {
		return fmt.Errorf("config: compression level %d out of range [1,22]", c.CompressionLevel)
	}
	if c.FrameDelay < 0 {
		return fmt.Errorf("config: frame delay %s must not be negative", c.FrameDelay)
	}
	if c.ModulePixels < 1 {
		return fmt.Errorf("config: module pixel size %d must be positive", c.ModulePixels)
	}
	if c.PositionX < 0 || c.PositionY < 0 {
		return fmt.Errorf("config: position (%d, %d) must not be negative", c.PositionX, c.PositionY)
	}
	return nil
}
