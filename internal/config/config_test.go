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

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsDefaults(t *testing.T) {
	c := Config{Version: 20, CompressionLevel: 3, FrameDelay: 1500 * time.Millisecond, ModulePixels: 4}
	assert.NoError(t, c.Validate())
}

func TestValidateRejectsBadVersion(t *testing.T) {
	c := Config{Version: 0, CompressionLevel: 3, ModulePixels: 4}
	assert.Error(t, c.Validate())

	c.Version = 41
	assert.Error(t, c.Validate())
}

func TestValidateRejectsBadCompressionLevel(t *testing.T) {
	c := Config{Version: 1, CompressionLevel: 23, ModulePixels: 4}
	assert.Error(t, c.Validate())

	c.CompressionLevel = 0
	assert.Error(t, c.Validate())
}

func TestValidateRejectsNegativeDelay(t *testing.T) {
	c := Config{Version: 1, CompressionLevel: 1, ModulePixels: 4, FrameDelay: -time.Second}
	assert.Error(t, c.Validate())
}

func TestValidateRejectsNegativePosition(t *testing.T) {
	c := Config{Version: 1, CompressionLevel: 1, ModulePixels: 4, PositionX: -1}
	assert.Error(t, c.Validate())
}
