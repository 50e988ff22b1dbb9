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

package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSVGRejectsNegativeBorder(t *testing.T) {
	_, err := ToSVG([]byte{0}, 1, 1, -1)
	assert.Error(t, err)
}

func TestToSVGEmitsOnePathCommandPerDarkModule(t *testing.T) {
	// 2x2 bitmap, stride 1: top-left and bottom-right modules dark.
	bitmap := []byte{0b10000000, 0b01000000}
	svg, err := ToSVG(bitmap, 2, 1, 0)
	require.NoError(t, err)
	assert.Contains(t, svg, "M0,0h1v1h-1z")
	assert.Contains(t, svg, "M1,1h1v1h-1z")
}
