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

package fb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grkuntzmd/panicqr/internal/fb"
)

// fakeBlitter records every FillRect call instead of touching real memory.
type fakeBlitter struct {
	calls int
	last  struct{ x, y, w, h int; color uint32 }
}

func (f *fakeBlitter) FillRect(x, y, w, h int, color uint32) error {
	f.calls++
	f.last.x, f.last.y, f.last.w, f.last.h, f.last.color = x, y, w, h, color
	return nil
}

func (f *fakeBlitter) Width() int  { return 1024 }
func (f *fakeBlitter) Height() int { return 768 }

func TestPaintBitmapDrawsQuietZoneThenModules(t *testing.T) {
	// A 3x3 bitmap, stride 1, with only the center module dark.
	width, stride := 3, 1
	bitmap := []byte{0b00000000, 0b01000000, 0b00000000}

	bl := &fakeBlitter{}
	err := fb.PaintBitmap(bl, bitmap, width, stride, 2, 10, 20)
	require.NoError(t, err)

	// One call for the quiet-zone background, then one per dark module.
	assert.Equal(t, 2, bl.calls)
	assert.Equal(t, fb.ColorBlack, bl.last.color)
}

func TestPaintBitmapAllLight(t *testing.T) {
	width, stride := 2, 1
	bitmap := []byte{0x00, 0x00}

	bl := &fakeBlitter{}
	err := fb.PaintBitmap(bl, bitmap, width, stride, 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, bl.calls) // only the background fill
}
