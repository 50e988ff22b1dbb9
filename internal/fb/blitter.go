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

// Package fb implements the framebuffer blitter collaborator spec.md §1
// explicitly puts out of scope for the core but §6 still requires a
// concrete implementation of, since a capture daemon that cannot draw is
// not runnable. Pixel blitting here means one thing: paint a solid
// rectangle of a single color. Color conversion, multi-bit-depth support,
// and anything fancier stay out of scope per the same section.
package fb

// Blitter paints solid rectangles. internal/capture depends only on this
// interface so a capture run can be driven against a fake in tests; the
// Linux implementation (fb_linux.go) is the only concrete instance.
type Blitter interface {
	// FillRect paints a w x h rectangle at (x, y) with color (packed per
	// the blitter's own pixel format).
	FillRect(x, y, w, h int, color uint32) error
	// Width and Height report the blitter's drawable surface, in pixels.
	Width() int
	Height() int
}
