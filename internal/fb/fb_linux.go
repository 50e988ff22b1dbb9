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

// Package fb implements the framebuffer blitter collaborator spec.md §1
// explicitly puts out of scope for the core but §6 still requires a
// concrete implementation of, since a capture daemon that cannot draw is
// not runnable. Pixel blitting here means one thing: paint a solid
// rectangle of a single color. Color conversion, multi-bit-depth support,
// and anything fancier stay out of scope per the same section.
package fb

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// LinuxFB is a Blitter backed by an mmap'd /dev/fb0 in 32-bit-per-pixel
// mode, modeled after how a no-userspace-compositor embedded target
// typically exposes its display.
type LinuxFB struct {
	file   *os.File
	mem    []byte
	width  int
	height int
	stride int // bytes per row
	bpp    int // bytes per pixel
}

// Open maps path (usually "/dev/fb0") and reads its fixed/variable screen
// info via the FBIOGET ioctls to learn geometry.
func Open(path string) (*LinuxFB, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("fb: opening %s: %w", path, err)
	}

	vinfo, err := unix.IoctlGetFbVarScreeninfo(int(f.Fd()))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("fb: FBIOGET_VSCREENINFO: %w", err)
	}
	finfo, err := unix.IoctlGetFbFixScreeninfo(int(f.Fd()))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("fb: FBIOGET_FSCREENINFO: %w", err)
	}

	size := int(finfo.Smem_len)
	mem, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("fb: mmap: %w", err)
	}

	return &LinuxFB{
		file:   f,
		mem:    mem,
		width:  int(vinfo.Xres),
		height: int(vinfo.Yres),
		stride: int(finfo.Line_length),
		bpp:    int(vinfo.Bits_per_pixel) / 8,
	}, nil
}

// Close unmaps the framebuffer and closes the device file.
func (l *LinuxFB) Close() error {
	if err := unix.Munmap(l.mem); err != nil {
		return fmt.Errorf("fb: munmap: %w", err)
	}
	return l.file.Close()
}

func (l *LinuxFB) Width() int  { return l.width }
func (l *LinuxFB) Height() int { return l.height }

// FillRect paints a solid rectangle, clipped to the visible surface.
func (l *LinuxFB) FillRect(x, y, w, h int, color uint32) error {
	if l.bpp != 4 {
		return fmt.Errorf("fb: unsupported bits-per-pixel %d (only 32bpp is implemented)", l.bpp*8)
	}
	x0, y0 := clamp(x, 0, l.width), clamp(y, 0, l.height)
	x1, y1 := clamp(x+w, 0, l.width), clamp(y+h, 0, l.height)

	var px [4]byte
	binary.LittleEndian.PutUint32(px[:], color)

	for row := y0; row < y1; row++ {
		off := row*l.stride + x0*l.bpp
		for col := x0; col < x1; col++ {
			copy(l.mem[off:off+4], px[:])
			off += l.bpp
		}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
