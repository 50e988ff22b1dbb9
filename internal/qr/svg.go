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
 * Adapted from the teacher's (*QRCode).ToSVGString (qrcode.go), reading a
 * packed 1-bpp bitmap instead of a [][]module matrix. Not part of the
 * hard core; exists solely so cmd/panicqr-preview has something to render
 * without camera hardware.
 */

package qr

import (
	"fmt"
	"strings"
)

// ToSVG renders a packed 1-bpp bitmap (as produced by Generate) of the
// given width/stride as an SVG document with border quiet-zone modules on
// every side.
func ToSVG(bitmap []byte, width, stride, border int) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("qr: border must be non-negative")
	}

	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", width+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	first := true
	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			idx := y*stride + x/8
			shift := uint(7 - x%8)
			if bitmap[idx]>>shift&1 == 0 {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
