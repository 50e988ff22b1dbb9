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
 * Modeled after AshokShau-qrcode's reedsolomon.go (CalculateECCodewords)
 * for the log-domain multiply-and-XOR shape, and
 * grkuntzmd-qrcodegen's reedSolomonComputeRemainder for the shifted-
 * register long division. Unlike either teacher, the generator polynomial
 * is never computed at runtime (spec.md §4.2 requires the ten generator
 * polynomials to be embedded literally) and the remainder is written into
 * a caller-supplied slice instead of being allocated.
 */

package qr

// computeRemainder performs Reed-Solomon long division of data by the
// generator polynomial gen (stored highest power first, leading
// coefficient implicit 1), writing the len(gen) parity bytes into dst.
// dst must have length len(gen); it is used as the division's running
// remainder register and is overwritten.
func computeRemainder(data []byte, gen []byte, dst []byte) {
	for i := range dst {
		dst[i] = 0
	}
	for _, b := range data {
		leader := b ^ dst[0]
		copy(dst, dst[1:])
		dst[len(dst)-1] = 0
		if leader == 0 {
			continue
		}
		factor := logTable[leader]
		for j := 0; j < len(gen); j++ {
			if gen[j] == 0 {
				continue
			}
			dst[j] ^= expTable[(int(factor)+int(logTable[gen[j]]))%255]
		}
	}
}
