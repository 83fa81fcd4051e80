// Copyright 2026 RetailNext, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package md5ctx

import "encoding/binary"

// block runs the 64 round compression function over one full block and folds
// the result into s.
func block(s *[4]uint32, p *[BlockSize]byte) {
	a, b, c, d := s[0], s[1], s[2], s[3]

	for round := 0; round < BlockSize; round++ {
		var mixed uint32
		var word int
		switch {
		case round < 16:
			mixed = f(b, c, d)
			word = round
		case round < 32:
			mixed = g(b, c, d)
			word = (5*round + 1) % 16
		case round < 48:
			mixed = h(b, c, d)
			word = (3*round + 5) % 16
		default:
			mixed = i(b, c, d)
			word = (7 * round) % 16
		}

		temp := a + mixed + k[round] + binary.LittleEndian.Uint32(p[word*4:])
		a, b, c, d = d, b+rotateLeft(temp, shifts[round]), b, c
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
}
