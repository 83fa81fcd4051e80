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

import "math/bits"

func f(x, y, z uint32) uint32 {
	return (x & y) | (^x & z)
}

func g(x, y, z uint32) uint32 {
	return (x & z) | (y & ^z)
}

func h(x, y, z uint32) uint32 {
	return x ^ y ^ z
}

func i(x, y, z uint32) uint32 {
	return y ^ (x | ^z)
}

func rotateLeft(x uint32, n uint) uint32 {
	return bits.RotateLeft32(x, int(n))
}
