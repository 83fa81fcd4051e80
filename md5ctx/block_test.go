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

import (
	"encoding/binary"
	"testing"
)

func TestBlockOfPaddedEmptyMessage(t *testing.T) {
	var p [BlockSize]byte
	p[0] = 0x80
	s := [4]uint32{init0, init1, init2, init3}
	block(&s, &p)

	var out [Size]byte
	for n, word := range s {
		binary.LittleEndian.PutUint32(out[n*4:], word)
	}
	if actual := Sum(nil); actual != out {
		t.Fatalf("block gave %x, Sum gave %s", out, actual)
	}
}
