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
	"hash"

	"github.com/retailnext/md5context/digest"
)

// Hasher adapts a Context to hash.Hash. Sum finishes a copy of the running
// Context, so writing may continue afterwards.
type Hasher struct {
	ctx Context
}

var _ hash.Hash = (*Hasher)(nil)

// NewHash returns a hash.Hash computing MD5. The returned value also
// implements encoding.BinaryMarshaler and encoding.BinaryUnmarshaler.
func NewHash() hash.Hash {
	return &Hasher{ctx: New()}
}

func (h *Hasher) Write(p []byte) (int, error) {
	return h.ctx.Write(p)
}

func (h *Hasher) Sum(in []byte) []byte {
	d := h.Digest()
	return append(in, d[:]...)
}

// Digest returns the digest of everything written so far.
func (h *Hasher) Digest() digest.Digest {
	finishing := h.ctx
	return finishing.Finish()
}

func (h *Hasher) Reset() {
	h.ctx.Reset()
}

func (h *Hasher) Size() int {
	return Size
}

func (h *Hasher) BlockSize() int {
	return BlockSize
}

func (h *Hasher) MarshalBinary() ([]byte, error) {
	return h.ctx.MarshalBinary()
}

func (h *Hasher) UnmarshalBinary(data []byte) error {
	return h.ctx.UnmarshalBinary(data)
}
