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

package selftest

import (
	"github.com/retailnext/md5context/digest"
	"github.com/retailnext/md5context/md5ctx"
)

// Plan is one way of splitting a message across feeding calls.
type Plan struct {
	Name string
	// chunks is cycled through as the sizes of successive calls; empty means one call.
	chunks []int
	// commit feeds through Input/Commit instead of Write.
	commit bool
}

var Plans = []Plan{
	{Name: "whole"},
	{Name: "bytewise", chunks: []int{1}},
	{Name: "split63", chunks: []int{63, 1}},
	{Name: "chunk55", chunks: []int{55}},
	{Name: "chunk64", chunks: []int{64}},
	{Name: "chunk65", chunks: []int{65}},
	{Name: "commit", chunks: []int{7, 64}, commit: true},
}

func (p Plan) Hash(message []byte) digest.Digest {
	c := md5ctx.New()
	for call := 0; len(message) > 0; call++ {
		n := len(message)
		if len(p.chunks) > 0 && p.chunks[call%len(p.chunks)] < n {
			n = p.chunks[call%len(p.chunks)]
		}
		if p.commit {
			n = copy(c.Input()[c.Offset():], message[:n])
			c.Commit(n)
		} else if _, err := c.Write(message[:n]); err != nil {
			panic(err)
		}
		message = message[n:]
	}
	return c.Finish()
}
