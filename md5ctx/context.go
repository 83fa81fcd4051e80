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

// Package md5ctx computes MD5 digests (RFC 1321) with a fixed-size,
// allocation-free streaming context.
//
// MD5 is cryptographically broken. It is provided for checksums and
// interoperability, not for security.
package md5ctx

import (
	"encoding/binary"
	"errors"

	"github.com/retailnext/md5context/digest"
)

var (
	// ErrFinished is the panic value for any mutation of a finished Context.
	ErrFinished = errors.New("md5ctx: context already finished")
	// ErrCommitOverflow is the panic value for a Commit that would run past the end of the block buffer.
	ErrCommitOverflow = errors.New("md5ctx: commit past end of input buffer")
)

// Context is the running state of one MD5 computation.
//
// The zero value is ready to use; New is a convenience. A Context must not be
// used from multiple goroutines at once. Finish is terminal: afterwards every
// mutating method panics with ErrFinished until Reset is called.
type Context struct {
	len      uint64
	input    [BlockSize]byte
	s        [4]uint32
	blocks   uint64
	finished bool
	// initialized is false only for a zero value that has not been fed yet.
	initialized bool
}

func New() Context {
	var c Context
	c.Reset()
	return c
}

func (c *Context) Reset() {
	c.len = 0
	c.input = [BlockSize]byte{}
	c.s = [4]uint32{init0, init1, init2, init3}
	c.blocks = 0
	c.finished = false
	c.initialized = true
}

// initialize loads the initial accumulator into a zero value. It leaves
// input alone so bytes already placed through Input survive.
func (c *Context) initialize() {
	if !c.initialized {
		c.s = [4]uint32{init0, init1, init2, init3}
		c.initialized = true
	}
}

// Len returns the number of message bytes fed so far.
func (c *Context) Len() uint64 {
	return c.len
}

// Blocks returns the number of blocks compressed so far.
func (c *Context) Blocks() uint64 {
	return c.blocks
}

func (c *Context) Finished() bool {
	return c.finished
}

// Offset returns the position in Input where the next message byte belongs.
func (c *Context) Offset() int {
	return int(c.len % BlockSize)
}

// Input exposes the block buffer for callers that fill it directly (for
// example from memory shared with another runtime). Write bytes starting at
// Offset, then report them with Commit.
func (c *Context) Input() *[BlockSize]byte {
	return &c.input
}

// Write appends p to the message. It never fails and always reports len(p).
func (c *Context) Write(p []byte) (int, error) {
	c.mustNotBeFinished()
	n := len(p)
	for len(p) > 0 {
		copied := copy(c.input[c.Offset():], p)
		p = p[copied:]
		c.advance(copied)
	}
	return n, nil
}

// Commit records n bytes already written into Input at Offset. n may not
// exceed BlockSize-Offset().
func (c *Context) Commit(n int) {
	c.mustNotBeFinished()
	if n < 0 || n > BlockSize-c.Offset() {
		panic(ErrCommitOverflow)
	}
	c.advance(n)
}

// advance is the single block-boundary check shared by Write and Commit.
func (c *Context) advance(n int) {
	if n == 0 {
		return
	}
	c.initialize()
	c.len += uint64(n)
	if c.len%BlockSize == 0 {
		c.step()
	}
}

func (c *Context) step() {
	block(&c.s, &c.input)
	c.blocks++
}

// Finish pads the message, compresses the final block(s) and returns the
// digest. The Context is finished afterwards.
func (c *Context) Finish() digest.Digest {
	c.mustNotBeFinished()
	c.initialize()

	offset := c.Offset()
	padLen := 56 - offset
	if offset >= 56 {
		padLen = 120 - offset
	}
	if _, err := c.Write(padding[:padLen]); err != nil {
		panic(err)
	}
	c.len -= uint64(padLen)

	binary.LittleEndian.PutUint64(c.input[lengthOffset:], c.len*8)
	c.step()
	c.finished = true

	var result digest.Digest
	for n, word := range c.s {
		binary.LittleEndian.PutUint32(result[n*4:], word)
	}
	return result
}

func (c *Context) mustNotBeFinished() {
	if c.finished {
		panic(ErrFinished)
	}
}

// Sum returns the MD5 digest of data.
func Sum(data []byte) digest.Digest {
	c := New()
	if _, err := c.Write(data); err != nil {
		panic(err)
	}
	return c.Finish()
}
