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
	"errors"
)

// The state encoding matches crypto/md5 so states can move between the two.
const (
	stateMagic         = "md5\x01"
	marshaledStateSize = len(stateMagic) + 4*4 + BlockSize + 8
)

var (
	errInvalidStateIdentifier = errors.New("md5ctx: invalid hash state identifier")
	errInvalidStateSize       = errors.New("md5ctx: invalid hash state size")
)

func (c *Context) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(make([]byte, 0, marshaledStateSize))
}

func (c *Context) AppendBinary(b []byte) ([]byte, error) {
	if c.finished {
		return nil, ErrFinished
	}
	c.initialize()
	b = append(b, stateMagic...)
	for _, word := range c.s {
		b = binary.BigEndian.AppendUint32(b, word)
	}
	pending := c.Offset()
	b = append(b, c.input[:pending]...)
	b = append(b, make([]byte, BlockSize-pending)...)
	b = binary.BigEndian.AppendUint64(b, c.len)
	return b, nil
}

func (c *Context) UnmarshalBinary(data []byte) error {
	if len(data) < len(stateMagic) || string(data[:len(stateMagic)]) != stateMagic {
		return errInvalidStateIdentifier
	}
	if len(data) != marshaledStateSize {
		return errInvalidStateSize
	}
	data = data[len(stateMagic):]
	for n := range c.s {
		c.s[n] = binary.BigEndian.Uint32(data)
		data = data[4:]
	}
	if copy(c.input[:], data) != BlockSize {
		panic("bad copy")
	}
	data = data[BlockSize:]
	c.len = binary.BigEndian.Uint64(data)
	c.blocks = c.len / BlockSize
	c.finished = false
	c.initialized = true
	return nil
}
