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

package digest

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

const Length = 16

// Digest is a 128-bit MD5 digest, word 0 of the accumulator first.
type Digest [Length]byte

var (
	errInvalidLength = errors.New("digest: invalid length")
	errInvalidText   = errors.New("digest: invalid text")
)

func ParseHex(s string) (Digest, error) {
	var d Digest
	err := d.UnmarshalText([]byte(s))
	return d, err
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Base64 returns the form used by the Content-MD5 header.
func (d Digest) Base64() string {
	return base64.StdEncoding.EncodeToString(d[:])
}

func (d Digest) MarshalText() ([]byte, error) {
	text := make([]byte, hex.EncodedLen(Length))
	hex.Encode(text, d[:])
	return text, nil
}

func (d *Digest) UnmarshalText(text []byte) error {
	if len(text) != hex.EncodedLen(Length) {
		return fmt.Errorf("%w: %q", errInvalidText, text)
	}
	var decoded Digest
	if n, err := hex.Decode(decoded[:], text); err != nil {
		return err
	} else if n != Length {
		return errInvalidText
	}
	*d = decoded
	return nil
}

func (d Digest) MarshalEasyJSON(w *jwriter.Writer) {
	w.String(d.String())
}

func (d *Digest) UnmarshalEasyJSON(l *jlexer.Lexer) {
	if err := d.UnmarshalText([]byte(l.String())); err != nil {
		l.AddError(err)
	}
}

func (d Digest) MarshalBinary() ([]byte, error) {
	result := make([]byte, Length)
	copy(result, d[:])
	return result, nil
}

func (d *Digest) UnmarshalBinary(data []byte) error {
	if len(data) != Length {
		return errInvalidLength
	}
	copy(d[:], data)
	return nil
}

// Populate copies the current sum of h, which must be an MD5 hash.
func (d *Digest) Populate(h hash.Hash) {
	sum := h.Sum(nil)
	if len(sum) != Length {
		panic("bad hash.Sum() length")
	}
	copy(d[:], sum)
}
