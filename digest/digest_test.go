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
	"crypto/md5"
	"crypto/rand"
	"errors"
	"fmt"
	"testing"

	"github.com/go-test/deep"
	"github.com/mailru/easyjson"
)

func randomDigest() Digest {
	var d Digest
	if _, err := rand.Read(d[:]); err != nil {
		panic(err)
	}
	return d
}

func TestDigestEasyJSON(t *testing.T) {
	d1 := randomDigest()

	jsonBytes, err := easyjson.Marshal(d1)
	if err != nil {
		t.Fatal(err)
	}
	if string(jsonBytes) != `"`+d1.String()+`"` {
		t.Fatalf("wrong json %s", jsonBytes)
	}

	var d2 Digest
	if err := easyjson.Unmarshal(jsonBytes, &d2); err != nil {
		t.Fatal(err)
	}

	if diff := deep.Equal(d1, d2); diff != nil {
		t.Fatal(diff)
	}
}

func TestDigestEasyJSONRejectsBadLength(t *testing.T) {
	var d Digest
	if err := easyjson.Unmarshal([]byte(`"d41d8cd9"`), &d); err == nil {
		t.Fatal("expected error")
	}
}

type textTestCase struct {
	text    string
	base64  string
	invalid bool
}

func (tc textTestCase) test() string {
	d, err := ParseHex(tc.text)
	if tc.invalid {
		if err == nil {
			return "expected parse error"
		}
		return ""
	}
	if err != nil {
		return err.Error()
	}
	if d.String() != tc.text {
		return "wrong String() " + d.String()
	}
	if d.Base64() != tc.base64 {
		return "wrong Base64() " + d.Base64()
	}
	marshalled, err := d.MarshalBinary()
	if err != nil {
		return err.Error()
	}
	var roundTrip Digest
	if err := roundTrip.UnmarshalBinary(marshalled); err != nil {
		return err.Error()
	}
	if roundTrip != d {
		return "binary round trip mismatch"
	}
	return ""
}

var textCases = []textTestCase{
	{
		text:   "d41d8cd98f00b204e9800998ecf8427e",
		base64: "1B2M2Y8AsgTpgAmY7PhCfg==",
	},
	{
		text:   "900150983cd24fb0d6963f7d28e17f72",
		base64: "kAFQmDzST7DWlj99KOF/cg==",
	},
	{
		text:    "900150983cd24fb0d6963f7d28e17f7",
		invalid: true,
	},
	{
		text:    "zz0150983cd24fb0d6963f7d28e17f72",
		invalid: true,
	},
	{
		text:    "",
		invalid: true,
	},
}

func TestDigestText(t *testing.T) {
	for i, tc := range textCases {
		if msg := tc.test(); msg != "" {
			t.Errorf("case %d: %s", i, msg)
		}
	}
}

func TestDigestUnmarshalBinaryLength(t *testing.T) {
	var d Digest
	if err := d.UnmarshalBinary(make([]byte, Length+1)); err != errInvalidLength {
		t.Fatalf("expected errInvalidLength got %v", err)
	}
}

func TestPopulate(t *testing.T) {
	h := md5.New()
	if _, err := h.Write([]byte("abc")); err != nil {
		panic(err)
	}
	var d Digest
	d.Populate(h)
	if d.String() != "900150983cd24fb0d6963f7d28e17f72" {
		t.Fatalf("wrong digest %s", d)
	}
}

func TestVerify(t *testing.T) {
	d1 := randomDigest()
	d2 := d1
	if err := Verify(d1, d2); err != nil {
		t.Fatal(err)
	}

	d2[0] ^= 0xff
	err := Verify(d1, d2)
	if !IsMismatch(err) {
		t.Fatalf("expected mismatch got %v", err)
	}
	var mismatch MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatal("errors.As failed")
	}
	if mismatch.Expected() != d1 || mismatch.Actual() != d2 {
		t.Fatalf("wrong mismatch contents %+v", mismatch)
	}
}

func TestIsMismatch(t *testing.T) {
	mismatch := Verify(randomDigest(), randomDigest())
	pointer := &MismatchError{expected: randomDigest(), actual: randomDigest()}
	cases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"value", mismatch, true},
		{"pointer", pointer, true},
		{"wrapped value", fmt.Errorf("vector abc: %w", mismatch), true},
		{"wrapped pointer", fmt.Errorf("vector abc: %w", pointer), true},
		{"unrelated", errInvalidLength, false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		if actual := IsMismatch(tc.err); actual != tc.expected {
			t.Errorf("%s: expected %v got %v", tc.name, tc.expected, actual)
		}
	}
}
