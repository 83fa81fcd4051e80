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
	"errors"
	"fmt"
)

type MismatchError struct {
	expected Digest
	actual   Digest
}

func (e MismatchError) Expected() Digest {
	return e.expected
}

func (e MismatchError) Actual() Digest {
	return e.actual
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("digest mismatch: expected=%s actual=%s", e.expected, e.actual)
}

// IsMismatch reports whether err, or any error it wraps, is a MismatchError.
func IsMismatch(err error) bool {
	var value MismatchError
	if errors.As(err, &value) {
		return true
	}
	var pointer *MismatchError
	return errors.As(err, &pointer)
}

// Verify returns a MismatchError when actual differs from expected.
func Verify(expected, actual Digest) error {
	if expected != actual {
		return MismatchError{
			expected: expected,
			actual:   actual,
		}
	}
	return nil
}
