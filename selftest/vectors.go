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
	"bytes"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/retailnext/md5context/digest"
	"gopkg.in/yaml.v3"
)

//go:embed vectors.yaml
var vectorsYAML []byte

type Vector struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Hex    string `yaml:"hex"`
	Repeat int    `yaml:"repeat"`
	Digest string `yaml:"digest"`
}

type vectorSet struct {
	Vectors []Vector `yaml:"vectors"`
}

var errNoVectors = errors.New("selftest: no vectors")

// Vectors decodes and validates the embedded vector set.
func Vectors() ([]Vector, error) {
	return parseVectors(vectorsYAML)
}

func parseVectors(data []byte) ([]Vector, error) {
	var set vectorSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	if len(set.Vectors) == 0 {
		return nil, errNoVectors
	}
	for _, v := range set.Vectors {
		if err := v.validate(); err != nil {
			return nil, err
		}
	}
	return set.Vectors, nil
}

func (v Vector) validate() error {
	if v.Name == "" {
		return fmt.Errorf("selftest: vector without name")
	}
	if v.Input != "" && v.Hex != "" {
		return fmt.Errorf("selftest: vector %s sets both input and hex", v.Name)
	}
	if v.Repeat < 0 {
		return fmt.Errorf("selftest: vector %s has negative repeat", v.Name)
	}
	if _, err := v.Expected(); err != nil {
		return fmt.Errorf("selftest: vector %s: %w", v.Name, err)
	}
	if _, err := v.Message(); err != nil {
		return fmt.Errorf("selftest: vector %s: %w", v.Name, err)
	}
	return nil
}

func (v Vector) Expected() (digest.Digest, error) {
	return digest.ParseHex(v.Digest)
}

// Message expands the vector into the bytes to hash.
func (v Vector) Message() ([]byte, error) {
	unit := []byte(v.Input)
	if v.Hex != "" {
		decoded, err := hex.DecodeString(v.Hex)
		if err != nil {
			return nil, err
		}
		unit = decoded
	}
	repeat := v.Repeat
	if repeat == 0 {
		repeat = 1
	}
	return bytes.Repeat(unit, repeat), nil
}
