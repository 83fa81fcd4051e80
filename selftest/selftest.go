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

// Package selftest runs known-answer checks of md5ctx over every feeding plan.
package selftest

import (
	"fmt"

	"github.com/retailnext/md5context/digest"
	"github.com/retailnext/md5context/metrics"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type VectorError struct {
	Vector string
	Plan   string
	err    error
}

func (e VectorError) Error() string {
	return fmt.Sprintf("selftest vector=%s plan=%s: %s", e.Vector, e.Plan, e.err)
}

func (e VectorError) Unwrap() error {
	return e.err
}

// Check hashes the vector's message using plan p and compares the result.
func Check(v Vector, p Plan) error {
	message, err := v.Message()
	if err != nil {
		return err
	}
	return check(v, p, message)
}

func check(v Vector, p Plan, message []byte) error {
	expected, err := v.Expected()
	if err != nil {
		return err
	}
	if err := digest.Verify(expected, p.Hash(message)); err != nil {
		return VectorError{
			Vector: v.Name,
			Plan:   p.Name,
			err:    err,
		}
	}
	return nil
}

// Run checks every embedded vector against every plan. All failures are
// returned together.
func Run() error {
	return runDocument(vectorsYAML)
}

func runDocument(data []byte) error {
	vectors, err := parseVectors(data)
	if err != nil {
		startRun()
		finishRun(err)
		zap.S().Errorw("selftest_vectors_invalid", "err", err)
		return err
	}
	return RunVectors(vectors)
}

func RunVectors(vectors []Vector) error {
	lgr := zap.S()
	startRun()

	var result error
	for _, v := range vectors {
		message, err := v.Message()
		if err != nil {
			result = multierr.Append(result, err)
			continue
		}
		for _, p := range Plans {
			metrics.SelfTest.BytesHashed.Add(float64(len(message)))
			if err := check(v, p, message); err != nil {
				metrics.SelfTest.Failed.Inc()
				lgr.Errorw("selftest_vector_failed", "vector", v.Name, "plan", p.Name, "err", err)
				result = multierr.Append(result, err)
				continue
			}
			metrics.SelfTest.Passed.Inc()
			lgr.Debugw("selftest_vector_ok", "vector", v.Name, "plan", p.Name, "bytes", len(message))
		}
	}

	finishRun(result)
	if result != nil {
		lgr.Errorw("selftest_failed", "failures", len(multierr.Errors(result)))
		return result
	}
	lgr.Infow("selftest_ok", "vectors", len(vectors), "plans", len(Plans))
	return nil
}

func startRun() {
	metrics.SelfTest.RegisterMetrics()
	metrics.SelfTest.Runs.Inc()
}

func finishRun(err error) {
	if err != nil {
		metrics.SelfTest.LastOk.Set(0)
		return
	}
	metrics.SelfTest.LastOk.Set(1)
}
