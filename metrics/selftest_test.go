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

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegisterMetricsOnce(t *testing.T) {
	SelfTest.RegisterMetrics()
	SelfTest.RegisterMetrics()

	collectors := map[string]prometheus.Collector{
		"runs":         SelfTest.Runs,
		"passed":       SelfTest.Passed,
		"failed":       SelfTest.Failed,
		"bytes_hashed": SelfTest.BytesHashed,
		"last_ok":      SelfTest.LastOk,
	}
	for name, c := range collectors {
		err := prometheus.DefaultRegisterer.Register(c)
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			t.Errorf("%s: expected AlreadyRegisteredError got %v", name, err)
			continue
		}
		if already.ExistingCollector != c {
			t.Errorf("%s: a different collector is registered", name)
		}
	}
}
