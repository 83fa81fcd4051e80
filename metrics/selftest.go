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
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type selfTest struct {
	Runs         prometheus.Counter
	Passed       prometheus.Counter
	Failed       prometheus.Counter
	BytesHashed  prometheus.Counter
	LastOk       prometheus.Gauge
	registerOnce sync.Once
}

var (
	SelfTest = selfTest{
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "md5context",
			Subsystem: "selftest",
			Name:      "runs_total",
			Help:      "Number of self-test runs.",
		}),
		Passed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "md5context",
			Subsystem: "selftest",
			Name:      "passed_total",
			Help:      "Number of vector and feeding plan checks that produced the expected digest.",
		}),
		Failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "md5context",
			Subsystem: "selftest",
			Name:      "failed_total",
			Help:      "Number of vector and feeding plan checks that produced a wrong digest.",
		}),
		BytesHashed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "md5context",
			Subsystem: "selftest",
			Name:      "hashed_bytes_total",
			Help:      "Total message bytes hashed by the self-test.",
		}),
		LastOk: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "md5context",
			Subsystem: "selftest",
			Name:      "last_ok",
			Help:      "1 if the last self-test run passed.",
		}),
	}
)

func (c *selfTest) RegisterMetrics() {
	c.registerOnce.Do(func() {
		prometheus.MustRegister(c.Runs)
		prometheus.MustRegister(c.Passed)
		prometheus.MustRegister(c.Failed)
		prometheus.MustRegister(c.BytesHashed)
		prometheus.MustRegister(c.LastOk)
	})
}
