// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	instructions *prometheus.CounterVec
	failed       prometheus.Counter
	processTime  metric.Averager
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()

	processTime, err := metric.NewAverager(
		"program_process_time",
		"time spent processing an instruction",
		r,
	)
	if err != nil {
		return nil, nil, err
	}

	m := &metrics{
		instructions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "program",
			Name:      "instructions",
			Help:      "number of instructions applied",
		}, []string{"instruction"}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "program",
			Name:      "failed",
			Help:      "number of failed invocations",
		}),
		processTime: processTime,
	}

	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.instructions),
		r.Register(m.failed),
	)
	return r, m, errs.Err
}
