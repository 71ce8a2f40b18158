// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const actionLabel = "action"

type processorMetrics struct {
	executed *prometheus.CounterVec
	failed   *prometheus.CounterVec
	invalid  prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*processorMetrics, error) {
	m := &processorMetrics{
		executed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "processor",
			Name:      "executed",
			Help:      "number of instructions executed successfully",
		}, []string{actionLabel}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "processor",
			Name:      "failed",
			Help:      "number of instructions that returned an error",
		}, []string{actionLabel}),
		invalid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "processor",
			Name:      "invalid",
			Help:      "number of instructions that could not be decoded",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.executed),
		r.Register(m.failed),
		r.Register(m.invalid),
	)
	return m, errs.Err
}
