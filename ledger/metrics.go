// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	accepted     prometheus.Counter
	rolledBack   prometheus.Counter
	instructions prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "txs_accepted",
			Help:      "number of transactions committed",
		}),
		rolledBack: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "txs_rolled_back",
			Help:      "number of transactions discarded after a failed instruction",
		}),
		instructions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ledger",
			Name:      "instructions",
			Help:      "number of instructions executed in committed transactions",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.accepted),
		r.Register(m.rolledBack),
		r.Register(m.instructions),
	)
	return m, errs.Err
}
