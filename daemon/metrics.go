// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package daemon

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	opCreate = "create"
	opVote   = "vote"
	opReveal = "reveal"
)

// Metrics counts boundary operations by outcome.
type Metrics struct {
	ops *prometheus.CounterVec
}

// NewMetrics creates the service metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agreement_ops_total",
			Help: "Agreement protocol operations by operation and result.",
		}, []string{"op", "result"}),
	}
	if reg != nil {
		reg.MustRegister(m.ops)
	}
	return m
}

// count records one operation outcome. Safe on a nil receiver so the service
// can run without metrics wired.
func (m *Metrics) count(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = err.Error()
	}
	m.ops.WithLabelValues(op, result).Inc()
}
