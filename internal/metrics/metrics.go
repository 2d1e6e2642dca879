/*
SPDX-FileCopyrightText: 2026 livepatch-k8s-operator contributors
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

const (
	prefix = "livepatch_operator"
)

var (
	Reconciles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_reconcile_total",
			Help: "Total number of reconciliations per controller",
		},
		[]string{"controller"},
	)
	ReconcileErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_reconcile_errors_total",
			Help: "Total number of reconciliation errors per controller and type",
		},
		[]string{"controller", "type"},
	)
	Operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_operations_total",
			Help: "Dependent object operations per controller and action",
		},
		[]string{"controller", "action"},
	)
	TokenExchanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_token_exchanges_total",
			Help: "Resource token exchanges against the contracts API, per outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		Reconciles,
		ReconcileErrors,
		Operations,
		TokenExchanges,
	)
}
