// Package metrics wires Prometheus instrumentation around the codec
// kernel: encode/decode duration and counts, stream-modifier push/finish
// outcomes, and borrow-path attempt results.
//
// Grounded on quay-claircore's datastore/postgres/store_metrics.go, which
// times and counts labeled database queries with promauto's HistogramVec/
// CounterVec pair; this generalizes the same timer-plus-counter shape to
// codec operations instead of SQL queries.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	opLabels = []string{"op", "success"}

	opDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "flexcodec",
		Subsystem: "core",
		Name:      "operation_duration_seconds",
		Help:      "Duration of an EncodeWith/DecodeWith call, by operation and outcome.",
	}, opLabels)
	opTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flexcodec",
		Subsystem: "core",
		Name:      "operation_total",
		Help:      "Count of EncodeWith/DecodeWith calls, by operation and outcome.",
	}, opLabels)

	modifierLabels = []string{"layer", "direction", "success"}
	modifierTotal  = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flexcodec",
		Subsystem: "modifier",
		Name:      "finish_total",
		Help:      "Count of stream-modifier Finish calls, by layer name, direction and outcome.",
	}, modifierLabels)

	borrowLabels = []string{"kind", "outcome"}
	borrowTotal  = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flexcodec",
		Subsystem: "borrow",
		Name:      "attempt_total",
		Help:      "Count of borrow-path attempts, by value kind and outcome (ok, recoverable, fatal).",
	}, borrowLabels)
)

// Op tracks one EncodeWith/DecodeWith call. Call StartOp, defer the
// returned Op's Finish with a pointer to the operation's error variable,
// and assign that variable before Finish runs — mirrors claircore's
// query.Start(err *error) idiom.
type Op struct {
	name    string
	success string
	timer   *prometheus.Timer
}

// StartOp begins timing an operation named name ("encode" or "decode",
// typically, or a caller-chosen identifier for a specific wire message).
func StartOp(name string) *Op {
	o := &Op{name: name}
	o.timer = prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		opDuration.With(prometheus.Labels{"op": name, "success": o.success}).Observe(v)
	}))
	return o
}

// Finish records the outcome of the operation StartOp began. Call it with
// a pointer to the error the operation returned (nil on success).
func (o *Op) Finish(err *error) {
	o.success = strconv.FormatBool(*err == nil)
	opTotal.With(prometheus.Labels{"op": o.name, "success": o.success}).Inc()
	if o.timer != nil {
		o.timer.ObserveDuration()
	}
}

// ObserveModifierFinish records a stream-modifier layer's Finish
// outcome. direction is "write" or "read".
func ObserveModifierFinish(layer, direction string, err error) {
	modifierTotal.With(prometheus.Labels{
		"layer":     layer,
		"direction": direction,
		"success":   strconv.FormatBool(err == nil),
	}).Inc()
}

// ObserveBorrowAttempt records a borrow-path attempt outcome: "ok",
// "recoverable" (caller may retry via the owned path) or "fatal".
func ObserveBorrowAttempt(kind, outcome string) {
	borrowTotal.With(prometheus.Labels{"kind": kind, "outcome": outcome}).Inc()
}
