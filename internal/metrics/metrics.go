// Package metrics counts submit outcomes and per-field failures for CLI
// sessions. Counters live in a private registry and are written out in the
// node_exporter textfile format on request.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-applyform/pkg/validation"
)

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Recorder holds the counters. A nil Recorder ignores observations.
type Recorder struct {
	registry    *prometheus.Registry
	submits     *prometheus.CounterVec
	fieldErrors *prometheus.CounterVec
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		submits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "applyform",
			Name:      "submits_total",
			Help:      "Submit attempts by command and outcome.",
		}, []string{"command", "outcome"}),
		fieldErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "applyform",
			Name:      "field_errors_total",
			Help:      "Field validation failures reported on rejected submits.",
		}, []string{"command", "field"}),
	}
	r.registry.MustRegister(r.submits, r.fieldErrors)
	return r
}

// Observe records one submit for command. An empty map counts as accepted.
func (r *Recorder) Observe(command string, errs validation.ErrorMap) {
	if r == nil {
		return
	}
	if len(errs) == 0 {
		r.submits.WithLabelValues(command, OutcomeAccepted).Inc()
		return
	}
	r.submits.WithLabelValues(command, OutcomeRejected).Inc()
	for _, field := range errs.Fields() {
		r.fieldErrors.WithLabelValues(command, field).Inc()
	}
}

// ObserveCheck is Observe for the check command.
func (r *Recorder) ObserveCheck(errs validation.ErrorMap) {
	r.Observe("check", errs)
}

// Hook adapts Observe into a callback bound to command.
func (r *Recorder) Hook(command string) func(validation.ErrorMap) {
	return func(errs validation.ErrorMap) {
		r.Observe(command, errs)
	}
}

// Gatherer exposes the registry, e.g. for an HTTP handler or tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile atomically writes the counters to path.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
