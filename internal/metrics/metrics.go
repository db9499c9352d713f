// Package metrics records wizard navigation as Prometheus metrics.
//
// Each Recorder owns a private registry so several wizards in one process
// (and parallel tests) never share counters. Command-line runs persist the
// registry in the node_exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/admitwiz/internal/wizard"
)

// Recorder implements wizard.Observer.
type Recorder struct {
	flow     string
	registry *prometheus.Registry

	navigationTotal  *prometheus.CounterVec
	completionsTotal *prometheus.CounterVec
	progressPercent  *prometheus.GaugeVec
	stepIndex        *prometheus.GaugeVec
}

// NewRecorder creates a Recorder for the named flow.
func NewRecorder(flow string) *Recorder {
	r := &Recorder{
		flow:     flow,
		registry: prometheus.NewRegistry(),

		navigationTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "admitwiz",
				Subsystem: "wizard",
				Name:      "navigation_total",
				Help:      "Total number of navigation requests by action and result",
			},
			[]string{"action", "result"},
		),
		completionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "admitwiz",
				Subsystem: "wizard",
				Name:      "completions_total",
				Help:      "Total number of wizard runs that passed the final check",
			},
			[]string{"flow"},
		),
		progressPercent: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "admitwiz",
				Subsystem: "wizard",
				Name:      "progress_percent",
				Help:      "Progress percentage after the last navigation request",
			},
			[]string{"flow"},
		),
		stepIndex: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "admitwiz",
				Subsystem: "wizard",
				Name:      "step_index",
				Help:      "Zero-based index of the active step",
			},
			[]string{"flow"},
		),
	}

	r.registry.MustRegister(
		r.navigationTotal,
		r.completionsTotal,
		r.progressPercent,
		r.stepIndex,
	)
	return r
}

// Registry exposes the recorder's registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe records one navigation outcome. A completed outcome only counts as a
// navigation; RecordCompletion counts the run once the application is accepted.
func (r *Recorder) Observe(out wizard.Outcome) {
	r.navigationTotal.WithLabelValues(string(out.Action), string(out.Result)).Inc()
	r.progressPercent.WithLabelValues(r.flow).Set(out.Progress)
	r.stepIndex.WithLabelValues(r.flow).Set(float64(out.To))
}

// RecordCompletion counts a finished wizard run.
func (r *Recorder) RecordCompletion() {
	r.completionsTotal.WithLabelValues(r.flow).Inc()
}

// WriteTextfile writes the registry to path in the textfile collector format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
