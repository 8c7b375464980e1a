package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

// WorkflowMetrics counts incident lifecycle events. A nil *WorkflowMetrics records nothing.
type WorkflowMetrics struct {
	submitted     prometheus.Counter
	validations   prometheus.Counter
	nearbyResults prometheus.Histogram
}

func NewWorkflowMetrics(reg prometheus.Registerer) *WorkflowMetrics {
	m := &WorkflowMetrics{
		submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "urban_access",
			Subsystem: "incidents",
			Name:      "submitted_total",
			Help:      "Incidents accepted by the submission pipeline",
		}),
		validations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "urban_access",
			Subsystem: "incidents",
			Name:      "validations_total",
			Help:      "Validation records written",
		}),
		nearbyResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "urban_access",
			Subsystem: "incidents",
			Name:      "nearby_results",
			Help:      "Number of incidents returned by proximity queries",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
	}
	reg.MustRegister(m.submitted, m.validations, m.nearbyResults)
	return m
}

func (m *WorkflowMetrics) incSubmitted() {
	if m != nil {
		m.submitted.Inc()
	}
}

func (m *WorkflowMetrics) incValidations() {
	if m != nil {
		m.validations.Inc()
	}
}

func (m *WorkflowMetrics) observeNearby(n int) {
	if m != nil {
		m.nearbyResults.Observe(float64(n))
	}
}
