/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsSubsystem = "leads"

	metricsLabelForm     = "form"
	metricsLabelResult   = "result"
	metricsLabelEndpoint = "endpoint"
)

// Submission result label values.
const (
	metricsResultAccepted        = "accepted"
	metricsResultValidationError = "validation_error"
	metricsResultStorageError    = "storage_error"
	metricsResultInternalError   = "internal_error"
)

// MetricsCollector represents collector of metrics for the lead-capture API.
type MetricsCollector struct {
	Submissions      *prometheus.CounterVec
	RateLimitRejects *prometheus.CounterVec
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector(namespace string) *MetricsCollector {
	return &MetricsCollector{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "submissions_total",
			Help:      "The total number of form submissions by form type and result.",
		}, []string{metricsLabelForm, metricsLabelResult}),
		RateLimitRejects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "rate_limit_rejects_total",
			Help:      "The total number of requests rejected by admission control.",
		}, []string{metricsLabelEndpoint}),
	}
}

// MustRegister does registration of metrics collector in Prometheus and panics if any error occurs.
func (c *MetricsCollector) MustRegister() {
	prometheus.MustRegister(c.Submissions, c.RateLimitRejects)
}

// Unregister cancels registration of metrics collector in Prometheus.
func (c *MetricsCollector) Unregister() {
	prometheus.Unregister(c.Submissions)
	prometheus.Unregister(c.RateLimitRejects)
}

func (c *MetricsCollector) observeSubmission(form, result string) {
	c.Submissions.With(prometheus.Labels{metricsLabelForm: form, metricsLabelResult: result}).Inc()
}

func (c *MetricsCollector) observeRateLimitReject(endpoint string) {
	c.RateLimitRejects.With(prometheus.Labels{metricsLabelEndpoint: endpoint}).Inc()
}
