// Package telemetry exposes the service's Prometheus metric vectors.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crosscheck_provider_requests_total",
			Help: "Total number of evidence provider queries attempted",
		},
		[]string{"provider"},
	)

	ProviderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crosscheck_provider_failures_total",
			Help: "Total number of evidence provider queries that failed",
		},
		[]string{"provider"},
	)

	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "crosscheck_provider_duration_seconds",
			Help: "Duration of evidence provider queries in seconds",
		},
		[]string{"provider"},
	)

	Verdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crosscheck_verdicts_total",
			Help: "Verdicts produced, by outcome",
		},
		[]string{"verdict"},
	)

	VerificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "crosscheck_verification_duration_seconds",
			Help: "End-to-end duration of claim verification in seconds",
		},
	)
)
