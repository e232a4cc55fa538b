package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const MetricAccountOperation = "account_operation"

type PrometheusMetrics struct {
	accountOperations *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the account metrics on reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		accountOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_account_operations_total",
				Help: "Total number of bank account operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bank_account_operation_duration_seconds",
				Help:    "Bank account operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAccountOperation:
		m.accountOperations.WithLabelValues(tags["operation"], tags["outcome"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.operationDuration.WithLabelValues(name).Observe(duration.Seconds())
}
