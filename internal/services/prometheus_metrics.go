package services

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricRecordsCreated         = "records_created"
	MetricRecordsUpdated         = "records_updated"
	MetricRecordsDeleted         = "records_deleted"
	MetricConcurrentModification = "concurrent_modification"
	MetricNetWorthUpserts        = "net_worth_upserts"
	MetricBudgetTracking         = "budget_tracking"
	MetricOverBudgetCategories   = "over_budget_categories"
	MetricNetWorthValue          = "net_worth_value"
)

type PrometheusMetrics struct {
	recordsTotal           *prometheus.CounterVec
	conflictsTotal         *prometheus.CounterVec
	netWorthUpsertsTotal   *prometheus.CounterVec
	budgetTrackingDuration prometheus.Histogram
	overBudgetCategories   prometheus.Gauge
	latestNetWorth         prometheus.Gauge
}

var (
	prometheusMetricsOnce sync.Once
	prometheusMetrics     *PrometheusMetrics
)

// NewPrometheusMetrics returns the process-wide recorder registered with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	prometheusMetricsOnce.Do(func() {
		prometheusMetrics = &PrometheusMetrics{
			recordsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "finance_records_total",
					Help: "Total number of record mutations by entity and operation",
				},
				[]string{"entity", "operation"},
			),
			conflictsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "finance_concurrent_modifications_total",
					Help: "Total number of updates rejected because of a stale version",
				},
				[]string{"entity"},
			),
			netWorthUpsertsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "finance_net_worth_upserts_total",
					Help: "Total number of net worth snapshot upserts by source",
				},
				[]string{"source"},
			),
			budgetTrackingDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "finance_budget_tracking_duration_milliseconds",
					Help:    "Budget tracking computation duration in milliseconds",
					Buckets: prometheus.ExponentialBuckets(1, 2, 12),
				},
			),
			overBudgetCategories: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "finance_over_budget_categories",
					Help: "Number of budgets whose spend exceeded the budget in the last tracked month",
				},
			),
			latestNetWorth: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "finance_net_worth_latest",
					Help: "Net worth of the most recently saved snapshot",
				},
			),
		}
	})
	return prometheusMetrics
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	entity := tags["entity"]

	switch name {
	case MetricRecordsCreated:
		m.recordsTotal.WithLabelValues(entity, "create").Inc()
	case MetricRecordsUpdated:
		m.recordsTotal.WithLabelValues(entity, "update").Inc()
	case MetricRecordsDeleted:
		m.recordsTotal.WithLabelValues(entity, "delete").Inc()
	case MetricConcurrentModification:
		m.conflictsTotal.WithLabelValues(entity).Inc()
	case MetricNetWorthUpserts:
		if source := tags["source"]; source != "" {
			m.netWorthUpsertsTotal.WithLabelValues(source).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricBudgetTracking:
		m.budgetTrackingDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricOverBudgetCategories:
		m.overBudgetCategories.Set(value)
	case MetricNetWorthValue:
		m.latestNetWorth.Set(value)
	}
}
