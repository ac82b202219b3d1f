package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	operationsTotal      *prometheus.CounterVec
	operationDuration    *prometheus.HistogramVec
	operationAmount      *prometheus.HistogramVec
	gatewayRequests      *prometheus.CounterVec
	gatewayDuration      *prometheus.HistogramVec
	circuitBreakerState  *prometheus.GaugeVec
	balanceSyncTotal     *prometheus.CounterVec
	pendingSyncs         prometheus.Gauge
	limitRemaining       *prometheus.GaugeVec
	refreshPublished     prometheus.Counter
	refreshSubscribers   prometheus.Gauge
	sessionEventsTotal   *prometheus.CounterVec
	mirrorFallbacksTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors with the given registerer.
// A nil registerer uses the default one.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankclient_operations_total",
				Help: "Total number of deposit, withdrawal and transfer operations by outcome",
			},
			[]string{"operation", "status"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankclient_operation_duration_milliseconds",
				Help:    "Operation duration in milliseconds, ledger round trip included",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		operationAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankclient_operation_amount",
				Help:    "Amount of successful operations in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"operation"},
		),
		gatewayRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankclient_gateway_requests_total",
				Help: "Total number of ledger requests by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		gatewayDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankclient_gateway_duration_milliseconds",
				Help:    "Ledger request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bankclient_circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		balanceSyncTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankclient_balance_sync_total",
				Help: "Total number of background balance syncs by outcome",
			},
			[]string{"status"},
		),
		pendingSyncs: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bankclient_balance_sync_pending",
				Help: "Balance syncs currently in flight",
			},
		),
		limitRemaining: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bankclient_daily_limit_remaining",
				Help: "Remaining daily allowance per category",
			},
			[]string{"category"},
		),
		refreshPublished: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bankclient_refresh_published_total",
				Help: "Total number of refresh notifications published",
			},
		),
		refreshSubscribers: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bankclient_refresh_subscribers",
				Help: "Current number of refresh subscribers",
			},
		),
		sessionEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankclient_session_events_total",
				Help: "Total number of session events",
			},
			[]string{"event_type"},
		),
		mirrorFallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankclient_mirror_fallbacks_total",
				Help: "Total number of loads served from the mirror after a ledger failure",
			},
			[]string{"store"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	status := tags["status"]

	switch name {
	case "operation.success":
		m.operationsTotal.WithLabelValues(operation, "success").Inc()
	case "operation.rejected":
		m.operationsTotal.WithLabelValues(operation, "rejected_"+tags["reason"]).Inc()
	case "operation.failed":
		m.operationsTotal.WithLabelValues(operation, "failed").Inc()
	case "gateway.request":
		if status != "" {
			m.gatewayRequests.WithLabelValues(operation, status).Inc()
		}
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "circuit_breaker.half_open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(2)
	case "circuit_breaker.closed":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(0)
	case "balance_sync.started":
		m.pendingSyncs.Inc()
	case "balance_sync.success":
		m.pendingSyncs.Dec()
		m.balanceSyncTotal.WithLabelValues("success").Inc()
	case "balance_sync.failed":
		m.pendingSyncs.Dec()
		m.balanceSyncTotal.WithLabelValues("failed").Inc()
	case "refresh.published":
		m.refreshPublished.Inc()
	case "session_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.sessionEventsTotal.WithLabelValues(eventType).Inc()
		}
	case "mirror.fallback":
		if store := tags["store"]; store != "" {
			m.mirrorFallbacksTotal.WithLabelValues(store).Inc()
		}
	}
}

// RecordProcessingTime accepts "operation.<name>" and "gateway.<name>"
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	ms := float64(duration.Milliseconds())
	if operation, ok := strings.CutPrefix(name, "operation."); ok {
		m.operationDuration.WithLabelValues(operation).Observe(ms)
		return
	}
	if operation, ok := strings.CutPrefix(name, "gateway."); ok {
		m.gatewayDuration.WithLabelValues(operation).Observe(ms)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "operation_amount":
		if operation := tags["operation"]; operation != "" {
			m.operationAmount.WithLabelValues(operation).Observe(value)
		}
	case "limit_remaining":
		if category := tags["category"]; category != "" {
			m.limitRemaining.WithLabelValues(category).Set(value)
		}
	case "refresh_subscribers":
		m.refreshSubscribers.Set(value)
	}
}
