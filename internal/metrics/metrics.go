package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hospital_display"

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests by route and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	TokensEnqueued = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_enqueued_total",
		Help:      "Tokens added to a department queue.",
	}, []string{"department"})

	// result is "advanced" or "empty"
	QueueAdvances = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queue_advances_total",
		Help:      "Queue advance calls by department and outcome.",
	}, []string{"department", "result"})

	InventoryAdjustments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_adjustments_total",
		Help:      "Inventory quantity adjustments by operation.",
	}, []string{"operation"})

	AlertsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_created_total",
		Help:      "Alerts raised by type.",
	}, []string{"type"})

	AlertsDismissed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_dismissed_total",
		Help:      "Alerts dismissed.",
	})

	// action is "create" or "update"
	ScheduleWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "schedule_writes_total",
		Help:      "Persisted schedule writes by action.",
	}, []string{"action"})
)
