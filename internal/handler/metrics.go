package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "car_order_service",
			Subsystem: "kafka_consumer",
			Name:      "status_events_processed_total",
			Help:      "Total number of successfully applied status events",
		},
	)

	eventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "car_order_service",
			Subsystem: "kafka_consumer",
			Name:      "status_events_failed_total",
			Help:      "Total number of failed status events, by HTTP-equivalent code",
		},
		[]string{"code"},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "car_order_service",
			Subsystem: "kafka_consumer",
			Name:      "status_events_dlq_total",
			Help:      "Total number of status events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "car_order_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	eventProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "car_order_service",
			Subsystem: "kafka_consumer",
			Name:      "status_event_processing_duration_seconds",
			Help:      "Histogram of status event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	eventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "car_order_service",
			Subsystem: "kafka_consumer",
			Name:      "status_events_in_progress",
			Help:      "Number of status events currently being processed",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "car_order_service",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of order API requests, by operation and status code",
		},
		[]string{"operation", "status"},
	)

	orderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "car_order_service",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of order API request durations, by operation",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	orderRequestsInProgress = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "car_order_service",
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress order API requests, by operation",
		},
		[]string{"operation"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,
		eventProcessingDuration,
		eventsInProgress,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,
	)
}
