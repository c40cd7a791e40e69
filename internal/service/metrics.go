package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "car_order_service",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Orders created, by allocation path.",
		},
		[]string{"path"},
	)

	statusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "car_order_service",
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Applied status transitions, by target status.",
		},
		[]string{"status"},
	)

	allocationConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "car_order_service",
			Subsystem: "inventory",
			Name:      "allocation_conflicts_total",
			Help:      "Attempts to allocate a car that was already taken.",
		},
	)
)
