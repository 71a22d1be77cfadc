package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShipmentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_shipments_created_total",
		Help: "Total number of shipments successfully created.",
	})

	ShipmentTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduler_shipment_transitions_total",
		Help: "Total number of shipment status transitions applied.",
	},
		[]string{"status"},
	)

	NotificationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_notifications_created_total",
		Help: "Total number of notification records created.",
	})

	FeedbackRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_feedback_recorded_total",
		Help: "Total number of feedback records accepted.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduler_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ShipmentCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scheduler_shipment_cache_items",
		Help: "Current number of items in the shipment cache.",
	})

	AuditPendingEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scheduler_audit_pending_entries",
		Help: "Audit log entries accepted but not yet dispatched to a worker.",
	})
)
