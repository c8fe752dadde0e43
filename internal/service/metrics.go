package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "orders_created_total",
		Help:      "Orders stored after validation.",
	})
	ordersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "orders_rejected_total",
		Help:      "Orders refused before storage, by reason.",
	}, []string{"reason"})
	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "order_status_transitions_total",
		Help:      "Applied order status changes.",
	}, []string{"from", "to"})
	refunds = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "cancel_refunds_total",
		Help:      "Refund outcomes of cancelled paid orders.",
	}, []string{"status"})
	notificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "notification_failures_total",
		Help:      "Lifecycle notifications that could not be delivered.",
	})
	decryptFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "field_decrypt_failures_total",
		Help:      "Stored order fields that failed to decrypt.",
	})
)
