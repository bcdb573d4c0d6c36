package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring the order and delivery lifecycle
var (
	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders successfully created",
		},
	)

	OrdersCancelledTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_cancelled_total",
			Help: "Total number of orders cancelled by users",
		},
	)

	PaymentsAuthorizedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_authorized_total",
			Help: "Total number of payment authorizations written to the ledger",
		},
	)

	PaymentsRefundedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_refunded_total",
			Help: "Total number of refund records written to the ledger",
		},
	)

	DeliveriesAssignedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "deliveries_assigned_total",
			Help: "Total number of deliveries assigned to drivers",
		},
	)

	DeliveriesCompletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "deliveries_completed_total",
			Help: "Total number of deliveries marked as delivered",
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(OrdersCreatedTotal)
	prometheus.MustRegister(OrdersCancelledTotal)
	prometheus.MustRegister(PaymentsAuthorizedTotal)
	prometheus.MustRegister(PaymentsRefundedTotal)
	prometheus.MustRegister(DeliveriesAssignedTotal)
	prometheus.MustRegister(DeliveriesCompletedTotal)
}
