package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OrderMetrics counts the order workflow's outcomes.
type OrderMetrics struct {
	OrdersCreated      prometheus.Counter
	OrdersCancelled    prometheus.Counter
	InsufficientStock  prometheus.Counter
	CosmeticsRestocked prometheus.Counter
}

func NewOrderMetrics() *OrderMetrics {
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "beautify",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders created.",
	})
	cancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "beautify",
		Subsystem: "orders",
		Name:      "cancelled_total",
		Help:      "Total number of orders cancelled or deleted.",
	})
	insufficient := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "beautify",
		Subsystem: "orders",
		Name:      "insufficient_stock_total",
		Help:      "Checkouts rejected because a line exceeded available stock.",
	})
	restocked := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "beautify",
		Subsystem: "orders",
		Name:      "restock_events_total",
		Help:      "Restock passes applied on cancellation or deletion.",
	})

	prometheus.MustRegister(created, cancelled, insufficient, restocked)
	return &OrderMetrics{
		OrdersCreated:      created,
		OrdersCancelled:    cancelled,
		InsufficientStock:  insufficient,
		CosmeticsRestocked: restocked,
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
