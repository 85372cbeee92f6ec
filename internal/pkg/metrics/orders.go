package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrderTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_status_transitions_total",
			Help: "Total number of successful order status transitions",
		},
		[]string{"from", "to"},
	)

	OrdersStalled = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "orders_stalled",
			Help: "Number of non-terminal orders whose status has not changed for longer than the configured threshold",
		},
	)
)
