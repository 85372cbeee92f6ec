package statusevent

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "status_events_published_total",
		Help: "Total number of order status changed events published to Kafka",
	},
	[]string{"topic", "result"},
)
