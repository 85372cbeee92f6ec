package stalled_orders

import (
	"context"
	"time"

	"freight/internal/pkg/metrics"
	"freight/pkg/logger"
)

type Service interface {
	CountStalledOrders(ctx context.Context, olderThan time.Duration) (int64, error)
}

// StalledOrders периодически считает незавершенные заказы, застрявшие
// в одном статусе дольше порога, и выставляет gauge для алертинга.
type StalledOrders struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	threshold time.Duration
}

func NewStalledOrders(log logger.Logger, service Service, interval, threshold time.Duration) *StalledOrders {
	return &StalledOrders{
		log:       log,
		service:   service,
		interval:  interval,
		threshold: threshold,
	}
}

func (s *StalledOrders) TTL() time.Duration {
	return s.interval
}

func (s *StalledOrders) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	count, err := s.service.CountStalledOrders(ctxWithTimeout, s.threshold)
	if err != nil {
		return err
	}

	metrics.OrdersStalled.Set(float64(count))

	if count > 0 {
		s.log.With(
			logger.NewField("stalled_orders", count),
			logger.NewField("threshold", s.threshold.String()),
		).Warn("stalled orders detected")
	}

	return nil
}

func (s *StalledOrders) Info() string {
	return "stalled orders check"
}
