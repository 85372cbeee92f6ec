package statusevent

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"freight/internal/entities"
	"freight/pkg/logger"
)

type Gateway struct {
	log      gatewayLogger
	producer producer
	topic    string
}

func New(log gatewayLogger, producer producer, topic string) *Gateway {
	gatewayLog := log.With(
		logger.NewField("topic", topic),
	)

	return &Gateway{
		log:      gatewayLog,
		producer: producer,
		topic:    topic,
	}
}

// PublishStatusChanged шлет событие перехода в Kafka.
// Ключ - id заказа, чтобы события одного заказа попадали в одну партицию
// и сохраняли порядок переходов для потребителей.
func (g *Gateway) PublishStatusChanged(ctx context.Context, event entities.StatusChangedEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish status changed: %w", err)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status changed event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := g.producer.SendMessage(msg)
	if err != nil {
		EventsPublishedTotal.WithLabelValues(g.topic, "error").Inc()
		return fmt.Errorf("send status changed event: %w", err)
	}

	EventsPublishedTotal.WithLabelValues(g.topic, "ok").Inc()

	g.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("from", event.From.String()),
		logger.NewField("to", event.To.String()),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("status changed event published")

	return nil
}
