package statusevent

import (
	"context"

	"freight/internal/entities"
)

// NopGateway используется когда брокеры не сконфигурированы:
// переходы статусов работают, события просто не публикуются.
type NopGateway struct{}

func NewNop() *NopGateway {
	return &NopGateway{}
}

func (*NopGateway) PublishStatusChanged(_ context.Context, _ entities.StatusChangedEvent) error {
	return nil
}
