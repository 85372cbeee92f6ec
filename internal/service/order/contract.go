//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)

	// UpdateStatusFrom выполняет защищенный апдейт (WHERE status = from),
	// ноль затронутых строк означает проигранную гонку.
	UpdateStatusFrom(ctx context.Context, id int64, from, to entities.OrderStatusType) (*entities.Order, error)
	AppendHistory(ctx context.Context, historyModify entities.HistoryModify) (*entities.StatusHistoryEntry, error)
	ListHistory(ctx context.Context, orderID int64) ([]entities.StatusHistoryEntry, error)

	CountStalled(ctx context.Context, olderThan time.Duration) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type StatusEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.StatusChangedEvent) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
