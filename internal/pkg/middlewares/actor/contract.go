//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=actor_test
package actor

import (
	"context"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Resolver interface {
	Resolve(ctx context.Context, userID int64) (*entities.Actor, error)
}
