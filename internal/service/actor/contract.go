//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=actor_test
package actor

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Actor, error)
}
