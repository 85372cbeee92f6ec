//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_test
package vehicle

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	GetAll(ctx context.Context) ([]entities.Vehicle, error)
}
