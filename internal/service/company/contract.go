//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=company_test
package company

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	GetAll(ctx context.Context) ([]entities.Company, error)
}
