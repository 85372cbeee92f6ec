package company

import (
	"context"
	"fmt"

	"freight/internal/entities"
)

type Company struct {
	repository Repository
}

func New(repository Repository) *Company {
	return &Company{
		repository: repository,
	}
}

func (s *Company) GetCompanies(ctx context.Context) ([]entities.Company, error) {
	companies, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get companies: %w", err)
	}

	return companies, nil
}
