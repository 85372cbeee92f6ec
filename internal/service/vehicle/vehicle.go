package vehicle

import (
	"context"
	"fmt"

	"freight/internal/entities"
)

type Vehicle struct {
	repository Repository
}

func New(repository Repository) *Vehicle {
	return &Vehicle{
		repository: repository,
	}
}

func (s *Vehicle) GetVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	vehicles, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get vehicles: %w", err)
	}

	return vehicles, nil
}
