package actor

import (
	"context"
	"fmt"

	"freight/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// Resolve превращает идентификатор из запроса в актора с ролью и компанией.
func (s *Service) Resolve(ctx context.Context, userID int64) (*entities.Actor, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	actorEntity, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve actor: %w", err)
	}

	return actorEntity, nil
}
