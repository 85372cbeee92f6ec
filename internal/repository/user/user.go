package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"freight/internal/entities"
	"freight/internal/service/actor"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Actor, error) {
	query := `
		SELECT id, email, name, role, company_id
		FROM users
		WHERE id = $1
	`

	var userDB UserDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&userDB.ID,
		&userDB.Email,
		&userDB.Name,
		&userDB.Role,
		&userDB.CompanyID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, actor.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&userDB), nil
}
