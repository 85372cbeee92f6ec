package company

import (
	"context"
	"fmt"
	"time"

	"freight/internal/entities"
)

type CompanyDB struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Company, error) {
	query := `
		SELECT id, name, created_at
		FROM companies
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected company repository getall error: %w", err)
	}
	defer rows.Close()

	companies := make([]entities.Company, 0, 8)
	for rows.Next() {
		var companyDB CompanyDB
		err := rows.Scan(&companyDB.ID, &companyDB.Name, &companyDB.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected company repository getall error: %w", err)
		}
		companies = append(companies, entities.Company{
			ID:        companyDB.ID,
			Name:      companyDB.Name,
			CreatedAt: companyDB.CreatedAt,
		})
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected company repository getall error: %w", err)
	}

	return companies, nil
}
