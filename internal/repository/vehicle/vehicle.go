package vehicle

import (
	"context"
	"fmt"
	"time"

	"freight/internal/entities"
)

type VehicleDB struct {
	ID          int64
	PlateNo     string
	DriverName  string
	DriverPhone string
	CreatedAt   time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Vehicle, error) {
	query := `
		SELECT id, plate_no, driver_name, driver_phone, created_at
		FROM vehicles
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
	}
	defer rows.Close()

	vehicles := make([]entities.Vehicle, 0, 8)
	for rows.Next() {
		var vehicleDB VehicleDB
		err := rows.Scan(
			&vehicleDB.ID,
			&vehicleDB.PlateNo,
			&vehicleDB.DriverName,
			&vehicleDB.DriverPhone,
			&vehicleDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
		}
		vehicles = append(vehicles, entities.Vehicle{
			ID:          vehicleDB.ID,
			PlateNo:     vehicleDB.PlateNo,
			DriverName:  vehicleDB.DriverName,
			DriverPhone: vehicleDB.DriverPhone,
			CreatedAt:   vehicleDB.CreatedAt,
		})
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
	}

	return vehicles, nil
}
