package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var terminalStatuses = []string{
	entities.OrderCompleted.String(),
	entities.OrderCancelled.String(),
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	orderModifyDB := FromDomainModify(&orderModify)

	// статус не принимается снаружи, новый заказ всегда PENDING
	query := `
		INSERT INTO orders (code, company_id, origin, destination, vehicle_id, created_by_id, assigned_to_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'PENDING')
		RETURNING id, code, company_id, origin, destination, vehicle_id, created_by_id, assigned_to_id, status, created_at, updated_at
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyDB.Code,
		orderModifyDB.CompanyID,
		orderModifyDB.Origin,
		orderModifyDB.Destination,
		orderModifyDB.VehicleID,
		orderModifyDB.CreatedByID,
		orderModifyDB.AssignedToID,
	).Scan(
		&orderDB.ID,
		&orderDB.Code,
		&orderDB.CompanyID,
		&orderDB.Origin,
		&orderDB.Destination,
		&orderDB.VehicleID,
		&orderDB.CreatedByID,
		&orderDB.AssignedToID,
		&orderDB.Status,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrCodeTaken
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `
		SELECT id, code, company_id, origin, destination, vehicle_id, created_by_id, assigned_to_id, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&orderDB.ID,
		&orderDB.Code,
		&orderDB.CompanyID,
		&orderDB.Origin,
		&orderDB.Destination,
		&orderDB.VehicleID,
		&orderDB.CreatedByID,
		&orderDB.AssignedToID,
		&orderDB.Status,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select("id", "code", "company_id", "origin", "destination", "vehicle_id", "created_by_id", "assigned_to_id", "status", "created_at", "updated_at").
		From("orders")

	// опциональные условия фильтра
	switch filter.StatusGroup {
	case entities.OrdersActive:
		builder = builder.Where(sq.NotEq{"status": terminalStatuses})
	case entities.OrdersFinished:
		builder = builder.Where(sq.Eq{"status": terminalStatuses})
	}
	if filter.CompanyID != nil {
		builder = builder.Where(sq.Eq{"company_id": *filter.CompanyID})
	}

	builder = builder.OrderBy("id ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.Code,
			&orderDB.CompanyID,
			&orderDB.Origin,
			&orderDB.Destination,
			&orderDB.VehicleID,
			&orderDB.CreatedByID,
			&orderDB.AssignedToID,
			&orderDB.Status,
			&orderDB.CreatedAt,
			&orderDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

// UpdateStatusFrom - защищенный апдейт статуса: строка меняется только если
// статус в базе все еще равен from. Нулевой результат значит, что заказ
// успел поменять параллельный переход, и вызывающий получает ErrConflict.
func (r *Repository) UpdateStatusFrom(ctx context.Context, id int64, from, to entities.OrderStatusType) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET status = $3,
		    updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING id, code, company_id, origin, destination, vehicle_id, created_by_id, assigned_to_id, status, created_at, updated_at
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id, from.String(), to.String()).Scan(
		&orderDB.ID,
		&orderDB.Code,
		&orderDB.CompanyID,
		&orderDB.Origin,
		&orderDB.Destination,
		&orderDB.VehicleID,
		&orderDB.CreatedByID,
		&orderDB.AssignedToID,
		&orderDB.Status,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) AppendHistory(ctx context.Context, historyModify entities.HistoryModify) (*entities.StatusHistoryEntry, error) {
	historyModifyDB := FromDomainHistoryModify(&historyModify)

	query := `
		INSERT INTO order_status_history (order_id, status, note, actor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, status, note, actor_id, recorded_at
	`

	var historyDB HistoryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		historyModifyDB.OrderID,
		historyModifyDB.Status,
		historyModifyDB.Note,
		historyModifyDB.ActorID,
	).Scan(
		&historyDB.ID,
		&historyDB.OrderID,
		&historyDB.Status,
		&historyDB.Note,
		&historyDB.ActorID,
		&historyDB.RecordedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository append history error: %w", err)
	}

	return ToHistoryDomain(&historyDB), nil
}

// ListHistory возвращает аудит заказа в порядке записи.
// Вторичная сортировка по id стабилизирует записи с одинаковым recorded_at.
func (r *Repository) ListHistory(ctx context.Context, orderID int64) ([]entities.StatusHistoryEntry, error) {
	query := `
		SELECT id, order_id, status, note, actor_id, recorded_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY recorded_at ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list history error: %w", err)
	}
	defer rows.Close()

	historyModels := make([]HistoryDB, 0, 8)
	for rows.Next() {
		var historyDB HistoryDB
		err := rows.Scan(
			&historyDB.ID,
			&historyDB.OrderID,
			&historyDB.Status,
			&historyDB.Note,
			&historyDB.ActorID,
			&historyDB.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list history error: %w", err)
		}
		historyModels = append(historyModels, historyDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list history error: %w", err)
	}

	return ToHistoryDomainList(historyModels), nil
}

func (r *Repository) CountStalled(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE status NOT IN ($1, $2)
		AND updated_at < $3
	`

	cutoff := time.Now().Add(-olderThan)

	var count int64
	err := r.querier.QueryRow(
		ctx,
		query,
		entities.OrderCompleted.String(),
		entities.OrderCancelled.String(),
		cutoff,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count stalled error: %w", err)
	}

	return count, nil
}
