package order

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"freight/internal/entities"
	"freight/internal/pkg/metrics"
	"freight/pkg/logger"
)

type Service struct {
	log        serviceLogger
	repository Repository
	txManager  TxManager
	publisher  StatusEventPublisher
}

func New(
	log serviceLogger,
	repository Repository,
	txManager TxManager,
	publisher StatusEventPublisher,
) *Service {
	return &Service{
		log:        log.With(),
		repository: repository,
		txManager:  txManager,
		publisher:  publisher,
	}
}

// CreateOrder создает заказ в статусе PENDING и первую запись истории
// в одной транзакции: заказ без затравочной записи аудита существовать не должен.
func (s *Service) CreateOrder(ctx context.Context, actor entities.Actor, orderModify entities.OrderModify) (*entities.Order, error) {
	if actor.Role == entities.RoleClientAdmin {
		return nil, ErrRoleDenied
	}

	if orderModify.Code == nil ||
		orderModify.CompanyID == nil ||
		orderModify.Origin == nil ||
		orderModify.Destination == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidCode(*orderModify.Code) {
		return nil, ErrMissingRequiredFields
	}

	orderModify.CreatedByID = pointer.To(actor.ID)

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		_, err = s.repository.AppendHistory(ctx, entities.HistoryModify{
			OrderID: pointer.To(created.ID),
			Status:  pointer.To(entities.OrderPending),
			Note:    pointer.To("order created"),
			ActorID: pointer.To(actor.ID),
		})
		if err != nil {
			return fmt.Errorf("seed status history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, actor entities.Actor, id int64) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	// чужой заказ не утекает даже по прямому id, отвечаем как на несуществующий
	if !canSeeOrder(actor, orderEntity) {
		return nil, ErrOrderNotFound
	}

	return orderEntity, nil
}

func (s *Service) ListOrders(ctx context.Context, actor entities.Actor, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.StatusGroup == "" {
		filter.StatusGroup = entities.OrdersActive
	}
	if !isValidStatusGroup(filter.StatusGroup) {
		return nil, ErrInvalidStatusFilter
	}

	if !hasListScope(actor) {
		return []entities.Order{}, nil
	}

	scoped := scopeOrderFilter(actor, filter)

	orders, err := s.repository.List(ctx, scoped)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// History возвращает аудит заказа по возрастанию времени записи.
func (s *Service) History(ctx context.Context, actor entities.Actor, orderID int64) ([]entities.StatusHistoryEntry, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !canSeeOrder(actor, orderEntity) {
		return nil, ErrOrderNotFound
	}

	entries, err := s.repository.ListHistory(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}
	return entries, nil
}

// ChangeStatus - единственный путь записи статуса заказа.
// Валидация и авторизация идут до транзакции и не имеют побочных эффектов,
// апдейт статуса и запись истории коммитятся атомарно.
func (s *Service) ChangeStatus(ctx context.Context, actor entities.Actor, orderID int64, proposed entities.OrderStatusType, note *string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !entities.IsValidOrderStatus(proposed) {
		return nil, ErrUnknownStatus
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}

	if !entities.IsLegalTransition(orderEntity.Status, proposed) {
		return nil, newInvalidTransitionError(orderEntity.Status, proposed)
	}

	if err := authorize(actor, orderEntity); err != nil {
		return nil, err
	}

	var updated *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		// защищенный апдейт: проигравший гонку получает ErrConflict,
		// а не молча перетирает чужой переход
		updated, err = s.repository.UpdateStatusFrom(ctx, orderID, orderEntity.Status, proposed)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		_, err = s.repository.AppendHistory(ctx, entities.HistoryModify{
			OrderID: pointer.To(orderID),
			Status:  pointer.To(proposed),
			Note:    note,
			ActorID: pointer.To(actor.ID),
		})
		if err != nil {
			return fmt.Errorf("append status history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(
		orderEntity.Status.String(),
		proposed.String(),
	).Inc()

	s.publishStatusChanged(ctx, orderEntity, updated, actor)

	return updated, nil
}

// CountStalledOrders считает незавершенные заказы, не менявшие статус дольше порога.
func (s *Service) CountStalledOrders(ctx context.Context, olderThan time.Duration) (int64, error) {
	count, err := s.repository.CountStalled(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("count stalled orders: %w", err)
	}
	return count, nil
}

// publishStatusChanged шлет событие после коммита, best-effort:
// сбой публикации логируется, но не откатывает уже выполненный переход.
func (s *Service) publishStatusChanged(ctx context.Context, before, after *entities.Order, actor entities.Actor) {
	event := entities.StatusChangedEvent{
		OrderID:   after.ID,
		OrderCode: after.Code,
		From:      before.Status,
		To:        after.Status,
		ActorID:   actor.ID,
		At:        after.UpdatedAt,
	}

	if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
		s.log.With(
			logger.NewField("order", after.ID),
			logger.NewField("error", err),
		).Warn("publish status changed event")
	}
}
