package entities

import "time"

// StatusHistoryEntry - неизменяемая запись аудита статуса заказа.
// Записи только добавляются, никогда не обновляются и не удаляются.
type StatusHistoryEntry struct {
	ID         int64
	OrderID    int64
	Status     OrderStatusType
	Note       *string
	ActorID    int64
	RecordedAt time.Time
}

type HistoryModify struct {
	OrderID *int64
	Status  *OrderStatusType
	Note    *string
	ActorID *int64
}
