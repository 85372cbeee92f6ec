package entities

import "time"

type Order struct {
	ID           int64
	Code         string
	CompanyID    int64
	Origin       string
	Destination  string
	VehicleID    *int64
	CreatedByID  int64
	AssignedToID *int64
	Status       OrderStatusType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderModify описывает создаваемый заказ, статус всегда задается системой (PENDING).
type OrderModify struct {
	Code         *string
	CompanyID    *int64
	Origin       *string
	Destination  *string
	VehicleID    *int64
	CreatedByID  *int64
	AssignedToID *int64
}

// OrderStatusGroup - группировка заказов по завершенности для листинга.
type OrderStatusGroup string

const (
	OrdersActive   OrderStatusGroup = "active"
	OrdersFinished OrderStatusGroup = "finished"
	OrdersAll      OrderStatusGroup = "all"
)

func (g OrderStatusGroup) String() string {
	return string(g)
}

type OrderFilter struct {
	StatusGroup OrderStatusGroup
	CompanyID   *int64
}

type StatusChangedEvent struct {
	OrderID   int64           `json:"order_id"`
	OrderCode string          `json:"order_code"`
	From      OrderStatusType `json:"from"`
	To        OrderStatusType `json:"to"`
	ActorID   int64           `json:"actor_id"`
	At        time.Time       `json:"at"`
}
