package order

import "time"

type OrderDB struct {
	ID           int64
	Code         string
	CompanyID    int64
	Origin       string
	Destination  string
	VehicleID    *int64
	CreatedByID  int64
	AssignedToID *int64
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderModifyDB struct {
	Code         *string
	CompanyID    *int64
	Origin       *string
	Destination  *string
	VehicleID    *int64
	CreatedByID  *int64
	AssignedToID *int64
}

type HistoryDB struct {
	ID         int64
	OrderID    int64
	Status     string
	Note       *string
	ActorID    int64
	RecordedAt time.Time
}

type HistoryModifyDB struct {
	OrderID *int64
	Status  *string
	Note    *string
	ActorID *int64
}
