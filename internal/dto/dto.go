package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	// AllowedNext подсказывает клиенту допустимые переходы при отказе 400
	AllowedNext []string `json:"allowed_next,omitempty"`
}

type Order struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	CompanyID    int64     `json:"company_id"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	VehicleID    *int64    `json:"vehicle_id,omitempty"`
	CreatedByID  int64     `json:"created_by_id"`
	AssignedToID *int64    `json:"assigned_to_id,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type OrderCreate struct {
	Code         string `json:"code"`
	CompanyID    int64  `json:"company_id"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	VehicleID    *int64 `json:"vehicle_id,omitempty"`
	AssignedToID *int64 `json:"assigned_to_id,omitempty"`
}

type OrderStatusUpdate struct {
	Status string  `json:"status"`
	Note   *string `json:"note,omitempty"`
}

type StatusHistoryEntry struct {
	ID         int64     `json:"id"`
	OrderID    int64     `json:"order_id"`
	Status     string    `json:"status"`
	Note       *string   `json:"note,omitempty"`
	ActorID    int64     `json:"actor_id"`
	RecordedAt time.Time `json:"recorded_at"`
}

type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Vehicle struct {
	ID          int64  `json:"id"`
	PlateNo     string `json:"plate_no"`
	DriverName  string `json:"driver_name"`
	DriverPhone string `json:"driver_phone"`
}
