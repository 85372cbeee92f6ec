package entities

import "time"

type Vehicle struct {
	ID          int64
	PlateNo     string
	DriverName  string
	DriverPhone string
	CreatedAt   time.Time
}
