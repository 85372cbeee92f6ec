package entities

import "time"

type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
