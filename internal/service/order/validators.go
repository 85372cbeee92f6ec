package order

import (
	"strings"

	"freight/internal/entities"
)

func isValidOrderID(id int64) bool {
	return id > 0
}

func isValidCode(code string) bool {
	return strings.TrimSpace(code) != ""
}

func isValidStatusGroup(group entities.OrderStatusGroup) bool {
	switch group {
	case entities.OrdersActive, entities.OrdersFinished, entities.OrdersAll:
		return true
	default:
		return false
	}
}
