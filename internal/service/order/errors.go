package order

import (
	"errors"
	"fmt"

	"freight/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrUnknownStatus         = errors.New("unknown order status")
	ErrInvalidStatusFilter   = errors.New("invalid status filter")

	ErrOrderNotFound = errors.New("order not found")
	ErrCodeTaken     = errors.New("order code already exists")

	// ErrConflict - конкурентный переход успел раньше, вызывающий может
	// безопасно перечитать заказ и повторить операцию целиком.
	ErrConflict = errors.New("order status changed concurrently")

	ErrInvalidTransition = errors.New("illegal status transition")

	ErrForbidden      = errors.New("forbidden")
	ErrNotAssigned    = fmt.Errorf("%w: operator is not assigned to the order", ErrForbidden)
	ErrTenantMismatch = fmt.Errorf("%w: order belongs to another company", ErrForbidden)
	ErrRoleDenied     = fmt.Errorf("%w: role is not allowed to perform this operation", ErrForbidden)
)

// InvalidTransitionError несет множество допустимых переходов,
// чтобы вызывающий мог скорректировать запрос.
type InvalidTransitionError struct {
	From     entities.OrderStatusType
	Proposed entities.OrderStatusType
	Allowed  []entities.OrderStatusType
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition: %s -> %s", e.From, e.Proposed)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func newInvalidTransitionError(from, proposed entities.OrderStatusType) *InvalidTransitionError {
	return &InvalidTransitionError{
		From:     from,
		Proposed: proposed,
		Allowed:  entities.LegalNextStates(from),
	}
}
