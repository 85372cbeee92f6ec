package order

import "freight/internal/entities"

// authorize решает, может ли актор выполнить переход статуса по данному заказу.
// Чистая функция: работает только со снапшотом заказа, хранилище не трогает.
// Проверка арендатора идет до проверки роли, ADMIN обходит обе.
func authorize(actor entities.Actor, order *entities.Order) error {
	if actor.Role == entities.RoleAdmin {
		return nil
	}

	if actor.CompanyID != nil && *actor.CompanyID != order.CompanyID {
		return ErrTenantMismatch
	}

	switch actor.Role {
	case entities.RoleOperator:
		if order.AssignedToID == nil || *order.AssignedToID != actor.ID {
			return ErrNotAssigned
		}
		return nil
	case entities.RoleClientAdmin:
		// клиенты читают, но никогда не меняют статус
		return ErrRoleDenied
	default:
		return ErrRoleDenied
	}
}

// canSeeOrder - видимость заказа на путях чтения.
// CLIENT_ADMIN видит только заказы своей компании; без домашней компании
// такой актор не видит ничего и не должен узнать о существовании чужого заказа.
func canSeeOrder(actor entities.Actor, order *entities.Order) bool {
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleClientAdmin:
		return actor.CompanyID != nil && *actor.CompanyID == order.CompanyID
	case entities.RoleOperator:
		if actor.CompanyID == nil {
			return true
		}
		return *actor.CompanyID == order.CompanyID
	default:
		return false
	}
}

// hasListScope сообщает, есть ли у актора хоть какая-то область видимости
// листинга. CLIENT_ADMIN без домашней компании не видит ни одного заказа.
func hasListScope(actor entities.Actor) bool {
	return actor.Role != entities.RoleClientAdmin || actor.CompanyID != nil
}

// scopeOrderFilter ограничивает листинг компанией актора.
// Для CLIENT_ADMIN фильтр по компании перезаписывается принудительно,
// что бы ни передал вызывающий.
func scopeOrderFilter(actor entities.Actor, filter entities.OrderFilter) entities.OrderFilter {
	if actor.Role == entities.RoleAdmin {
		return filter
	}
	if actor.CompanyID != nil {
		companyID := *actor.CompanyID
		filter.CompanyID = &companyID
	}
	return filter
}
