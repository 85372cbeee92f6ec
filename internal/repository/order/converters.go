package order

import (
	"freight/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:           o.ID,
		Code:         o.Code,
		CompanyID:    o.CompanyID,
		Origin:       o.Origin,
		Destination:  o.Destination,
		VehicleID:    o.VehicleID,
		CreatedByID:  o.CreatedByID,
		AssignedToID: o.AssignedToID,
		Status:       entities.OrderStatusType(o.Status),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}

	return &OrderModifyDB{
		Code:         orderModify.Code,
		CompanyID:    orderModify.CompanyID,
		Origin:       orderModify.Origin,
		Destination:  orderModify.Destination,
		VehicleID:    orderModify.VehicleID,
		CreatedByID:  orderModify.CreatedByID,
		AssignedToID: orderModify.AssignedToID,
	}
}

func ToHistoryDomain(h *HistoryDB) *entities.StatusHistoryEntry {
	if h == nil {
		return nil
	}

	return &entities.StatusHistoryEntry{
		ID:         h.ID,
		OrderID:    h.OrderID,
		Status:     entities.OrderStatusType(h.Status),
		Note:       h.Note,
		ActorID:    h.ActorID,
		RecordedAt: h.RecordedAt,
	}
}

func ToHistoryDomainList(entriesDB []HistoryDB) []entities.StatusHistoryEntry {
	if len(entriesDB) == 0 {
		return []entities.StatusHistoryEntry{}
	}

	result := make([]entities.StatusHistoryEntry, len(entriesDB))
	for i, entryDB := range entriesDB {
		result[i] = *ToHistoryDomain(&entryDB)
	}
	return result
}

func FromDomainHistoryModify(historyModify *entities.HistoryModify) *HistoryModifyDB {
	if historyModify == nil {
		return nil
	}
	historyDB := &HistoryModifyDB{
		OrderID: historyModify.OrderID,
		Note:    historyModify.Note,
		ActorID: historyModify.ActorID,
	}

	if historyModify.Status != nil {
		status := historyModify.Status.String()
		historyDB.Status = &status
	}

	return historyDB
}
