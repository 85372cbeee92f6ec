package entities

type OrderStatusType string

const (
	OrderPending         OrderStatusType = "PENDING"
	OrderLoading         OrderStatusType = "LOADING"
	OrderTransferLoading OrderStatusType = "TRANSFER_LOADING"
	OrderCnExportCustoms OrderStatusType = "CN_EXPORT_CUSTOMS"
	OrderMnImportCustoms OrderStatusType = "MN_IMPORT_CUSTOMS"
	OrderInTransit       OrderStatusType = "IN_TRANSIT"
	OrderArrivedAtSite   OrderStatusType = "ARRIVED_AT_SITE"
	OrderUnloaded        OrderStatusType = "UNLOADED"
	OrderReturnTrip      OrderStatusType = "RETURN_TRIP"
	OrderMnExportReturn  OrderStatusType = "MN_EXPORT_RETURN"
	OrderCnImportReturn  OrderStatusType = "CN_IMPORT_RETURN"
	OrderTransfer        OrderStatusType = "TRANSFER"
	OrderCompleted       OrderStatusType = "COMPLETED"
	OrderCancelled       OrderStatusType = "CANCELLED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// statusSequence - фиксированная прямая цепочка воркфлоу доставки.
// CANCELLED стоит вне цепочки: в него можно уйти из любого нетерминального статуса.
var statusSequence = []OrderStatusType{
	OrderPending,
	OrderLoading,
	OrderTransferLoading,
	OrderCnExportCustoms,
	OrderMnImportCustoms,
	OrderInTransit,
	OrderArrivedAtSite,
	OrderUnloaded,
	OrderReturnTrip,
	OrderMnExportReturn,
	OrderCnImportReturn,
	OrderTransfer,
	OrderCompleted,
}

// statusTransitions строится из цепочки как данные, а не ветвления:
// для каждого нетерминального статуса ровно два перехода - следующий по цепочке и CANCELLED.
var statusTransitions = buildStatusTransitions()

var statusSequenceIndex = buildStatusSequenceIndex()

func buildStatusTransitions() map[OrderStatusType][]OrderStatusType {
	transitions := make(map[OrderStatusType][]OrderStatusType, len(statusSequence)+1)
	for i, status := range statusSequence {
		if status == OrderCompleted {
			transitions[status] = nil
			continue
		}
		transitions[status] = []OrderStatusType{statusSequence[i+1], OrderCancelled}
	}
	transitions[OrderCancelled] = nil
	return transitions
}

func buildStatusSequenceIndex() map[OrderStatusType]int {
	index := make(map[OrderStatusType]int, len(statusSequence))
	for i, status := range statusSequence {
		index[status] = i
	}
	return index
}

func IsValidOrderStatus(status OrderStatusType) bool {
	_, ok := statusTransitions[status]
	return ok
}

func IsTerminalOrderStatus(status OrderStatusType) bool {
	return status == OrderCompleted || status == OrderCancelled
}

// LegalNextStates возвращает копию множества допустимых переходов,
// пустой срез для терминальных статусов.
func LegalNextStates(current OrderStatusType) []OrderStatusType {
	allowed := statusTransitions[current]
	if len(allowed) == 0 {
		return []OrderStatusType{}
	}
	result := make([]OrderStatusType, len(allowed))
	copy(result, allowed)
	return result
}

// IsLegalTransition проверяет структурную допустимость перехода.
// Переход в текущий статус запрещен - операция не идемпотентна.
func IsLegalTransition(current, proposed OrderStatusType) bool {
	for _, allowed := range statusTransitions[current] {
		if allowed == proposed {
			return true
		}
	}
	return false
}

// PrimaryNext - единственный переход вперед по цепочке, без учета CANCELLED.
func PrimaryNext(current OrderStatusType) (OrderStatusType, bool) {
	i, ok := statusSequenceIndex[current]
	if !ok || current == OrderCompleted {
		return "", false
	}
	return statusSequence[i+1], true
}

// PrimaryPrevious - предшественник по фиксированной цепочке.
// Намеренно НЕ инверсия графа переходов: у CANCELLED много предшественников.
// Не определен для PENDING и терминальных статусов.
func PrimaryPrevious(current OrderStatusType) (OrderStatusType, bool) {
	if current == OrderPending || IsTerminalOrderStatus(current) {
		return "", false
	}
	i, ok := statusSequenceIndex[current]
	if !ok {
		return "", false
	}
	return statusSequence[i-1], true
}
