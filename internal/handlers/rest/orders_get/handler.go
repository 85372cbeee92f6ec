package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/dto"
	"freight/internal/entities"
	"freight/internal/pkg/middlewares/actor"
	"freight/internal/service/order"
	"freight/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorEntity, ok := actor.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	filter := entities.OrderFilter{
		StatusGroup: entities.OrderStatusGroup(r.URL.Query().Get("status_group")),
	}
	if companyIDStr := r.URL.Query().Get("company_id"); companyIDStr != "" {
		companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.CompanyID = &companyID
	}

	orderEntities, err := h.service.ListOrders(r.Context(), actorEntity, filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatusFilter):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i, orderEntity := range orderEntities {
		orderDTOs[i].ID = orderEntity.ID
		orderDTOs[i].Code = orderEntity.Code
		orderDTOs[i].CompanyID = orderEntity.CompanyID
		orderDTOs[i].Origin = orderEntity.Origin
		orderDTOs[i].Destination = orderEntity.Destination
		orderDTOs[i].VehicleID = orderEntity.VehicleID
		orderDTOs[i].CreatedByID = orderEntity.CreatedByID
		orderDTOs[i].AssignedToID = orderEntity.AssignedToID
		orderDTOs[i].Status = orderEntity.Status.String()
		orderDTOs[i].CreatedAt = orderEntity.CreatedAt
		orderDTOs[i].UpdatedAt = orderEntity.UpdatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
