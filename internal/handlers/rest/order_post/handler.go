package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		Code:         &orderCreateDTO.Code,
		CompanyID:    &orderCreateDTO.CompanyID,
		Origin:       &orderCreateDTO.Origin,
		Destination:  &orderCreateDTO.Destination,
		VehicleID:    orderCreateDTO.VehicleID,
		AssignedToID: orderCreateDTO.AssignedToID,
	}

	created, err := h.service.CreateOrder(r.Context(), actorEntity, orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrCodeTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := dto.Order{
		ID:           created.ID,
		Code:         created.Code,
		CompanyID:    created.CompanyID,
		Origin:       created.Origin,
		Destination:  created.Destination,
		VehicleID:    created.VehicleID,
		CreatedByID:  created.CreatedByID,
		AssignedToID: created.AssignedToID,
		Status:       created.Status.String(),
		CreatedAt:    created.CreatedAt,
		UpdatedAt:    created.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
