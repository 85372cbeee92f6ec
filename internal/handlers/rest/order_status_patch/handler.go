package order_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusUpdateDTO dto.OrderStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.ChangeStatus(
		r.Context(),
		actorEntity,
		id,
		entities.OrderStatusType(statusUpdateDTO.Status),
		statusUpdateDTO.Note,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	orderDTO := dto.Order{
		ID:           updated.ID,
		Code:         updated.Code,
		CompanyID:    updated.CompanyID,
		Origin:       updated.Origin,
		Destination:  updated.Destination,
		VehicleID:    updated.VehicleID,
		CreatedByID:  updated.CreatedByID,
		AssignedToID: updated.AssignedToID,
		Status:       updated.Status.String(),
		CreatedAt:    updated.CreatedAt,
		UpdatedAt:    updated.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	// недопустимый переход отдаем с подсказкой допустимых, остальное - только кодом
	var transitionErr *order.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		allowed := make([]string, len(transitionErr.Allowed))
		for i, status := range transitionErr.Allowed {
			allowed[i] = status.String()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(dto.ErrorResponse{
			Error:       transitionErr.Error(),
			AllowedNext: allowed,
		})
		if encodeErr != nil {
			h.log.With(
				logger.NewField("error", encodeErr),
			).Error("encode JSON response")
		}
		return
	}

	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, order.ErrInvalidOrderID),
		errors.Is(err, order.ErrUnknownStatus):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, order.ErrForbidden):
		w.WriteHeader(http.StatusForbidden)
	case errors.Is(err, order.ErrConflict):
		w.WriteHeader(http.StatusConflict)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
