package vehicles_get

import (
	"encoding/json"
	"net/http"

	"freight/internal/dto"
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
	vehicleEntities, err := h.service.GetVehicles(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	vehicleDTOs := make([]dto.Vehicle, len(vehicleEntities))
	for i, vehicleEntity := range vehicleEntities {
		vehicleDTOs[i].ID = vehicleEntity.ID
		vehicleDTOs[i].PlateNo = vehicleEntity.PlateNo
		vehicleDTOs[i].DriverName = vehicleEntity.DriverName
		vehicleDTOs[i].DriverPhone = vehicleEntity.DriverPhone
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(vehicleDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
