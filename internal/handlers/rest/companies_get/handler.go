package companies_get

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
	companyEntities, err := h.service.GetCompanies(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	companyDTOs := make([]dto.Company, len(companyEntities))
	for i, companyEntity := range companyEntities {
		companyDTOs[i].ID = companyEntity.ID
		companyDTOs[i].Name = companyEntity.Name
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(companyDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
