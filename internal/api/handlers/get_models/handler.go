package get_models

import (
	"net/http"

	"github.com/dmkaz/RSC-BookingService/internal/api/handlers"
)

// ModelsResponse HTTP response model
type ModelsResponse struct {
	Models []string `json:"models"`
}

type Handler struct {
	service EstimateService
	logger  Logger
}

func NewHandler(service EstimateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/models
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	models, err := h.service.Models()
	if err != nil {
		h.logger.Error("GET /models - Failed to load models: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ModelsResponse{Models: models})
}
