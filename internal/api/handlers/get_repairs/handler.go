package get_repairs

import (
	"errors"
	"net/http"

	"github.com/dmkaz/RSC-BookingService/internal/api/handlers"
	"github.com/dmkaz/RSC-BookingService/internal/service/estimates"
)

const msgMissingModel = "параметр model обязателен"

// RepairsResponse HTTP response model
type RepairsResponse struct {
	Repairs []string `json:"repairs"`
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

// Handle GET /api/v1/repairs?model=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	model := r.URL.Query().Get("model")
	if model == "" {
		h.logger.Warn("GET /repairs - Missing model parameter")
		handlers.RespondBadRequest(w, msgMissingModel)
		return
	}

	repairs, err := h.service.Repairs(model)
	if err != nil {
		if errors.Is(err, estimates.ErrInvalidInput) {
			h.logger.Warn("GET /repairs - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingModel)
			return
		}
		h.logger.Error("GET /repairs - Failed to load repairs: model=%s, error=%v", model, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, RepairsResponse{Repairs: repairs})
}
