package get_estimate

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmkaz/RSC-BookingService/internal/api/handlers"
	"github.com/dmkaz/RSC-BookingService/internal/service/estimates"
)

const (
	msgMissingParams     = "параметры model и repair_type обязательны"
	msgRepairNotFound    = "ремонт не найден в прайс-листе"
	msgUnsupported       = "позиция не поддерживается"
	msgInvalidProfitRate = "маржа в прайс-листе не позволяет рассчитать цену"
)

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

// Handle GET /api/v1/estimate?model=...&repair_type=...&options=a,b
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	model := query.Get("model")
	repairType := query.Get("repair_type")

	if model == "" || repairType == "" {
		h.logger.Warn("GET /estimate - Missing model or repair_type parameter")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	options := parseOptions(query.Get("options"))

	result, err := h.service.Estimate(model, repairType, options)
	if err != nil {
		switch {
		case errors.Is(err, estimates.ErrRepairNotFound):
			h.logger.Warn("GET /estimate - Repair not found: model=%s, repair=%s", model, repairType)
			handlers.RespondNotFound(w, msgRepairNotFound)

		case errors.Is(err, estimates.ErrUnsupported):
			h.logger.Warn("GET /estimate - Unsupported: model=%s, repair=%s", model, repairType)
			handlers.RespondUnprocessable(w, msgUnsupported)

		case errors.Is(err, estimates.ErrInvalidProfitRate):
			h.logger.Warn("GET /estimate - Invalid profit rate: model=%s, repair=%s", model, repairType)
			handlers.RespondUnprocessable(w, msgInvalidProfitRate)

		case errors.Is(err, estimates.ErrInvalidInput):
			h.logger.Warn("GET /estimate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingParams)

		default:
			h.logger.Error("GET /estimate - Failed to estimate: model=%s, repair=%s, error=%v",
				model, repairType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainEstimate(result))
}

// parseOptions разбирает список опций через запятую
func parseOptions(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	options := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	return options
}
