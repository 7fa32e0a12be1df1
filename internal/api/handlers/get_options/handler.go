package get_options

import (
	"net/http"

	"github.com/dmkaz/RSC-BookingService/internal/api/handlers"
	"github.com/dmkaz/RSC-BookingService/internal/domain"
)

// OptionResponse HTTP модель опции
type OptionResponse struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// OptionsResponse HTTP response model
type OptionsResponse struct {
	Options []OptionResponse `json:"options"`
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

// Handle GET /api/v1/options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.Options()
	if err != nil {
		h.logger.Error("GET /options - Failed to load options: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainOptions(options))
}

// fromDomainOptions конвертирует доменные опции в HTTP response
func fromDomainOptions(options []domain.Option) OptionsResponse {
	out := make([]OptionResponse, len(options))
	for i, opt := range options {
		out[i] = OptionResponse{Name: opt.Name, Price: opt.Price}
	}
	return OptionsResponse{Options: out}
}
