package list_closures

import (
	"net/http"
	"time"

	"github.com/dmkaz/RSC-BookingService/internal/api/handlers"
	"github.com/dmkaz/RSC-BookingService/internal/domain"
	"github.com/dmkaz/RSC-BookingService/internal/service/closures/models"
)

// ClosureResponse HTTP модель закрытия
type ClosureResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Time      *string `json:"time,omitempty"` // отсутствует = закрыт весь день
	CreatedAt string  `json:"createdAt"`
}

// ClosureListResponse HTTP response model
type ClosureListResponse struct {
	Closures []ClosureResponse `json:"closures"`
}

type Handler struct {
	service ClosureService
	logger  Logger
}

func NewHandler(service ClosureService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/closures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /closures - Failed to list closures: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

// fromServiceResponse конвертирует ответ сервиса в HTTP response
func fromServiceResponse(resp *models.ClosureListResponse) *ClosureListResponse {
	out := make([]ClosureResponse, len(resp.Closures))
	for i, c := range resp.Closures {
		var slot *string
		if c.Slot != nil {
			s := c.Slot.String()
			slot = &s
		}
		out[i] = ClosureResponse{
			ID:        c.ID,
			Date:      c.Date.Format(domain.DateFormat),
			Time:      slot,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		}
	}
	return &ClosureListResponse{Closures: out}
}
