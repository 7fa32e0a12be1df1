package remove_closure

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmkaz/RSC-BookingService/internal/api/handlers"
	"github.com/dmkaz/RSC-BookingService/internal/domain"
	"github.com/dmkaz/RSC-BookingService/internal/service/closures"
	"github.com/dmkaz/RSC-BookingService/internal/service/closures/models"
	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

const (
	msgMissingDate       = "параметр date обязателен"
	msgInvalidDateOrTime = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound          = "закрытие не найдено"
)

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

// Handle DELETE /api/v1/closures?date=YYYY-MM-DD&time=HH:MM
// Параметр time опционален: без него снимается закрытие всего дня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("DELETE /closures - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("DELETE /closures - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	var slot *types.TimeString
	if timeStr := r.URL.Query().Get("time"); timeStr != "" {
		ts, err := types.NewTimeStringFromString(timeStr)
		if err != nil {
			h.logger.Warn("DELETE /closures - Invalid time %q: %v", timeStr, err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)
			return
		}
		slot = &ts
	}

	err = h.service.Remove(r.Context(), &models.RemoveClosureRequest{Date: date, Slot: slot})
	if err != nil {
		switch {
		case errors.Is(err, closures.ErrClosureNotFound):
			h.logger.Warn("DELETE /closures - Closure not found: date=%s, time=%v", dateStr, slot)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, closures.ErrInvalidSlot), errors.Is(err, closures.ErrInvalidInput):
			h.logger.Warn("DELETE /closures - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		default:
			h.logger.Error("DELETE /closures - Failed to remove closure: date=%s, time=%v, error=%v",
				dateStr, slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /closures - Closure removed successfully: date=%s, time=%v", dateStr, slot)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
