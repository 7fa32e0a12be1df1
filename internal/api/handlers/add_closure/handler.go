package add_closure

import (
	"errors"
	"net/http"

	"github.com/dmkaz/RSC-BookingService/internal/api/handlers"
	"github.com/dmkaz/RSC-BookingService/internal/service/closures"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidSlot        = "указанный слот отсутствует в каталоге"
	msgDuplicateClosure   = "закрытие уже зарегистрировано"
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

// Handle POST /api/v1/closures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /closures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /closures - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.Add(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, closures.ErrInvalidSlot):
			h.logger.Warn("POST /closures - Invalid slot: date=%s, time=%v", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, closures.ErrDuplicateClosure):
			h.logger.Warn("POST /closures - Duplicate closure: date=%s, time=%v", req.Date, req.Time)
			handlers.RespondConflict(w, msgDuplicateClosure)

		case errors.Is(err, closures.ErrInvalidInput):
			h.logger.Warn("POST /closures - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		default:
			h.logger.Error("POST /closures - Failed to add closure: date=%s, time=%v, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /closures - Closure created successfully: id=%d, date=%s, time=%v",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
