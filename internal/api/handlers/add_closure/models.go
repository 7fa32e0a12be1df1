package add_closure

import (
	"time"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	"github.com/dmkaz/RSC-BookingService/internal/service/closures/models"
	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

// AddClosureRequest HTTP request model
// Отсутствующее time закрывает весь день
type AddClosureRequest struct {
	Date string  `json:"date"`           // "2026-09-01"
	Time *string `json:"time,omitempty"` // "10:00", опционально
}

// ClosureResponse HTTP response model
type ClosureResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Time      *string `json:"time,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddClosureRequest) ToServiceRequest() (*models.AddClosureRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	var slot *types.TimeString
	if r.Time != nil {
		ts, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return nil, err
		}
		slot = &ts
	}

	return &models.AddClosureRequest{Date: date, Slot: slot}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ClosureResponse) *ClosureResponse {
	var slot *string
	if resp.Slot != nil {
		s := resp.Slot.String()
		slot = &s
	}
	return &ClosureResponse{
		ID:        resp.ID,
		Date:      resp.Date.Format(domain.DateFormat),
		Time:      slot,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
