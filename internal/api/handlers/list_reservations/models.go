package list_reservations

import (
	"time"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	"github.com/dmkaz/RSC-BookingService/internal/service/reservations/models"
)

// ReservationResponse HTTP модель бронирования
type ReservationResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Menu      string  `json:"menu"`
	Memo      *string `json:"memo,omitempty"`
	CreatedAt string  `json:"createdAt"`
	Status    string  `json:"status"`
}

// ReservationListResponse HTTP response model
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationListResponse) *ReservationListResponse {
	out := make([]ReservationResponse, len(resp.Reservations))
	for i, rsv := range resp.Reservations {
		out[i] = ReservationResponse{
			ID:        rsv.ID,
			Date:      rsv.Date.Format(domain.DateFormat),
			Time:      rsv.Time.String(),
			Name:      rsv.Name,
			Phone:     rsv.Phone,
			Menu:      rsv.Menu,
			Memo:      rsv.Memo,
			CreatedAt: rsv.CreatedAt.Format(time.RFC3339),
			Status:    rsv.Status,
		}
	}
	return &ReservationListResponse{Reservations: out}
}
