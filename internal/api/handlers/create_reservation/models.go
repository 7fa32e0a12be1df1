package create_reservation

import (
	"time"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	createReservation "github.com/dmkaz/RSC-BookingService/internal/usecase/create_reservation"
	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date  string  `json:"date"` // "2026-09-01"
	Time  string  `json:"time"` // "10:00"
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Menu  string  `json:"menu"`
	Memo  *string `json:"memo,omitempty"`
}

// ReservationResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Date:  date,
		Time:  slot,
		Name:  r.Name,
		Phone: r.Phone,
		Menu:  r.Menu,
		Memo:  r.Memo,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		Date:      resp.Date.Format(domain.DateFormat),
		Time:      resp.Time.String(),
		Name:      resp.Name,
		Phone:     resp.Phone,
		Menu:      resp.Menu,
		Memo:      resp.Memo,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		Status:    resp.Status,
	}
}
