package models

import (
	"time"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

// ReservationResponse модель бронирования на выходе сервиса
type ReservationResponse struct {
	ID        string
	Date      time.Time
	Time      types.TimeString
	Name      string
	Phone     string
	Menu      string
	Memo      *string
	CreatedAt time.Time
	Status    string
}

// ListReservationsRequest запрос списка бронирований
type ListReservationsRequest struct {
	Date *time.Time // Опциональный фильтр по дате
}

// ReservationListResponse список бронирований в порядке создания записей
type ReservationListResponse struct {
	Reservations []*ReservationResponse
}

// FromDomainReservation конвертирует доменную модель в ответ сервиса
func FromDomainReservation(rsv *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        rsv.ID,
		Date:      rsv.Date,
		Time:      rsv.Time,
		Name:      rsv.Name,
		Phone:     rsv.Phone,
		Menu:      rsv.Menu,
		Memo:      rsv.Memo,
		CreatedAt: rsv.CreatedAt,
		Status:    string(rsv.Status),
	}
}

// FromDomainReservationList конвертирует список доменных моделей
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	out := make([]*ReservationResponse, len(reservations))
	for i, rsv := range reservations {
		out[i] = FromDomainReservation(rsv)
	}
	return &ReservationListResponse{Reservations: out}
}
