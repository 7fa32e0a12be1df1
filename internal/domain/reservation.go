package domain

import (
	"time"

	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusReserved  ReservationStatus = "reserved"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValidStatus возвращает true для известного статуса бронирования
func IsValidStatus(s ReservationStatus) bool {
	return s == StatusReserved || s == StatusCancelled
}

// Reservation бронирование одного слота на конкретную дату
// Запись никогда не удаляется физически: отмена переводит статус
// в cancelled, история сохраняется
type Reservation struct {
	ID        string // UUID, присваивается один раз при создании
	Date      time.Time
	Time      types.TimeString
	Name      string
	Phone     string
	Menu      string // вид услуги (тип ремонта)
	Memo      *string
	CreatedAt time.Time
	Status    ReservationStatus
}

// IsActive возвращает true, если бронирование удерживает слот
func (r *Reservation) IsActive() bool {
	return r.Status == StatusReserved
}

// IsCancelled возвращает true, если бронирование отменено
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	Date   *time.Time         // Конкретная дата (опционально, если nil - все даты)
	Status *ReservationStatus // Фильтр по статусу (опционально)
}
