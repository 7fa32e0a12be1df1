package get_availability

import (
	"time"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
)

// Request модель запроса доступности на дату
type Request struct {
	Date time.Time // Дата (без времени)
}

// Response модель ответа: по одному статусу на каждый слот каталога,
// в каталожном порядке
type Response struct {
	Date  time.Time
	Slots []domain.DaySlot
}
