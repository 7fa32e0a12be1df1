package get_availability

import (
	"context"
	"time"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Closure, error)
}

// SlotCatalog интерфейс каталога слотов
type SlotCatalog interface {
	Slots() []types.TimeString
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
