package create_reservation

import (
	"context"
	"time"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, rsv *domain.Reservation) (*domain.Reservation, error)
	FindActive(ctx context.Context, date time.Time, slot types.TimeString) (*domain.Reservation, error)
}

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	IsClosed(ctx context.Context, date time.Time, slot types.TimeString) (bool, error)
}

// SlotCatalog интерфейс каталога слотов
type SlotCatalog interface {
	IsValid(slot types.TimeString) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
