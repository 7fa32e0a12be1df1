package closures

import (
	"context"
	"time"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	Create(ctx context.Context, c *domain.Closure) (*domain.Closure, error)
	Delete(ctx context.Context, date time.Time, slot *types.TimeString) error
	List(ctx context.Context) ([]*domain.Closure, error)
}

// SlotCatalog интерфейс каталога слотов
type SlotCatalog interface {
	IsValid(slot types.TimeString) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
