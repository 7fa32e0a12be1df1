package models

import (
	"time"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

// AddClosureRequest запрос на регистрацию закрытия
// Slot == nil закрывает весь день
type AddClosureRequest struct {
	Date time.Time
	Slot *types.TimeString
}

// RemoveClosureRequest запрос на снятие закрытия
type RemoveClosureRequest struct {
	Date time.Time
	Slot *types.TimeString
}

// ClosureResponse модель закрытия на выходе сервиса
type ClosureResponse struct {
	ID        int64
	Date      time.Time
	Slot      *types.TimeString // nil = закрыт весь день
	CreatedAt time.Time
}

// ClosureListResponse список закрытий
type ClosureListResponse struct {
	Closures []*ClosureResponse
}

// FromDomainClosure конвертирует доменную модель в ответ сервиса
func FromDomainClosure(c *domain.Closure) *ClosureResponse {
	return &ClosureResponse{
		ID:        c.ID,
		Date:      c.Date,
		Slot:      c.Time,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainClosureList конвертирует список доменных моделей
func FromDomainClosureList(closures []*domain.Closure) *ClosureListResponse {
	out := make([]*ClosureResponse, len(closures))
	for i, c := range closures {
		out[i] = FromDomainClosure(c)
	}
	return &ClosureListResponse{Closures: out}
}
