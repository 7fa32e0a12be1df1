package get_availability

import (
	"context"
	"fmt"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	"github.com/dmkaz/RSC-BookingService/pkg/ptr"
	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

// UseCase use case разрешения доступности слотов на дату
//
// Правило приоритета: holiday перекрывает reserved. Слот, закрытый
// поверх существующего бронирования, отображается как holiday;
// сама запись бронирования при этом не меняется
type UseCase struct {
	reservationRepo ReservationRepository
	closureRepo     ClosureRepository
	catalog         SlotCatalog
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	closureRepo ClosureRepository,
	catalog SlotCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		closureRepo:     closureRepo,
		catalog:         catalog,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 1. Закрытия на дату
	closures, err := uc.closureRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get closures: %v", err)
		return nil, fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
	}

	slots := uc.catalog.Slots()

	// 2. Закрытие всего дня: все слоты holiday, хранилище
	// бронирований не опрашивается
	if hasFullDayClosure(closures) {
		uc.logger.Info("GetAvailability: date=%s is fully closed", req.Date.Format(domain.DateFormat))
		result := make([]domain.DaySlot, len(slots))
		for i, slot := range slots {
			result[i] = domain.DaySlot{Time: slot, Status: domain.SlotHoliday}
		}
		return &Response{Date: req.Date, Slots: result}, nil
	}

	closedSlots := collectClosedSlots(closures)

	// 3. Активные бронирования на дату
	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{
		Date:   &req.Date,
		Status: ptr.Ptr(domain.StatusReserved),
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	reservedSlots := make(map[types.TimeString]struct{}, len(reservations))
	for _, rsv := range reservations {
		reservedSlots[rsv.Time] = struct{}{}
	}

	// 4. Статус каждого слота в каталожном порядке
	result := make([]domain.DaySlot, len(slots))
	for i, slot := range slots {
		status := domain.SlotAvailable
		if _, ok := closedSlots[slot]; ok {
			status = domain.SlotHoliday
		} else if _, ok := reservedSlots[slot]; ok {
			status = domain.SlotReserved
		}
		result[i] = domain.DaySlot{Time: slot, Status: status}
	}

	uc.logger.Info("GetAvailability: resolved %d slots for date=%s",
		len(result), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: result}, nil
}

// hasFullDayClosure возвращает true, если среди закрытий есть закрытие всего дня
func hasFullDayClosure(closures []*domain.Closure) bool {
	for _, c := range closures {
		if c.IsFullDay() {
			return true
		}
	}
	return false
}

// collectClosedSlots собирает множество закрытых слотов
func collectClosedSlots(closures []*domain.Closure) map[types.TimeString]struct{} {
	closed := make(map[types.TimeString]struct{}, len(closures))
	for _, c := range closures {
		if c.Time != nil {
			closed[*c.Time] = struct{}{}
		}
	}
	return closed
}
