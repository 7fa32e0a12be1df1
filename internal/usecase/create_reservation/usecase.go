package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	reservationRepo "github.com/dmkaz/RSC-BookingService/internal/infra/storage/reservation"
)

// UseCase use case создания бронирования
//
// Последовательность проверок фиксирована: каталог → закрытия →
// конфликт с активным бронированием. Проверка конфликта и вставка
// выполняются в сериализуемой транзакции (FindActive берет FOR UPDATE),
// частичный уникальный индекс в хранилище страхует от гонки на вставке
type UseCase struct {
	reservationRepo ReservationRepository
	closureRepo     ClosureRepository
	catalog         SlotCatalog
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	closureRepo ClosureRepository,
	catalog SlotCatalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		closureRepo:     closureRepo,
		catalog:         catalog,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, time=%s, menu=%s",
		req.Date.Format(domain.DateFormat), req.Time, req.Menu)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Слот должен входить в каталог
	if !uc.catalog.IsValid(req.Time) {
		uc.logger.Warn("CreateReservation: slot %s is not in the catalog", req.Time)
		return nil, ErrInvalidSlot
	}

	// 3. Дата или слот не должны быть закрыты
	closed, err := uc.closureRepo.IsClosed(ctx, req.Date, req.Time)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to check closures: %v", err)
		return nil, fmt.Errorf("%w: failed to check closures: %v", ErrInternal, err)
	}
	if closed {
		uc.logger.Warn("CreateReservation: date=%s time=%s is closed",
			req.Date.Format(domain.DateFormat), req.Time)
		return nil, ErrClosed
	}

	var result *domain.Reservation

	// 4. Проверка конфликта и вставка — одна атомарная единица
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		_, err := uc.reservationRepo.FindActive(txCtx, req.Date, req.Time)
		if err == nil {
			return ErrSlotTaken
		}
		if !errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return fmt.Errorf("%w: failed to check active reservation: %v", ErrInternal, err)
		}

		rsv := &domain.Reservation{
			ID:        uuid.NewString(),
			Date:      req.Date,
			Time:      req.Time,
			Name:      req.Name,
			Phone:     req.Phone,
			Menu:      req.Menu,
			Memo:      req.Memo,
			CreatedAt: uc.timeProvider.Now(),
			Status:    domain.StatusReserved,
		}

		created, err := uc.reservationRepo.Create(txCtx, rsv)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		// Нарушение уникального индекса — проигранная гонка,
		// для вызывающего это тот же конфликт слота
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateReservation: lost insert race for date=%s time=%s",
				req.Date.Format(domain.DateFormat), req.Time)
			return nil, ErrSlotTaken
		}
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateReservation: slot date=%s time=%s already reserved",
				req.Date.Format(domain.DateFormat), req.Time)
			return nil, ErrSlotTaken
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", result.ID)

	return &Response{
		ID:        result.ID,
		Date:      result.Date,
		Time:      result.Time,
		Name:      result.Name,
		Phone:     result.Phone,
		Menu:      result.Menu,
		Memo:      result.Memo,
		CreatedAt: result.CreatedAt,
		Status:    string(result.Status),
	}, nil
}
