package closures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	closureRepo "github.com/dmkaz/RSC-BookingService/internal/infra/storage/closure"
	"github.com/dmkaz/RSC-BookingService/internal/service/closures/models"
	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

// Service сервис для администрирования закрытий записи
//
// Закрытие поверх существующего бронирования допустимо: запись остаётся
// в статусе reserved, но слот отображается как holiday (авто-отмены нет)
type Service struct {
	closureRepo ClosureRepository
	catalog     SlotCatalog
	logger      Logger
}

// NewService создает новый экземпляр сервиса закрытий
func NewService(closureRepo ClosureRepository, catalog SlotCatalog, logger Logger) *Service {
	return &Service{
		closureRepo: closureRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

// Add регистрирует закрытие: всего дня (req.Slot == nil) или одного слота
func (s *Service) Add(ctx context.Context, req *models.AddClosureRequest) (*models.ClosureResponse, error) {
	s.logger.Info("AddClosure: date=%s, slot=%v", req.Date.Format(domain.DateFormat), req.Slot)

	if err := s.validate(req.Date, req.Slot); err != nil {
		s.logger.Warn("AddClosure: validation failed: %v", err)
		return nil, err
	}

	created, err := s.closureRepo.Create(ctx, &domain.Closure{
		Date: req.Date,
		Time: req.Slot,
	})
	if err != nil {
		if errors.Is(err, closureRepo.ErrDuplicateClosure) {
			s.logger.Warn("AddClosure: closure for date=%s slot=%v already exists",
				req.Date.Format(domain.DateFormat), req.Slot)
			return nil, ErrDuplicateClosure
		}
		s.logger.Error("AddClosure: repository error: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddClosure: successfully created closure id=%d", created.ID)
	return models.FromDomainClosure(created), nil
}

// Remove снимает закрытие по точной паре (дата, слот-или-весь-день)
func (s *Service) Remove(ctx context.Context, req *models.RemoveClosureRequest) error {
	s.logger.Info("RemoveClosure: date=%s, slot=%v", req.Date.Format(domain.DateFormat), req.Slot)

	if err := s.validate(req.Date, req.Slot); err != nil {
		s.logger.Warn("RemoveClosure: validation failed: %v", err)
		return err
	}

	if err := s.closureRepo.Delete(ctx, req.Date, req.Slot); err != nil {
		if errors.Is(err, closureRepo.ErrClosureNotFound) {
			s.logger.Warn("RemoveClosure: closure for date=%s slot=%v not found",
				req.Date.Format(domain.DateFormat), req.Slot)
			return ErrClosureNotFound
		}
		s.logger.Error("RemoveClosure: repository error: %v", err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveClosure: successfully removed closure for date=%s slot=%v",
		req.Date.Format(domain.DateFormat), req.Slot)
	return nil
}

// List получает все закрытия в порядке регистрации
func (s *Service) List(ctx context.Context) (*models.ClosureListResponse, error) {
	s.logger.Info("ListClosures: fetching all closures")

	closures, err := s.closureRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListClosures: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListClosures: successfully fetched %d closures", len(closures))
	return models.FromDomainClosureList(closures), nil
}

// validate проверяет дату и принадлежность слота каталогу
func (s *Service) validate(date time.Time, slot *types.TimeString) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if slot != nil && !s.catalog.IsValid(*slot) {
		return ErrInvalidSlot
	}
	return nil
}
