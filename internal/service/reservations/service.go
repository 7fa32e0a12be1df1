package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	reservationRepo "github.com/dmkaz/RSC-BookingService/internal/infra/storage/reservation"
	"github.com/dmkaz/RSC-BookingService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	rsv, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(rsv), nil
}

// List получает бронирования в порядке создания записей
// Опционально фильтрует по дате; отменённые записи включаются —
// история сохраняется
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	if req.Date != nil {
		s.logger.Info("List: fetching reservations for date=%s", req.Date.Format(domain.DateFormat))
	} else {
		s.logger.Info("List: fetching all reservations")
	}

	reservations, err := s.reservationRepo.List(ctx, domain.ReservationsFilter{Date: req.Date})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Переход статуса только reserved -> cancelled; повторная отмена
// отклоняется с ErrAlreadyCancelled, запись не удаляется физически
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling reservation id=%s", id)

	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if err := s.reservationRepo.Cancel(ctx, id); err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			s.logger.Warn("Cancel: reservation id=%s not found", id)
			return ErrReservationNotFound
		case errors.Is(err, reservationRepo.ErrAlreadyCancelled):
			s.logger.Warn("Cancel: reservation id=%s already cancelled", id)
			return ErrAlreadyCancelled
		default:
			s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%s", id)
	return nil
}
