package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	reservationRepo "github.com/dmkaz/RSC-BookingService/internal/infra/storage/reservation"
	"github.com/dmkaz/RSC-BookingService/internal/service/reservations/models"
	"github.com/dmkaz/RSC-BookingService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	reservations map[string]*domain.Reservation
	order        []string
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeRepo {
	f := &fakeRepo{reservations: make(map[string]*domain.Reservation)}
	for _, rsv := range reservations {
		f.reservations[rsv.ID] = rsv
		f.order = append(f.order, rsv.ID)
	}
	return f
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	rsv, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return rsv, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, id := range f.order {
		rsv := f.reservations[id]
		if filter.Date != nil && !rsv.Date.Equal(*filter.Date) {
			continue
		}
		result = append(result, rsv)
	}
	return result, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id string) error {
	rsv, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	if rsv.IsCancelled() {
		return reservationRepo.ErrAlreadyCancelled
	}
	rsv.Status = domain.StatusCancelled
	return nil
}

var testDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func testReservation(id string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:     id,
		Date:   testDate,
		Time:   "10:00",
		Name:   "Петров",
		Phone:  "+7-900-111-22-33",
		Menu:   "Battery Replacement",
		Status: status,
	}
}

func TestGetByID(t *testing.T) {
	repo := newFakeRepo(testReservation("r1", domain.StatusReserved))
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", resp.ID)
	assert.Equal(t, string(domain.StatusReserved), resp.Status)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.GetByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// История сохраняется: список включает отменённые записи
func TestList_IncludesCancelled(t *testing.T) {
	repo := newFakeRepo(
		testReservation("r1", domain.StatusReserved),
		testReservation("r2", domain.StatusCancelled),
	)
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{Date: ptr.Ptr(testDate)})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, "r1", resp.Reservations[0].ID)
	assert.Equal(t, "r2", resp.Reservations[1].ID)
}

func TestList_DateFilter(t *testing.T) {
	other := testReservation("r2", domain.StatusReserved)
	other.Date = testDate.AddDate(0, 0, 1)

	repo := newFakeRepo(testReservation("r1", domain.StatusReserved), other)
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{Date: ptr.Ptr(testDate)})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "r1", resp.Reservations[0].ID)
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo(testReservation("r1", domain.StatusReserved))
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.reservations["r1"].Status)

	// Повторная отмена отклоняется
	err = svc.Cancel(context.Background(), "r1")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	err = svc.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	err = svc.Cancel(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
