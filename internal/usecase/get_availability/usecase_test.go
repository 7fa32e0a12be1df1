package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	"github.com/dmkaz/RSC-BookingService/pkg/ptr"
	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	calls        int
}

func (f *fakeReservationRepo) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.calls++

	result := make([]*domain.Reservation, 0, len(f.reservations))
	for _, rsv := range f.reservations {
		if filter.Date != nil && !rsv.Date.Equal(*filter.Date) {
			continue
		}
		if filter.Status != nil && rsv.Status != *filter.Status {
			continue
		}
		result = append(result, rsv)
	}
	return result, nil
}

type fakeClosureRepo struct {
	closures []*domain.Closure
}

func (f *fakeClosureRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Closure, error) {
	result := make([]*domain.Closure, 0, len(f.closures))
	for _, c := range f.closures {
		if c.Date.Equal(date) {
			result = append(result, c)
		}
	}
	return result, nil
}

var testDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, rsvRepo *fakeReservationRepo, closRepo *fakeClosureRepo) *UseCase {
	t.Helper()
	catalog, err := domain.NewSlotCatalog([]string{"10:00", "11:00", "12:00"})
	require.NoError(t, err)
	return NewUseCase(rsvRepo, closRepo, catalog, noopLogger{})
}

func slotStatuses(slots []domain.DaySlot) map[types.TimeString]domain.SlotStatus {
	m := make(map[types.TimeString]domain.SlotStatus, len(slots))
	for _, s := range slots {
		m[s.Time] = s.Status
	}
	return m
}

func TestExecute_AllAvailable(t *testing.T) {
	uc := newTestUseCase(t, &fakeReservationRepo{}, &fakeClosureRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	for _, slot := range resp.Slots {
		assert.Equal(t, domain.SlotAvailable, slot.Status)
	}
}

// Слоты выдаются в каталожном порядке, по одной записи на слот
func TestExecute_CatalogOrder(t *testing.T) {
	uc := newTestUseCase(t, &fakeReservationRepo{}, &fakeClosureRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	want := []types.TimeString{"10:00", "11:00", "12:00"}
	require.Len(t, resp.Slots, len(want))
	for i, slot := range resp.Slots {
		assert.Equal(t, want[i], slot.Time)
	}
}

// Закрытие всего дня: все слоты holiday, хранилище бронирований
// не опрашивается
func TestExecute_FullDayClosure(t *testing.T) {
	rsvRepo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{ID: "r1", Date: testDate, Time: "10:00", Status: domain.StatusReserved},
		},
	}
	closRepo := &fakeClosureRepo{
		closures: []*domain.Closure{{ID: 1, Date: testDate}},
	}
	uc := newTestUseCase(t, rsvRepo, closRepo)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	for _, slot := range resp.Slots {
		assert.Equal(t, domain.SlotHoliday, slot.Status)
	}
	assert.Zero(t, rsvRepo.calls, "reservation store must not be consulted")
}

// Закрытие слота имеет приоритет над бронированием на том же слоте
func TestExecute_SlotClosurePrecedesReservation(t *testing.T) {
	rsvRepo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{ID: "r1", Date: testDate, Time: "10:00", Status: domain.StatusReserved},
			{ID: "r2", Date: testDate, Time: "11:00", Status: domain.StatusReserved},
		},
	}
	closRepo := &fakeClosureRepo{
		closures: []*domain.Closure{
			{ID: 1, Date: testDate, Time: ptr.Ptr(types.TimeString("10:00"))},
		},
	}
	uc := newTestUseCase(t, rsvRepo, closRepo)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	statuses := slotStatuses(resp.Slots)
	assert.Equal(t, domain.SlotHoliday, statuses["10:00"])
	assert.Equal(t, domain.SlotReserved, statuses["11:00"])
	assert.Equal(t, domain.SlotAvailable, statuses["12:00"])
}

// Отменённое бронирование не влияет на доступность
func TestExecute_CancelledReservationIgnored(t *testing.T) {
	rsvRepo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{ID: "r1", Date: testDate, Time: "10:00", Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(t, rsvRepo, &fakeClosureRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	statuses := slotStatuses(resp.Slots)
	assert.Equal(t, domain.SlotAvailable, statuses["10:00"])
}

// Бронирование на слот вне каталога не порождает лишнюю запись
func TestExecute_OffCatalogReservationIgnored(t *testing.T) {
	rsvRepo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{ID: "r1", Date: testDate, Time: "23:30", Status: domain.StatusReserved},
		},
	}
	uc := newTestUseCase(t, rsvRepo, &fakeClosureRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 3)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := newTestUseCase(t, &fakeReservationRepo{}, &fakeClosureRepo{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
