package closures

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
	closureRepo "github.com/dmkaz/RSC-BookingService/internal/infra/storage/closure"
	"github.com/dmkaz/RSC-BookingService/internal/service/closures/models"
	"github.com/dmkaz/RSC-BookingService/pkg/ptr"
	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeClosureRepo struct {
	closures []*domain.Closure
	nextID   int64
}

func sameSlot(a, b *types.TimeString) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (f *fakeClosureRepo) Create(_ context.Context, c *domain.Closure) (*domain.Closure, error) {
	for _, existing := range f.closures {
		if existing.Date.Equal(c.Date) && sameSlot(existing.Time, c.Time) {
			return nil, closureRepo.ErrDuplicateClosure
		}
	}

	f.nextID++
	stored := *c
	stored.ID = f.nextID
	f.closures = append(f.closures, &stored)
	return &stored, nil
}

func (f *fakeClosureRepo) Delete(_ context.Context, date time.Time, slot *types.TimeString) error {
	for i, existing := range f.closures {
		if existing.Date.Equal(date) && sameSlot(existing.Time, slot) {
			f.closures = append(f.closures[:i], f.closures[i+1:]...)
			return nil
		}
	}
	return closureRepo.ErrClosureNotFound
}

func (f *fakeClosureRepo) List(_ context.Context) ([]*domain.Closure, error) {
	return f.closures, nil
}

var testDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, repo *fakeClosureRepo) *Service {
	t.Helper()
	catalog, err := domain.NewSlotCatalog([]string{"10:00", "11:00"})
	require.NoError(t, err)
	return NewService(repo, catalog, noopLogger{})
}

func TestAdd_FullDayAndSlot(t *testing.T) {
	repo := &fakeClosureRepo{}
	svc := newTestService(t, repo)

	// Закрытие всего дня и закрытие слота на ту же дату — разные записи
	fullDay, err := svc.Add(context.Background(), &models.AddClosureRequest{Date: testDate})
	require.NoError(t, err)
	assert.Nil(t, fullDay.Slot)

	slot, err := svc.Add(context.Background(), &models.AddClosureRequest{
		Date: testDate,
		Slot: ptr.Ptr(types.TimeString("10:00")),
	})
	require.NoError(t, err)
	require.NotNil(t, slot.Slot)
	assert.Equal(t, types.TimeString("10:00"), *slot.Slot)

	assert.Len(t, repo.closures, 2)
}

func TestAdd_Duplicate(t *testing.T) {
	svc := newTestService(t, &fakeClosureRepo{})

	req := &models.AddClosureRequest{Date: testDate, Slot: ptr.Ptr(types.TimeString("10:00"))}

	_, err := svc.Add(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateClosure)
}

func TestAdd_Validation(t *testing.T) {
	svc := newTestService(t, &fakeClosureRepo{})

	_, err := svc.Add(context.Background(), &models.AddClosureRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Add(context.Background(), &models.AddClosureRequest{
		Date: testDate,
		Slot: ptr.Ptr(types.TimeString("23:30")),
	})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

// Снятие закрытия идёт по точной паре: снятие закрытия слота не трогает
// закрытие всего дня
func TestRemove_ExactPair(t *testing.T) {
	repo := &fakeClosureRepo{}
	svc := newTestService(t, repo)

	_, err := svc.Add(context.Background(), &models.AddClosureRequest{Date: testDate})
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), &models.AddClosureRequest{
		Date: testDate,
		Slot: ptr.Ptr(types.TimeString("10:00")),
	})
	require.NoError(t, err)

	err = svc.Remove(context.Background(), &models.RemoveClosureRequest{
		Date: testDate,
		Slot: ptr.Ptr(types.TimeString("10:00")),
	})
	require.NoError(t, err)

	require.Len(t, repo.closures, 1)
	assert.Nil(t, repo.closures[0].Time)
}

func TestRemove_NotFound(t *testing.T) {
	svc := newTestService(t, &fakeClosureRepo{})

	err := svc.Remove(context.Background(), &models.RemoveClosureRequest{Date: testDate})
	assert.ErrorIs(t, err, ErrClosureNotFound)
}

func TestList(t *testing.T) {
	svc := newTestService(t, &fakeClosureRepo{})

	_, err := svc.Add(context.Background(), &models.AddClosureRequest{Date: testDate})
	require.NoError(t, err)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Closures, 1)
	assert.True(t, resp.Closures[0].Date.Equal(testDate))
}
