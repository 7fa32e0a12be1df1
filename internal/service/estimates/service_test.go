package estimates

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkaz/RSC-BookingService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeReader struct {
	prices  []domain.PriceRow
	options []domain.Option
	err     error
}

func (f *fakeReader) LoadPrices() ([]domain.PriceRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.prices, nil
}

func (f *fakeReader) LoadOptions() ([]domain.Option, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.options, nil
}

func testReader() *fakeReader {
	return &fakeReader{
		prices: []domain.PriceRow{
			{Model: "Pixel 7", RepairType: "Screen Replacement", Cost: 9100, Shipping: 700, ProfitRate: 0.4, Supported: true},
			{Model: "Pixel 7", RepairType: "Battery Replacement", Supported: false},
			{Model: "Galaxy S21", RepairType: "Screen Replacement", Cost: 8400, Shipping: 700, ProfitRate: 0.35, Supported: true},
			{Model: "Galaxy S21", RepairType: "Water Damage", Cost: 5000, Shipping: 700, ProfitRate: 1.0, Supported: true},
		},
		options: []domain.Option{
			{Name: "Glass Coating", Price: 1500},
			{Name: "Express Service", Price: 2000},
		},
	}
}

func TestModels(t *testing.T) {
	svc := NewService(testReader(), noopLogger{})

	models, err := svc.Models()
	require.NoError(t, err)
	// Отсортированы и без дубликатов
	assert.Equal(t, []string{"Galaxy S21", "Pixel 7"}, models)
}

func TestRepairs(t *testing.T) {
	svc := NewService(testReader(), noopLogger{})

	repairs, err := svc.Repairs("Pixel 7")
	require.NoError(t, err)
	// Порядок прайс-листа
	assert.Equal(t, []string{"Screen Replacement", "Battery Replacement"}, repairs)

	repairs, err = svc.Repairs("Unknown Model")
	require.NoError(t, err)
	assert.Empty(t, repairs)

	_, err = svc.Repairs("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOptions(t *testing.T) {
	svc := NewService(testReader(), noopLogger{})

	options, err := svc.Options()
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "Glass Coating", options[0].Name)
}

func TestEstimate(t *testing.T) {
	svc := NewService(testReader(), noopLogger{})

	est, err := svc.Estimate("Pixel 7", "Screen Replacement", nil)
	require.NoError(t, err)
	// (9100 + 700) / (1 - 0.4) = 16333.33 -> усечение к 16333
	assert.Equal(t, 16333, est.BasePrice)
	assert.Equal(t, 16333, est.Total)
	assert.Empty(t, est.Options)
}

func TestEstimate_WithOptions(t *testing.T) {
	svc := NewService(testReader(), noopLogger{})

	// Неизвестная опция пропускается, не ошибка
	est, err := svc.Estimate("Pixel 7", "Screen Replacement",
		[]string{"Glass Coating", "No Such Option", "Express Service"})
	require.NoError(t, err)

	require.Len(t, est.Options, 2)
	assert.Equal(t, est.BasePrice+1500+2000, est.Total)
}

func TestEstimate_Errors(t *testing.T) {
	svc := NewService(testReader(), noopLogger{})

	_, err := svc.Estimate("Pixel 7", "Camera Repair", nil)
	assert.ErrorIs(t, err, ErrRepairNotFound)

	_, err = svc.Estimate("Pixel 7", "Battery Replacement", nil)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = svc.Estimate("Galaxy S21", "Water Damage", nil)
	assert.ErrorIs(t, err, ErrInvalidProfitRate)

	_, err = svc.Estimate("", "Screen Replacement", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEstimate_ReaderError(t *testing.T) {
	svc := NewService(&fakeReader{err: errors.New("file missing")}, noopLogger{})

	_, err := svc.Estimate("Pixel 7", "Screen Replacement", nil)
	assert.ErrorIs(t, err, ErrInternal)
}
