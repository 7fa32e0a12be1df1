package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

func TestNewSlotCatalog(t *testing.T) {
	catalog, err := NewSlotCatalog([]string{"10:00", "11:00", "12:00"})
	require.NoError(t, err)

	assert.Equal(t, 3, catalog.Len())
	assert.True(t, catalog.IsValid("10:00"))
	assert.False(t, catalog.IsValid("13:00"))
}

func TestNewSlotCatalog_Errors(t *testing.T) {
	_, err := NewSlotCatalog(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = NewSlotCatalog([]string{"10:00", "10:00"})
	assert.ErrorIs(t, err, ErrDuplicateSlot)

	_, err = NewSlotCatalog([]string{"10:00", "25:00"})
	assert.ErrorIs(t, err, types.ErrInvalidFormat)
}

// Порядок конфигурации сохраняется, Slots возвращает копию
func TestSlotCatalog_Slots(t *testing.T) {
	catalog, err := NewSlotCatalog([]string{"12:00", "10:00", "11:00"})
	require.NoError(t, err)

	slots := catalog.Slots()
	assert.Equal(t, []types.TimeString{"12:00", "10:00", "11:00"}, slots)

	slots[0] = "09:00"
	assert.Equal(t, []types.TimeString{"12:00", "10:00", "11:00"}, catalog.Slots())
}
