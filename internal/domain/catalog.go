package domain

import (
	"errors"
	"fmt"

	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

var (
	// ErrEmptyCatalog возвращается при попытке создать каталог без слотов
	ErrEmptyCatalog = errors.New("domain: slot catalog must not be empty")

	// ErrDuplicateSlot возвращается, когда слот встречается в каталоге дважды
	ErrDuplicateSlot = errors.New("domain: duplicate slot in catalog")
)

// SlotCatalog фиксированный упорядоченный набор слотов рабочего дня
// Конфигурируется один раз при старте; порядок слотов стабилен и
// используется для всех списков доступности
type SlotCatalog struct {
	slots []types.TimeString
	index map[types.TimeString]struct{}
}

// NewSlotCatalog создает каталог из строк вида "HH:MM", сохраняя порядок
func NewSlotCatalog(raw []string) (*SlotCatalog, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyCatalog
	}

	slots := make([]types.TimeString, 0, len(raw))
	index := make(map[types.TimeString]struct{}, len(raw))

	for _, s := range raw {
		slot, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, err
		}
		if _, ok := index[slot]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlot, slot)
		}
		slots = append(slots, slot)
		index[slot] = struct{}{}
	}

	return &SlotCatalog{slots: slots, index: index}, nil
}

// IsValid возвращает true, если слот входит в каталог
func (c *SlotCatalog) IsValid(slot types.TimeString) bool {
	_, ok := c.index[slot]
	return ok
}

// Slots возвращает копию слотов в каталожном порядке
func (c *SlotCatalog) Slots() []types.TimeString {
	out := make([]types.TimeString, len(c.slots))
	copy(out, c.slots)
	return out
}

// Len возвращает число слотов в каталоге
func (c *SlotCatalog) Len() int {
	return len(c.slots)
}
