package domain

import (
	"time"

	"github.com/dmkaz/RSC-BookingService/pkg/types"
)

// Closure административное закрытие записи
// Две гранулярности одной модели: Time == nil закрывает весь день,
// Time != nil закрывает один слот на эту дату
type Closure struct {
	ID        int64
	Date      time.Time
	Time      *types.TimeString // nil = закрыт весь день
	CreatedAt time.Time
}

// IsFullDay возвращает true, если закрыт весь день
func (c *Closure) IsFullDay() bool {
	return c.Time == nil
}

// Covers возвращает true, если закрытие распространяется на указанный слот
func (c *Closure) Covers(slot types.TimeString) bool {
	return c.Time == nil || *c.Time == slot
}
