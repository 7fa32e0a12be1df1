package domain

import "github.com/dmkaz/RSC-BookingService/pkg/types"

// SlotStatus разрешённый статус слота на дату
type SlotStatus string

const (
	// SlotAvailable слот свободен для бронирования
	SlotAvailable SlotStatus = "available"

	// SlotReserved слот удерживается активным бронированием
	SlotReserved SlotStatus = "reserved"

	// SlotHoliday слот закрыт административно
	// Имеет приоритет над reserved: закрытие поверх существующего
	// бронирования не отменяет запись, но слот отображается как holiday
	SlotHoliday SlotStatus = "holiday"
)

// DaySlot статус одного слота каталога на запрошенную дату
type DaySlot struct {
	Time   types.TimeString
	Status SlotStatus
}
