package domain

// Форматы дат и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения на поля бронирования
const (
	MaxNameLength = 100
	MaxMemoLength = 500
)
