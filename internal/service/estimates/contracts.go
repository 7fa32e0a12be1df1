package estimates

import "github.com/dmkaz/RSC-BookingService/internal/domain"

// PricelistReader интерфейс читателя прайс-листа
// Реализация перечитывает файлы на каждый вызов, устаревшего
// кэшированного представления нет
type PricelistReader interface {
	LoadPrices() ([]domain.PriceRow, error)
	LoadOptions() ([]domain.Option, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
