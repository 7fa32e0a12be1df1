package get_options

import "github.com/dmkaz/RSC-BookingService/internal/domain"

type EstimateService interface {
	Options() ([]domain.Option, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
