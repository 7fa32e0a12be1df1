package get_estimate

import "github.com/dmkaz/RSC-BookingService/internal/domain"

type EstimateService interface {
	Estimate(model, repairType string, optionNames []string) (*domain.Estimate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
