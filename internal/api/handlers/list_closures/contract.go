package list_closures

import (
	"context"

	"github.com/dmkaz/RSC-BookingService/internal/service/closures/models"
)

type ClosureService interface {
	List(ctx context.Context) (*models.ClosureListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
