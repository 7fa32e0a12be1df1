package remove_closure

import (
	"context"

	"github.com/dmkaz/RSC-BookingService/internal/service/closures/models"
)

type ClosureService interface {
	Remove(ctx context.Context, req *models.RemoveClosureRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
