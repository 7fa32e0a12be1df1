package add_closure

import (
	"context"

	"github.com/dmkaz/RSC-BookingService/internal/service/closures/models"
)

type ClosureService interface {
	Add(ctx context.Context, req *models.AddClosureRequest) (*models.ClosureResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
