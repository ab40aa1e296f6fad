package create_series

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions/models"
	createSeries "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_series"
)

type CreateSeriesUseCase interface {
	Execute(ctx context.Context, req *createSeries.Request) (*models.SubmissionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
