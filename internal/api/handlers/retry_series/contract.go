package retry_series

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions/models"
	retrySeries "github.com/m04kA/SMC-BarberBooking/internal/usecase/retry_series"
)

type RetrySeriesUseCase interface {
	Execute(ctx context.Context, req *retrySeries.Request) (*models.SubmissionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
