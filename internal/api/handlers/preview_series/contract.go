package preview_series

import (
	"context"

	previewSeries "github.com/m04kA/SMC-BarberBooking/internal/usecase/preview_series"
)

type PreviewSeriesUseCase interface {
	Execute(ctx context.Context, req *previewSeries.Request) (*previewSeries.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
