package get_eligible_dates

import (
	"context"

	getEligibleDates "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_eligible_dates"
)

type GetEligibleDatesUseCase interface {
	Execute(ctx context.Context, req *getEligibleDates.Request) (*getEligibleDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
