package replace_working_days

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/settings/models"
)

type SettingsService interface {
	ReplaceWorkingDays(ctx context.Context, req *models.ReplaceWorkingDaysRequest) (*models.WorkingDaysResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
