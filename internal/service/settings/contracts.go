package settings

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// SettingsClient интерфейс клиента настроек сервиса расписания
type SettingsClient interface {
	GetSettings(ctx context.Context) ([]domain.WorkingDay, error)
	UpdateSettings(ctx context.Context, days []domain.WorkingDay) ([]domain.WorkingDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
