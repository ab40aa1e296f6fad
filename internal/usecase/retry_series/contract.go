package retry_series

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// SubmissionService интерфейс сервиса отправок серий
type SubmissionService interface {
	Load(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	Submit(ctx context.Context, sub *domain.Submission) (*domain.Submission, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
