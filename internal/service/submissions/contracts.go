package submissions

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/scheduling"
)

// SubmissionRepository интерфейс журнала отправок
type SubmissionRepository interface {
	Create(ctx context.Context, sub *domain.Submission) error
	UpdateItem(ctx context.Context, submissionID uuid.UUID, item *domain.SubmissionItem) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, updatedAt time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
}

// AppointmentClient интерфейс клиента сервиса расписания
type AppointmentClient interface {
	CreateAppointment(ctx context.Context, requestID string, req *scheduling.CreateAppointmentRequest) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// RateLimiter ограничивает частоту POST /appointments (*rate.Limiter)
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Metrics счетчик результатов по заявкам
type Metrics interface {
	IncSeriesItem(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
