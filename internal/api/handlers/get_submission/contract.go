package get_submission

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions/models"
)

type SubmissionService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.SubmissionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
