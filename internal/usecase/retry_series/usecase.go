package retry_series

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions"
	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions/models"
)

// UseCase use case повторной отправки заявок серии, которые не были созданы
type UseCase struct {
	submissions SubmissionService
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(submissions SubmissionService, logger Logger) *UseCase {
	return &UseCase{
		submissions: submissions,
		logger:      logger,
	}
}

// Execute выполняет use case повтора
// Созданные заявки не отправляются повторно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.SubmissionResponse, error) {
	uc.logger.Info("RetrySeries: submission id=%s", req.SubmissionID)

	// 1. Загружаем отправку
	sub, err := uc.submissions.Load(ctx, req.SubmissionID)
	if err != nil {
		if errors.Is(err, submissions.ErrSubmissionNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 2. Проверяем, что есть что повторять
	if !sub.HasRemainder() {
		uc.logger.Warn("RetrySeries: submission id=%s has no failed or pending items", sub.ID)
		return nil, ErrNothingToRetry
	}

	// 3. Отправляем остаток
	result, err := uc.submissions.Submit(ctx, sub)
	if err != nil {
		switch {
		case errors.Is(err, submissions.ErrSubmissionBusy):
			return nil, ErrSubmissionBusy
		case errors.Is(err, submissions.ErrUnauthorized):
			return models.FromDomainSubmission(result), fmt.Errorf("%w: %v", ErrUnauthorized, err)
		case errors.Is(err, submissions.ErrInterrupted):
			return models.FromDomainSubmission(result), fmt.Errorf("%w: %v", ErrInterrupted, err)
		default:
			return models.FromDomainSubmission(result), fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("RetrySeries: submission id=%s finished with status=%s", sub.ID, result.Status)
	return models.FromDomainSubmission(result), nil
}
