package create_series

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions"
	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions/models"
)

// UseCase use case записи серией: одна заявка на дату (или на человека при MultiSlot)
type UseCase struct {
	submissions    SubmissionService
	location       *time.Location
	maxOccurrences int
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(submissions SubmissionService, location *time.Location, maxOccurrences int, logger Logger) *UseCase {
	return &UseCase{
		submissions:    submissions,
		location:       location,
		maxOccurrences: maxOccurrences,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case записи серией
//
// Ответ содержит результат по каждой заявке и возвращается и вместе с ErrUnauthorized
// или ErrInterrupted: часть записей к этому моменту уже может быть создана.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.SubmissionResponse, error) {
	draft := req.Draft

	// 1. Валидация черновика
	if err := draft.Validate(); err != nil {
		uc.logger.Warn("CreateSeries: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if draft.Recurrence != nil && draft.Recurrence.Occurrences > uc.maxOccurrences {
		uc.logger.Warn("CreateSeries: too many occurrences: %d", draft.Recurrence.Occurrences)
		return nil, fmt.Errorf("%w: occurrences must be at most %d", ErrInvalidInput, uc.maxOccurrences)
	}

	y, m, d := draft.Date.Date()
	draft.Date = time.Date(y, m, d, 0, 0, 0, 0, uc.location)
	now := uc.timeProvider.Now()

	// 2. Первая запись не может быть в прошлом
	if !draft.Time.On(draft.Date, uc.location).After(now) {
		uc.logger.Warn("CreateSeries: base date %s %s is in the past", draft.Date.Format(domain.DateFormat), draft.Time)
		return nil, fmt.Errorf("%w: appointment time is in the past", ErrInvalidInput)
	}

	// 3. Строим серию и раскладываем на заявки
	dates, err := draft.Series()
	if err != nil {
		uc.logger.Warn("CreateSeries: failed to generate series: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	items, err := draft.ExpandItems(dates)
	if err != nil {
		uc.logger.Warn("CreateSeries: failed to expand items: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sub := &domain.Submission{
		ID:        uuid.New(),
		Draft:     draft,
		Status:    domain.SubmissionPending,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	uc.logger.Info("CreateSeries: submission id=%s, service=%s, base=%s %s, dates=%d, items=%d",
		sub.ID, draft.ServiceType, draft.Date.Format(domain.DateFormat), draft.Time, len(dates), len(items))

	// 4. Записываем серию в журнал до первой заявки
	if err := uc.submissions.Record(ctx, sub); err != nil {
		uc.logger.Error("CreateSeries: failed to record submission: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Отправляем заявки
	result, err := uc.submissions.Submit(ctx, sub)
	if err != nil {
		return models.FromDomainSubmission(result), mapSubmitError(err)
	}

	uc.logger.Info("CreateSeries: submission id=%s finished with status=%s", sub.ID, result.Status)
	return models.FromDomainSubmission(result), nil
}

func mapSubmitError(err error) error {
	switch {
	case errors.Is(err, submissions.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.Is(err, submissions.ErrInterrupted):
		return fmt.Errorf("%w: %v", ErrInterrupted, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
