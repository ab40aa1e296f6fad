package submissions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	submissionRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/submission"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/scheduling"
	"github.com/m04kA/SMC-BarberBooking/internal/service/submissions/models"
)

const (
	outcomeCreated = "created"
	outcomeFailed  = "failed"
	outcomeSkipped = "skipped"
)

// Service сервис отправки серий записей и журнала отправок
type Service struct {
	repo         SubmissionRepository
	client       AppointmentClient
	txManager    TransactionManager
	limiter      RateLimiter
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger

	// inflight отправки, по которым сейчас идут POST /appointments
	inflight sync.Map
}

// NewService создает новый экземпляр сервиса отправок
// metrics может быть nil
func NewService(
	repo SubmissionRepository,
	client AppointmentClient,
	txManager TransactionManager,
	limiter RateLimiter,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		client:       client,
		txManager:    txManager,
		limiter:      limiter,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает отправку серии с результатами по заявкам
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.SubmissionResponse, error) {
	s.logger.Info("GetByID: fetching submission id=%s", id)

	sub, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched submission id=%s, status=%s", id, sub.Status)
	return models.FromDomainSubmission(sub), nil
}

// Load получает доменную модель отправки
func (s *Service) Load(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, submissionRepo.ErrSubmissionNotFound) {
			s.logger.Warn("Load: submission id=%s not found", id)
			return nil, ErrSubmissionNotFound
		}
		s.logger.Error("Load: repository error for submission id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}
	return sub, nil
}

// Record сохраняет новую отправку со всеми заявками в статусе pending
// Выполняется до первого POST, чтобы журнал знал обо всей серии
func (s *Service) Record(ctx context.Context, sub *domain.Submission) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.repo.Create(txCtx, sub)
	})
	if err != nil {
		s.logger.Error("Record: failed to save submission id=%s: %v", sub.ID, err)
		return fmt.Errorf("%w: Record - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Record: saved submission id=%s with %d items", sub.ID, len(sub.Items))
	return nil
}

// Submit отправляет все заявки, которые еще не созданы, по одной
//
// Ошибка одной заявки не прерывает цикл: заявка помечается failed, отправка идет дальше.
// 401 от сервиса расписания или отмена контекста останавливают цикл,
// оставшиеся заявки сохраняют прежний статус.
// Результат каждой заявки сразу пишется в журнал. Возвращается отправка с итоговым статусом
// даже вместе с ошибкой ErrUnauthorized или ErrInterrupted.
func (s *Service) Submit(ctx context.Context, sub *domain.Submission) (*domain.Submission, error) {
	if _, busy := s.inflight.LoadOrStore(sub.ID, struct{}{}); busy {
		s.logger.Warn("Submit: submission id=%s is already being processed", sub.ID)
		return nil, ErrSubmissionBusy
	}
	defer s.inflight.Delete(sub.ID)

	s.logger.Info("Submit: submission id=%s, service=%s, items=%d", sub.ID, sub.Draft.ServiceType, len(sub.Items))

	// Журнал пишем и после отмены запроса, иначе созданные записи потеряются
	persistCtx := context.WithoutCancel(ctx)

	var stopErr error
	for i := range sub.Items {
		item := &sub.Items[i]
		if !item.NeedsRetry() {
			continue
		}

		// 1. Ждем токен лимитера
		if err := s.limiter.Wait(ctx); err != nil {
			s.logger.Warn("Submit: submission id=%s interrupted before item seq=%d: %v", sub.ID, item.Seq, err)
			stopErr = fmt.Errorf("%w: %v", ErrInterrupted, err)
			break
		}

		// 2. Отправляем заявку
		appointmentID, err := s.client.CreateAppointment(ctx, itemRequestID(sub.ID, item.Seq), buildRequest(&sub.Draft, item))
		now := s.timeProvider.Now()

		// 3. Фиксируем результат
		switch {
		case err == nil:
			item.MarkCreated(appointmentID, now)
			s.incItem(outcomeCreated)
			s.logger.Info("Submit: item seq=%d (%s %s) created as appointment=%s",
				item.Seq, item.Date.Format(domain.DateFormat), item.Time, appointmentID)
		case errors.Is(err, scheduling.ErrUnauthorized):
			s.logger.Warn("Submit: submission id=%s stopped at item seq=%d: %v", sub.ID, item.Seq, err)
			stopErr = fmt.Errorf("%w: %v", ErrUnauthorized, err)
		case ctx.Err() != nil:
			s.logger.Warn("Submit: submission id=%s interrupted at item seq=%d: %v", sub.ID, item.Seq, ctx.Err())
			stopErr = fmt.Errorf("%w: %v", ErrInterrupted, ctx.Err())
		default:
			item.MarkFailed(err.Error(), now)
			s.incItem(outcomeFailed)
			s.logger.Warn("Submit: item seq=%d (%s %s) failed: %v",
				item.Seq, item.Date.Format(domain.DateFormat), item.Time, err)
		}
		if stopErr != nil {
			break
		}

		if err := s.repo.UpdateItem(persistCtx, sub.ID, item); err != nil {
			s.logger.Error("Submit: failed to save item seq=%d of submission id=%s: %v", item.Seq, sub.ID, err)
		}
	}

	if stopErr != nil {
		for i := range sub.Items {
			if sub.Items[i].NeedsRetry() && sub.Items[i].AttemptedAt == nil {
				s.incItem(outcomeSkipped)
			}
		}
	}

	// 4. Итоговый статус
	sub.Status = sub.ResolveStatus()
	sub.UpdatedAt = s.timeProvider.Now()
	if err := s.repo.UpdateStatus(persistCtx, sub.ID, sub.Status, sub.UpdatedAt); err != nil {
		s.logger.Error("Submit: failed to save status of submission id=%s: %v", sub.ID, err)
		if stopErr == nil {
			stopErr = fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
		}
	}

	created, failed, pending := sub.Counts()
	s.logger.Info("Submit: submission id=%s finished with status=%s (created=%d, failed=%d, pending=%d)",
		sub.ID, sub.Status, created, failed, pending)

	return sub, stopErr
}

func (s *Service) incItem(outcome string) {
	if s.metrics != nil {
		s.metrics.IncSeriesItem(outcome)
	}
}

// itemRequestID стабильный X-Request-ID заявки: повторная отправка той же заявки
// приходит в сервис расписания с тем же идентификатором
func itemRequestID(submissionID uuid.UUID, seq int) string {
	return uuid.NewSHA1(submissionID, []byte(strconv.Itoa(seq))).String()
}

// buildRequest собирает тело POST /appointments для заявки
func buildRequest(draft *domain.AppointmentDraft, item *domain.SubmissionItem) *scheduling.CreateAppointmentRequest {
	req := &scheduling.CreateAppointmentRequest{
		Service:         draft.ServiceType,
		Barber:          draft.BarberID,
		Date:            item.Date.Format(domain.DateFormat),
		Time:            item.Time.String(),
		PeopleCount:     item.PeopleCount,
		TotalPrice:      draft.TotalPrice(item.PeopleCount),
		IsRepeating:     draft.Recurrence.IsRepeating(),
		ServiceDuration: draft.ServiceDurationMinutes,
	}
	if draft.Notes != nil {
		req.Notes = *draft.Notes
	}
	if req.IsRepeating {
		req.RepeatConfig = &scheduling.RepeatConfig{
			Interval:    draft.Recurrence.Interval,
			Unit:        string(draft.Recurrence.Unit),
			Occurrences: draft.Recurrence.Occurrences,
		}
	}
	return req
}
