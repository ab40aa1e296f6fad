package preview_series

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/scheduling"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// UseCase use case предпросмотра серии: какие даты серии можно забронировать
type UseCase struct {
	client         SchedulingClient
	location       *time.Location
	concurrency    int
	maxOccurrences int
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// concurrency - сколько дат запрашивается у сервиса расписания одновременно
func NewUseCase(client SchedulingClient, location *time.Location, concurrency, maxOccurrences int, logger Logger) *UseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &UseCase{
		client:         client,
		location:       location,
		concurrency:    concurrency,
		maxOccurrences: maxOccurrences,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case предпросмотра серии
//
// Рабочие дни запрашиваются один раз, слоты - только для дат, которые не прошли и не закрыты.
// Ошибка получения слотов одной даты дает ей статус DayUnknown и не прерывает остальные.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	draft := req.Draft

	// 1. Валидация черновика
	if err := draft.Validate(); err != nil {
		uc.logger.Warn("PreviewSeries: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if draft.Recurrence != nil && draft.Recurrence.Occurrences > uc.maxOccurrences {
		uc.logger.Warn("PreviewSeries: too many occurrences: %d", draft.Recurrence.Occurrences)
		return nil, fmt.Errorf("%w: occurrences must be at most %d", ErrInvalidInput, uc.maxOccurrences)
	}

	// 2. Строим серию дат в часовом поясе салона
	y, m, d := draft.Date.Date()
	draft.Date = time.Date(y, m, d, 0, 0, 0, 0, uc.location)

	dates, err := draft.Series()
	if err != nil {
		uc.logger.Warn("PreviewSeries: failed to generate series: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Время каждого человека одинаково для всех дат
	items, err := draft.ExpandItems(dates[:1])
	if err != nil {
		uc.logger.Warn("PreviewSeries: failed to expand items: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	times := make([]types.TimeString, len(items))
	for i := range items {
		times[i] = items[i].Time
	}

	uc.logger.Info("PreviewSeries: service=%s, base=%s, time=%s, dates=%d, people=%d",
		draft.ServiceType, draft.Date.Format(domain.DateFormat), draft.Time, len(dates), draft.PeopleCount)

	// 4. Получаем рабочие дни
	workingDays, err := uc.client.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, scheduling.ErrUnauthorized) {
			uc.logger.Warn("PreviewSeries: scheduling service rejected token: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		uc.logger.Error("PreviewSeries: failed to fetch working days: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityFetch, err)
	}
	open := domain.OpenWeekdays(workingDays, draft.ServiceType)

	// 5. Отмечаем прошедшие и закрытые даты
	now := uc.timeProvider.Now()
	days := make([]DayPreview, len(dates))
	for i, date := range dates {
		days[i] = DayPreview{Date: date, Times: times}
		switch {
		case !times[0].On(date, uc.location).After(now):
			days[i].Status = domain.DayPast
		case !open[date.Weekday()]:
			days[i].Status = domain.DayClosed
		}
	}

	// 6. Запрашиваем слоты остальных дат параллельно
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i := range days {
		if days[i].Status != "" {
			continue
		}
		day := &days[i]
		g.Go(func() error {
			slots, err := uc.client.GetSlots(gctx, day.Date)
			if err != nil {
				if errors.Is(err, scheduling.ErrUnauthorized) {
					return err
				}
				uc.logger.Warn("PreviewSeries: failed to fetch slots for %s: %v", day.Date.Format(domain.DateFormat), err)
				day.Status = domain.DayUnknown
				return nil
			}
			day.Status = reconcile(slots, draft.ServiceType, times)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.logger.Warn("PreviewSeries: scheduling service rejected token: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	// 7. Итог
	resp := &Response{ServiceType: draft.ServiceType, Days: days}
	for i := range days {
		if days[i].Status.IsBookable() {
			resp.Bookable++
		}
	}

	uc.logger.Info("PreviewSeries: service=%s: %d of %d dates bookable", draft.ServiceType, resp.Bookable, len(days))
	return resp, nil
}
