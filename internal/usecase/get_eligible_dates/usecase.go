package get_eligible_dates

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/scheduling"
)

// UseCase use case для получения дат, доступных для записи на услугу
type UseCase struct {
	client       SchedulingClient
	location     *time.Location
	horizonDays  int
	limit        int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// horizonDays и limit - значения по умолчанию для запросов без них
func NewUseCase(client SchedulingClient, location *time.Location, horizonDays, limit int, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		location:     location,
		horizonDays:  horizonDays,
		limit:        limit,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if strings.TrimSpace(req.ServiceType) == "" {
		uc.logger.Warn("GetEligibleDates: validation failed: service is required")
		return nil, fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if req.Limit < 0 || req.HorizonDays < 0 {
		uc.logger.Warn("GetEligibleDates: validation failed: limit=%d, horizon=%d", req.Limit, req.HorizonDays)
		return nil, fmt.Errorf("%w: limit and horizon must not be negative", ErrInvalidInput)
	}
	if req.HorizonDays > domain.MaxHorizonDays {
		uc.logger.Warn("GetEligibleDates: validation failed: horizon=%d", req.HorizonDays)
		return nil, fmt.Errorf("%w: horizon must be at most %d days", ErrInvalidInput, domain.MaxHorizonDays)
	}

	// 2. Применяем значения по умолчанию
	horizon := req.HorizonDays
	if horizon == 0 {
		horizon = uc.horizonDays
	}
	limit := req.Limit
	if limit == 0 {
		limit = uc.limit
	}

	// 3. Определяем первую дату: не раньше сегодняшнего дня салона
	today := domain.StartOfDay(uc.timeProvider.Now().In(uc.location))
	from := today
	if req.From != nil {
		y, m, d := req.From.Date()
		if requested := time.Date(y, m, d, 0, 0, 0, 0, uc.location); requested.After(today) {
			from = requested
		}
	}

	resp := &Response{
		ServiceType: req.ServiceType,
		From:        from,
		HorizonDays: horizon,
		Limit:       limit,
		Dates:       []time.Time{},
	}

	uc.logger.Info("GetEligibleDates: service=%s, from=%s, horizon=%d, limit=%d",
		req.ServiceType, from.Format(domain.DateFormat), horizon, limit)

	// 4. Получаем рабочие дни
	days, err := uc.client.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, scheduling.ErrUnauthorized) {
			uc.logger.Warn("GetEligibleDates: scheduling service rejected token: %v", err)
			return resp, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		uc.logger.Error("GetEligibleDates: failed to fetch working days: %v", err)
		return resp, fmt.Errorf("%w: %v", ErrAvailabilityFetch, err)
	}

	// Нераспознанные названия дней пропускаются фильтром, но о них стоит знать
	for i := range days {
		if _, err := days[i].Weekday(); err != nil {
			uc.logger.Warn("GetEligibleDates: ignoring working day id=%s: %v", days[i].ID, err)
		}
	}

	// 5. Отбираем даты
	resp.Dates = domain.EligibleDates(from, req.ServiceType, days, horizon, limit)

	uc.logger.Info("GetEligibleDates: service=%s: found %d dates", req.ServiceType, len(resp.Dates))
	return resp, nil
}
