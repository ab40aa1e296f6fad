package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/scheduling"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	client       SchedulingClient
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс салона, в нем сравниваются слоты с текущим временем
func NewUseCase(client SchedulingClient, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
//
// При ошибке получения слотов возвращает пустой ответ вместе с ErrAvailabilityFetch
// (или ErrUnauthorized на 401), чтобы вызывающий не показал список от прошлой даты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if strings.TrimSpace(req.ServiceType) == "" {
		uc.logger.Warn("GetAvailableSlots: validation failed: service is required")
		return nil, fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: validation failed: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Приводим дату к часовому поясу салона
	y, m, d := req.Date.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, uc.location)

	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.ServiceType, date.Format(domain.DateFormat))

	// 3. Получаем слоты на дату
	slots, err := uc.client.GetSlots(ctx, date)
	if err != nil {
		if errors.Is(err, scheduling.ErrUnauthorized) {
			uc.logger.Warn("GetAvailableSlots: scheduling service rejected token: %v", err)
			return emptyResponse(req, date), fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to fetch slots for %s: %v", date.Format(domain.DateFormat), err)
		return emptyResponse(req, date), fmt.Errorf("%w: %v", ErrAvailabilityFetch, err)
	}

	// 4. Отбираем слоты услуги и убираем прошедшие
	now := uc.timeProvider.Now()
	available, booked := splitSlots(slots, req.ServiceType, date, now, uc.location)

	uc.logger.Info("GetAvailableSlots: service=%s, date=%s: %d available, %d booked (of %d total)",
		req.ServiceType, date.Format(domain.DateFormat), len(available), len(booked), len(slots))

	return &Response{
		Date:        date,
		ServiceType: req.ServiceType,
		Available:   available,
		Booked:      booked,
	}, nil
}
