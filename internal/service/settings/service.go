package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/scheduling"
	"github.com/m04kA/SMC-BarberBooking/internal/service/settings/models"
)

// Service сервис настроек рабочих дней салона
// Источник истины - сервис расписания, сервис только проверяет и проксирует
type Service struct {
	client SettingsClient
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(client SettingsClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// GetWorkingDays получает текущие рабочие дни
func (s *Service) GetWorkingDays(ctx context.Context) (*models.WorkingDaysResponse, error) {
	s.logger.Info("GetWorkingDays: fetching working days")

	days, err := s.client.GetSettings(ctx)
	if err != nil {
		s.logger.Error("GetWorkingDays: failed to fetch settings: %v", err)
		return nil, mapClientError(err)
	}

	s.logger.Info("GetWorkingDays: successfully fetched %d working days", len(days))
	return models.FromDomainWorkingDays(days), nil
}

// ReplaceWorkingDays полностью заменяет список рабочих дней
// Дни, не вошедшие в список, сервис расписания удаляет
func (s *Service) ReplaceWorkingDays(ctx context.Context, req *models.ReplaceWorkingDaysRequest) (*models.WorkingDaysResponse, error) {
	s.logger.Info("ReplaceWorkingDays: replacing with %d working days", len(req.WorkingDays))

	// 1. Валидируем входные данные
	days := make([]domain.WorkingDay, 0, len(req.WorkingDays))
	for _, m := range req.WorkingDays {
		days = append(days, m.ToDomain())
	}
	if err := validateWorkingDays(days); err != nil {
		s.logger.Warn("ReplaceWorkingDays: validation failed: %v", err)
		return nil, err
	}

	// 2. Отправляем полный список
	updated, err := s.client.UpdateSettings(ctx, days)
	if err != nil {
		s.logger.Error("ReplaceWorkingDays: failed to update settings: %v", err)
		return nil, mapClientError(err)
	}

	s.logger.Info("ReplaceWorkingDays: successfully saved %d working days", len(updated))
	return models.FromDomainWorkingDays(updated), nil
}

// validateWorkingDays проверяет названия дней, дубликаты и список услуг
func validateWorkingDays(days []domain.WorkingDay) error {
	seen := make(map[time.Weekday]string, len(days))
	for i := range days {
		d := &days[i]
		wd, err := d.Weekday()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if prev, ok := seen[wd]; ok {
			return fmt.Errorf("%w: %q duplicates %q", ErrInvalidInput, d.Name, prev)
		}
		seen[wd] = d.Name

		for _, st := range d.ServiceTypes {
			if strings.TrimSpace(st) == "" {
				return fmt.Errorf("%w: %s has an empty service type", ErrInvalidInput, d.Name)
			}
		}
	}
	return nil
}

func mapClientError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case errors.Is(err, scheduling.ErrForbidden):
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	case errors.Is(err, scheduling.ErrBadRequest):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case scheduling.IsRetryable(err):
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
