package models

import (
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// WorkingDayModel рабочий день недели салона
type WorkingDayModel struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"` // Monday, Tuesday ...
	Enabled      bool     `json:"enabled"`
	ServiceTypes []string `json:"serviceTypes"`
}

// ReplaceWorkingDaysRequest полная замена списка рабочих дней
type ReplaceWorkingDaysRequest struct {
	WorkingDays []WorkingDayModel `json:"workingDays"`
}

// WorkingDaysResponse список рабочих дней
type WorkingDaysResponse struct {
	WorkingDays []WorkingDayModel `json:"workingDays"`
}

// ToDomain конвертирует DTO в domain модель
func (m WorkingDayModel) ToDomain() domain.WorkingDay {
	serviceTypes := make([]string, len(m.ServiceTypes))
	copy(serviceTypes, m.ServiceTypes)
	return domain.WorkingDay{
		ID:           m.ID,
		Name:         m.Name,
		Enabled:      m.Enabled,
		ServiceTypes: serviceTypes,
	}
}

// FromDomainWorkingDays конвертирует domain модели в DTO
func FromDomainWorkingDays(days []domain.WorkingDay) *WorkingDaysResponse {
	resp := &WorkingDaysResponse{WorkingDays: make([]WorkingDayModel, 0, len(days))}
	for _, d := range days {
		serviceTypes := d.ServiceTypes
		if serviceTypes == nil {
			serviceTypes = []string{}
		}
		resp.WorkingDays = append(resp.WorkingDays, WorkingDayModel{
			ID:           d.ID,
			Name:         d.Name,
			Enabled:      d.Enabled,
			ServiceTypes: serviceTypes,
		})
	}
	return resp
}
