package handlers

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// DraftRequest черновик записи в теле POST /series и POST /series/preview
type DraftRequest struct {
	Service         string             `json:"service"`
	BarberID        *string            `json:"barberId,omitempty"`
	Date            string             `json:"date"` // "2025-06-02"
	Time            string             `json:"time"` // "10:00"
	PeopleCount     int                `json:"peopleCount"`
	Notes           *string            `json:"notes,omitempty"`
	Recurrence      *RecurrenceRequest `json:"recurrence,omitempty"`
	MultiSlot       bool               `json:"multiSlot"`
	ServiceDuration int                `json:"serviceDuration"` // минуты
	Price           float64            `json:"price"`           // за одного человека
}

// RecurrenceRequest правило повторения
type RecurrenceRequest struct {
	Interval    int    `json:"interval"`
	Unit        string `json:"unit"` // day, week, month
	Occurrences int    `json:"occurrences"`
}

// ToDomain разбирает дату, время и единицу повторения
// Бизнес-валидация остается за use case
func (r *DraftRequest) ToDomain() (domain.AppointmentDraft, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return domain.AppointmentDraft{}, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}
	t := types.TimeString(r.Time)
	if err := t.Validate(); err != nil {
		return domain.AppointmentDraft{}, err
	}

	draft := domain.AppointmentDraft{
		ServiceType:            r.Service,
		BarberID:               r.BarberID,
		Date:                   date,
		Time:                   t,
		PeopleCount:            r.PeopleCount,
		Notes:                  r.Notes,
		MultiSlot:              r.MultiSlot,
		ServiceDurationMinutes: r.ServiceDuration,
		UnitPrice:              r.Price,
	}
	if r.PeopleCount == 0 {
		draft.PeopleCount = 1
	}

	if r.Recurrence != nil {
		unit, err := domain.ParseRecurrenceUnit(r.Recurrence.Unit)
		if err != nil {
			return domain.AppointmentDraft{}, err
		}
		draft.Recurrence = &domain.RecurrenceRule{
			Interval:    r.Recurrence.Interval,
			Unit:        unit,
			Occurrences: r.Recurrence.Occurrences,
		}
	}
	return draft, nil
}
