package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// AppointmentDraft черновик записи, который собирается по шагам мастера записи
// и отправляется одной или несколькими заявками на создание записи
type AppointmentDraft struct {
	ServiceType            string
	BarberID               *string // опционально
	Date                   time.Time
	Time                   types.TimeString
	PeopleCount            int
	Notes                  *string
	Recurrence             *RecurrenceRule // nil - разовая запись
	MultiSlot              bool            // каждый человек занимает отдельный слот подряд
	ServiceDurationMinutes int
	UnitPrice              float64 // цена услуги на одного человека
}

// Validate проверяет черновик перед генерацией серии
func (d *AppointmentDraft) Validate() error {
	if strings.TrimSpace(d.ServiceType) == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidDraft)
	}
	if d.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDraft)
	}
	if err := d.Time.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}
	if d.PeopleCount < 1 || d.PeopleCount > MaxPeopleCount {
		return fmt.Errorf("%w: peopleCount must be between 1 and %d", ErrInvalidDraft, MaxPeopleCount)
	}
	if d.ServiceDurationMinutes < 1 || d.ServiceDurationMinutes > MaxServiceMinutes {
		return fmt.Errorf("%w: serviceDuration must be between 1 and %d minutes", ErrInvalidDraft, MaxServiceMinutes)
	}
	if d.UnitPrice < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidDraft)
	}
	if d.Notes != nil && utf8.RuneCountInString(*d.Notes) > MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidDraft, MaxNotesLength)
	}
	if d.Recurrence != nil {
		if err := d.Recurrence.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Series возвращает даты серии для черновика
func (d *AppointmentDraft) Series() ([]time.Time, error) {
	return GenerateSeries(StartOfDay(d.Date), d.Recurrence)
}

// ExpandItems раскладывает серию дат на отдельные заявки
//
// Без MultiSlot на каждую дату одна заявка на всех людей.
// С MultiSlot человек k записывается на время Time + k*ServiceDurationMinutes той же даты.
func (d *AppointmentDraft) ExpandItems(dates []time.Time) ([]SubmissionItem, error) {
	perDate := 1
	if d.MultiSlot {
		perDate = d.PeopleCount
	}

	items := make([]SubmissionItem, 0, len(dates)*perDate)
	for _, date := range dates {
		for k := 0; k < perDate; k++ {
			slotTime, err := d.Time.AddMinutes(k * d.ServiceDurationMinutes)
			if err != nil {
				return nil, fmt.Errorf("%w: person %d does not fit into the day: %v", ErrInvalidDraft, k+1, err)
			}

			people := d.PeopleCount
			if d.MultiSlot {
				people = 1
			}

			items = append(items, SubmissionItem{
				Seq:         len(items),
				Date:        StartOfDay(date),
				Time:        slotTime,
				PeopleCount: people,
				PersonIndex: k,
				Status:      ItemPending,
			})
		}
	}
	return items, nil
}

// TotalPrice цена заявки на people человек
func (d *AppointmentDraft) TotalPrice(people int) float64 {
	return d.UnitPrice * float64(people)
}
