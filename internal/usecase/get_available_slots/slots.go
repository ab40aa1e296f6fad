package get_available_slots

import (
	"slices"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// splitSlots отбирает слоты услуги и делит их на свободные и занятые
//
// Свободный слот отбрасывается, если момент date+время в часовом поясе loc
// уже наступил (slot <= now). Для будущих дат это условие никогда не выполняется.
// Занятые слоты по времени не фильтруются.
// Оба списка отсортированы по возрастанию и без повторов.
func splitSlots(slots []domain.TimeSlot, serviceType string, date, now time.Time, loc *time.Location) (available, booked []types.TimeString) {
	available = make([]types.TimeString, 0, len(slots))
	booked = make([]types.TimeString, 0)

	for i := range slots {
		slot := &slots[i]
		if !slot.IsFor(serviceType) {
			continue
		}

		if !slot.Available {
			booked = append(booked, slot.Time)
			continue
		}

		if !slot.Time.On(date, loc).After(now) {
			continue
		}
		available = append(available, slot.Time)
	}

	return sortUnique(available), sortUnique(booked)
}

// sortUnique сортирует HH:MM строки и убирает повторы
// Для HH:MM лексикографический порядок совпадает с хронологическим
func sortUnique(times []types.TimeString) []types.TimeString {
	slices.Sort(times)
	return slices.Compact(times)
}
