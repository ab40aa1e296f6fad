package domain

import "github.com/m04kA/SMC-BarberBooking/pkg/types"

// TimeSlot слот на конкретную дату для конкретной услуги, как его отдает сервис расписания
type TimeSlot struct {
	Time        types.TimeString
	Available   bool
	ServiceType string
}

// IsFor возвращает true, если слот относится к услуге
func (s *TimeSlot) IsFor(serviceType string) bool {
	return s.ServiceType == serviceType
}

// DayStatus результат сверки одной даты серии с календарем
type DayStatus string

const (
	DayAvailable DayStatus = "available"  // слот свободен
	DaySlotTaken DayStatus = "slot_taken" // слот есть, но занят
	DayNoSlot    DayStatus = "no_slot"    // на это время нет слота для услуги
	DayClosed    DayStatus = "day_closed" // день недели закрыт для услуги
	DayPast      DayStatus = "past"       // время уже прошло
	DayUnknown   DayStatus = "unknown"    // не удалось получить слоты, можно повторить
)

// IsBookable возвращает true, если на эту дату можно отправить запись
func (s DayStatus) IsBookable() bool {
	return s == DayAvailable
}
