package domain

import (
	"fmt"
	"strings"
	"time"
)

// WorkingDay рабочий день недели салона
// Name - название дня недели (Monday, monday, mon ...)
type WorkingDay struct {
	ID           string
	Name         string
	Enabled      bool
	ServiceTypes []string // услуги, на которые открыта запись в этот день
}

var weekdayNames = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// ParseWeekday распознает название дня недели без учета регистра
func ParseWeekday(name string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return time.Sunday, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
	}
	return wd, nil
}

// Weekday возвращает день недели рабочего дня
func (d *WorkingDay) Weekday() (time.Weekday, error) {
	return ParseWeekday(d.Name)
}

// Serves возвращает true, если в этот день есть запись на услугу
func (d *WorkingDay) Serves(serviceType string) bool {
	for _, st := range d.ServiceTypes {
		if st == serviceType {
			return true
		}
	}
	return false
}

// IsOpenFor возвращает true, если день включен и обслуживает услугу
func (d *WorkingDay) IsOpenFor(serviceType string) bool {
	return d.Enabled && d.Serves(serviceType)
}

// OpenWeekdays возвращает дни недели, открытые для услуги
// Дни с нераспознанным названием пропускаются
func OpenWeekdays(days []WorkingDay, serviceType string) map[time.Weekday]bool {
	open := make(map[time.Weekday]bool, 7)
	for i := range days {
		if !days[i].IsOpenFor(serviceType) {
			continue
		}
		wd, err := days[i].Weekday()
		if err != nil {
			continue
		}
		open[wd] = true
	}
	return open
}

// EligibleDates возвращает даты, которые можно показать в выборе даты
//
// Идет по дням от startDate (включительно) не дальше horizonDays календарных дней
// и останавливается, набрав limit дат. Даты возвращаются по возрастанию.
func EligibleDates(startDate time.Time, serviceType string, days []WorkingDay, horizonDays, limit int) []time.Time {
	result := make([]time.Time, 0)
	if horizonDays <= 0 || limit <= 0 {
		return result
	}

	open := OpenWeekdays(days, serviceType)
	if len(open) == 0 {
		return result
	}

	start := StartOfDay(startDate)
	for i := 0; i < horizonDays && len(result) < limit; i++ {
		d := start.AddDate(0, 0, i)
		if open[d.Weekday()] {
			result = append(result, d)
		}
	}
	return result
}

// StartOfDay обнуляет время, сохраняя часовой пояс
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
