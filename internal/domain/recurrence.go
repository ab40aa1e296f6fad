package domain

import (
	"fmt"
	"strings"
	"time"
)

// RecurrenceUnit единица интервала повторения
type RecurrenceUnit string

const (
	UnitDay   RecurrenceUnit = "day"
	UnitWeek  RecurrenceUnit = "week"
	UnitMonth RecurrenceUnit = "month"
)

// ParseRecurrenceUnit распознает единицу повторения (day/days, week/weeks, month/months)
func ParseRecurrenceUnit(s string) (RecurrenceUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "days", "daily":
		return UnitDay, nil
	case "week", "weeks", "weekly":
		return UnitWeek, nil
	case "month", "months", "monthly":
		return UnitMonth, nil
	default:
		return "", fmt.Errorf("%w: unknown unit %q", ErrInvalidRecurrence, s)
	}
}

// RecurrenceRule правило "каждые Interval единиц Unit, всего Occurrences раз"
type RecurrenceRule struct {
	Interval    int
	Unit        RecurrenceUnit
	Occurrences int
}

// Validate проверяет правило до генерации серии
func (r *RecurrenceRule) Validate() error {
	if r.Interval < 1 {
		return fmt.Errorf("%w: interval must be positive, got %d", ErrInvalidRecurrence, r.Interval)
	}
	if r.Occurrences < 1 {
		return fmt.Errorf("%w: occurrences must be positive, got %d", ErrInvalidRecurrence, r.Occurrences)
	}
	switch r.Unit {
	case UnitDay, UnitWeek, UnitMonth:
	default:
		return fmt.Errorf("%w: unknown unit %q", ErrInvalidRecurrence, r.Unit)
	}
	return nil
}

// IsRepeating возвращает true, если правило дает больше одной даты
func (r *RecurrenceRule) IsRepeating() bool {
	return r != nil && r.Occurrences > 1
}

// GenerateSeries строит упорядоченную серию дат из базовой даты и правила
//
// Без правила результат - одна базовая дата.
// Элемент i вычисляется от базовой даты (base + i*Interval), а не от предыдущего элемента,
// поэтому разная длина месяцев не накапливает сдвиг.
// Для месяцев день фиксируется по концу месяца: 31 января + 1 месяц = 28 (29) февраля.
func GenerateSeries(base time.Time, rule *RecurrenceRule) ([]time.Time, error) {
	if rule == nil {
		return []time.Time{base}, nil
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	series := make([]time.Time, rule.Occurrences)
	series[0] = base
	for i := 1; i < rule.Occurrences; i++ {
		series[i] = offset(base, rule.Unit, i*rule.Interval)
	}
	return series, nil
}

func offset(base time.Time, unit RecurrenceUnit, n int) time.Time {
	switch unit {
	case UnitWeek:
		return base.AddDate(0, 0, 7*n)
	case UnitMonth:
		return AddMonthsClamped(base, n)
	default:
		return base.AddDate(0, 0, n)
	}
}

// AddMonthsClamped прибавляет n календарных месяцев
// Если в целевом месяце нет такого дня, берется последний день месяца
func AddMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	// Первое число целевого месяца, time.Date нормализует переполнение месяца
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	ty, tm, _ := first.Date()

	if last := daysIn(ty, tm); d > last {
		d = last
	}
	return time.Date(ty, tm, d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
