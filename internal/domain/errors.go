package domain

import "errors"

var (
	// ErrInvalidRecurrence возвращается при некорректном правиле повторения
	ErrInvalidRecurrence = errors.New("invalid recurrence rule")

	// ErrInvalidDraft возвращается при некорректном черновике записи
	ErrInvalidDraft = errors.New("invalid appointment draft")

	// ErrUnknownWeekday возвращается, если название дня недели не распознано
	ErrUnknownWeekday = errors.New("unknown weekday")
)
