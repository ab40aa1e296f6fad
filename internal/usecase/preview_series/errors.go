package preview_series

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном черновике записи
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAvailabilityFetch возвращается, когда не удалось получить рабочие дни
	ErrAvailabilityFetch = errors.New("failed to fetch availability")

	// ErrUnauthorized возвращается, когда сервис расписания отклонил токен
	ErrUnauthorized = errors.New("unauthorized")
)
