package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAvailabilityFetch возвращается, когда не удалось получить слоты
	// Вместе с ней возвращается пустой ответ, запрос можно повторить
	ErrAvailabilityFetch = errors.New("failed to fetch availability")

	// ErrUnauthorized возвращается, когда сервис расписания отклонил токен
	ErrUnauthorized = errors.New("unauthorized")
)
