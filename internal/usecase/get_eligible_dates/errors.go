package get_eligible_dates

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAvailabilityFetch возвращается, когда не удалось получить рабочие дни
	// Вместе с ней возвращается пустой ответ, запрос можно повторить
	ErrAvailabilityFetch = errors.New("failed to fetch working days")

	// ErrUnauthorized возвращается, когда сервис расписания отклонил токен
	ErrUnauthorized = errors.New("unauthorized")
)
