package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном списке рабочих дней
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnauthorized возвращается, когда сервис расписания отклонил токен
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAccessDenied возвращается, когда у пользователя нет прав менять настройки
	ErrAccessDenied = errors.New("access denied")

	// ErrUpstream возвращается, когда сервис расписания недоступен
	ErrUpstream = errors.New("scheduling service unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
