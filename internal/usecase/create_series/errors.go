package create_series

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном черновике записи
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnauthorized возвращается, когда сервис расписания отклонил токен
	// Вместе с ней возвращается частичный результат
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInterrupted возвращается, когда отправка прервана отменой запроса
	ErrInterrupted = errors.New("submission interrupted")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
