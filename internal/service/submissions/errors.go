package submissions

import "errors"

var (
	// ErrSubmissionNotFound возвращается, когда отправка серии не найдена
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrSubmissionBusy возвращается, когда по отправке уже идет отправка заявок
	ErrSubmissionBusy = errors.New("submission is being processed")

	// ErrUnauthorized возвращается, когда сервис расписания отклонил токен
	// Отправка останавливается, оставшиеся заявки остаются pending
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInterrupted возвращается, когда отправка прервана отменой контекста
	ErrInterrupted = errors.New("submission interrupted")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
