package retry_series

import "errors"

var (
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrNothingToRetry возвращается, если все заявки отправки уже созданы
	ErrNothingToRetry = errors.New("nothing to retry")

	// ErrSubmissionBusy возвращается, если отправка сейчас обрабатывается другим запросом
	ErrSubmissionBusy = errors.New("submission is being processed")

	ErrUnauthorized = errors.New("unauthorized")
	ErrInterrupted  = errors.New("submission interrupted")
	ErrInternal     = errors.New("usecase: internal error")
)
