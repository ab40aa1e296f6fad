package scheduling

import "errors"

var (
	// ErrUnauthorized возвращается при 401: токен отсутствует, истек или отозван
	ErrUnauthorized = errors.New("scheduling client: unauthorized")

	// ErrForbidden возвращается при 403
	ErrForbidden = errors.New("scheduling client: forbidden")

	// ErrNotFound возвращается при 404
	ErrNotFound = errors.New("scheduling client: not found")

	// ErrConflict возвращается при 409, например когда слот уже занят
	ErrConflict = errors.New("scheduling client: conflict")

	// ErrBadRequest возвращается при 400 и 422
	ErrBadRequest = errors.New("scheduling client: bad request")

	// ErrUnavailable возвращается при сетевых ошибках, 429 и 5xx
	// Такие ошибки можно повторить
	ErrUnavailable = errors.New("scheduling client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("scheduling client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("scheduling client: invalid response")
)

// IsRetryable возвращает true для ошибок, после которых запрос можно повторить
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
