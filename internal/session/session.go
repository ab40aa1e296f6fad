package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	// ErrSessionExpired возвращается, если срок токена истек
	ErrSessionExpired = errors.New("session expired, run `booker login`")
	// ErrMalformedToken возвращается, если токен не похож на JWT
	ErrMalformedToken = errors.New("malformed token")
)

// Expiry читает claim exp без проверки подписи
// Подпись проверяет сервис расписания, клиенту нужен только срок действия.
// ok=false, если claim отсутствует
func Expiry(token string) (exp time.Time, ok bool, err error) {
	parser := new(jwt.Parser)
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	switch v := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(v), 0), true, nil
	case nil:
		return time.Time{}, false, nil
	default:
		return time.Time{}, false, fmt.Errorf("%w: exp has type %T", ErrMalformedToken, v)
	}
}

// Check возвращает ErrSessionExpired, если токен истек к моменту now
// Токены без exp считаются действующими
func Check(token string, now time.Time) error {
	exp, ok, err := Expiry(token)
	if err != nil {
		return err
	}
	if ok && !now.Before(exp) {
		return fmt.Errorf("%w (at %s)", ErrSessionExpired, exp.Format(time.RFC3339))
	}
	return nil
}
