package scheduling

import "context"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics метрики исходящих запросов
type Metrics interface {
	ObserveUpstream(operation, outcome string, seconds float64)
}

type tokenKey struct{}

// ContextWithToken кладет bearer токен пользователя в контекст
// Клиент пробрасывает его в заголовок Authorization как есть
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext достает bearer токен из контекста
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}
