package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/scheduling"
)

const bearerPrefix = "Bearer "

// Auth требует заголовок Authorization: Bearer <token>
// Токен не проверяется здесь, его проверяет сервис расписания; middleware только
// кладет токен в контекст, откуда клиент расписания пробрасывает его дальше
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			handlers.RespondUnauthorized(w)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			handlers.RespondUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(scheduling.ContextWithToken(r.Context(), token)))
	})
}
