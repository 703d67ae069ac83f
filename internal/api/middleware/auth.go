package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/Fairway-BookingService/internal/api/handlers"
)

// HeaderAdminToken заголовок с токеном администратора
const HeaderAdminToken = "X-Admin-Token"

const (
	msgMissingToken = "отсутствует токен администратора"
	msgInvalidToken = "неверный токен администратора"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает только запросы с верным X-Admin-Token
// Пустой токен в конфигурации закрывает административные маршруты полностью
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	expected := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAdminToken)
			if provided == "" {
				logger.Warn("AdminAuth: %s %s - missing token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if len(expected) == 0 || subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
				logger.Warn("AdminAuth: %s %s - invalid token", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
