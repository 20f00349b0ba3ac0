package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/auth"
)

const msgUnauthorized = "требуется авторизация"

type contextKey string

// claimsKey ключ контекста для claims авторизованного мастера
const claimsKey contextKey = "master_claims"

// TokenParser интерфейс проверки JWT-токенов
type TokenParser interface {
	Parse(tokenStr string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет заголовок Authorization: Bearer <token>
// и кладет claims мастера в контекст запроса
func Auth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				logger.Warn("Auth: missing bearer token for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			claims, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Warn("Auth: invalid token for %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext возвращает claims авторизованного мастера
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
