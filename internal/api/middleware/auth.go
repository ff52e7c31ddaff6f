package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarWashService/internal/api/handlers"
	"github.com/m04kA/SMC-CarWashService/internal/domain"
	"github.com/m04kA/SMC-CarWashService/internal/service/auth"
)

const msgAuthRequired = "Authentication required"

type contextKey string

const sessionKey contextKey = "session"

// Identifier определяет идентичность по идентификатору сессии
type Identifier interface {
	Identify(ctx context.Context, sessionID string) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет сессионную cookie и кладет идентичность в контекст запроса
// Запросы без валидной сессии отклоняются с кодом 401
type Auth struct {
	identifier Identifier
	cookieName string
	logger     Logger
}

// NewAuth создает middleware аутентификации
func NewAuth(identifier Identifier, cookieName string, logger Logger) *Auth {
	return &Auth{
		identifier: identifier,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Middleware оборачивает обработчик проверкой сессии
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(a.cookieName)
		if err != nil {
			handlers.RespondUnauthorized(w, msgAuthRequired)
			return
		}

		sess, err := a.identifier.Identify(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, auth.ErrSessionNotFound) {
				a.logger.Error("Auth: failed to identify session: %v", err)
			}
			handlers.RespondUnauthorized(w, msgAuthRequired)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSession возвращает сессию из контекста запроса
func GetSession(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*domain.Session)
	return sess, ok
}

// GetUserID возвращает идентификатор пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	sess, ok := GetSession(ctx)
	if !ok {
		return 0, false
	}
	return sess.UserID, true
}
