package auth

import (
	"context"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// AuthService интерфейс сервиса аутентификации
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.Session, *domain.User, error)
	Logout(ctx context.Context, sessionID string) error
	Identify(ctx context.Context, sessionID string) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
