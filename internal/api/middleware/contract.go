package middleware

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// Authenticator проверяет токен сессии
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
