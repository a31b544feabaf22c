package create_session

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/service/sessions/models"
)

type SessionService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
