package models

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// LoginRequest запрос на вход в back-office
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse ответ с данными сессии
type SessionResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expiresAt"`
}

// FromDomainSession конвертирует сессию в ответ
func FromDomainSession(s *domain.Session) *SessionResponse {
	return &SessionResponse{
		Token:     s.Token,
		UserID:    s.UserID,
		Email:     s.Email,
		Name:      s.Name,
		Role:      string(s.Role),
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
	}
}
