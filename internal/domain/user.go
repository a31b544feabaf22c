package domain

import "time"

// UserRole represents the role of a back-office user
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// User represents a back-office user
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session явный объект сессии вместо глобального хранилища браузера
// Создаётся при входе, удаляется при выходе
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired returns true if the session has expired at the given time
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// CanManageBackOffice returns true if the session user may use admin routes
func (s *Session) CanManageBackOffice() bool {
	return s.Role == RoleAdmin || s.Role == RoleStaff
}
