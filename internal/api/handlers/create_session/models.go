package create_session

import "github.com/m04kA/SMC-TourService/internal/service/sessions/models"

// CreateSessionRequest HTTP request model
type CreateSessionRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSessionRequest) ToServiceRequest() *models.LoginRequest {
	return &models.LoginRequest{Email: r.Email, Password: r.Password}
}
