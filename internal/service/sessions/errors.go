package sessions

import "errors"

var (
	// ErrInvalidCredentials неверный email или пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserInactive пользователь заблокирован
	ErrUserInactive = errors.New("user is inactive")

	// ErrUnauthorized сессия не найдена или истекла
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
