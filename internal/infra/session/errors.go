package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии нет или истёк TTL
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrStore возвращается при ошибках redis
	ErrStore = errors.New("session.store: redis error")

	// ErrEncode возвращается при ошибках сериализации сессии
	ErrEncode = errors.New("session.store: failed to encode session")
)
