package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/internal/service/sessions"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "сессия недействительна или истекла"
	msgForbidden    = "доступ запрещен"
)

type ctxKey int

const sessionKey ctxKey = iota

// Auth проверяет заголовок Authorization: Bearer <token>
// и кладёт сессию в контекст запроса
func Auth(authn Authenticator, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				log.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			sess, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, sessions.ErrUnauthorized) {
					log.Warn("%s %s - Invalid session", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				log.Error("%s %s - Failed to authenticate: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			if !sess.CanManageBackOffice() {
				log.Warn("%s %s - Role %s is not allowed, user_id=%d", r.Method, r.URL.Path, sess.Role, sess.UserID)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// RequireRole пропускает только сессии с одной из перечисленных ролей
// Должен стоять после Auth
func RequireRole(roles ...domain.UserRole) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := GetSession(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			for _, role := range roles {
				if sess.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			handlers.RespondForbidden(w, msgForbidden)
		})
	}
}

// WithSession возвращает контекст с сессией
func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSession извлекает сессию из контекста
func GetSession(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*domain.Session)
	return sess, ok && sess != nil
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	sess, ok := GetSession(ctx)
	if !ok {
		return 0, false
	}
	return sess.UserID, true
}

// BearerToken извлекает токен из заголовка Authorization
func BearerToken(r *http.Request) (string, bool) {
	return bearerToken(r)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
