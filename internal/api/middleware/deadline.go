package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// ExtendDeadlines продлевает таймауты чтения и записи соединения для долгих маршрутов
// Используется для пакетных операций галереи, которые идут дольше WriteTimeout сервера
func ExtendDeadlines(d time.Duration, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			deadline := time.Now().Add(d)
			rc := http.NewResponseController(w)
			if err := rc.SetReadDeadline(deadline); err != nil {
				log.Warn("%s %s - Failed to extend read deadline: %v", r.Method, r.URL.Path, err)
			}
			if err := rc.SetWriteDeadline(deadline); err != nil {
				log.Warn("%s %s - Failed to extend write deadline: %v", r.Method, r.URL.Path, err)
			}
			next.ServeHTTP(w, r)
		})
	}
}
