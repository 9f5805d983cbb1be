package middlewarectx

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/response"
)

// APIKeyMiddleware проверяет статический ключ в заголовке X-API-Key.
// Используется как дополнительный заслон поверх JWT; подключается
// только когда ключ задан в конфигурации.
func APIKeyMiddleware(apiKey string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
				log.Error("invalid api key")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid api key"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
