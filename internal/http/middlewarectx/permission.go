package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/response"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/access"
)

// PermissionMiddleware проверяет уровень доступа из контекста против
// статической матрицы прав для операции op. Отказ — HTTP 403.
// Должен стоять после AuthMiddleware.
func PermissionMiddleware(op access.Operation, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := log.With(
				slog.String("op", "middlewarectx.PermissionMiddleware"),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			permission, ok := r.Context().Value(Permission).(string)
			if !ok || permission == "" {
				log.Error("permission not found in context")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			if !access.Allowed(op, permission) {
				log.Error("operation forbidden",
					slog.String("operation", string(op)),
					slog.String("permission", permission))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
