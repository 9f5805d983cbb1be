// Package middlewarectx содержит HTTP middleware для проверки bearer-токенов,
// прав доступа и служебных ограничений.
//
// AuthMiddleware проверяет JWT из заголовка Authorization, разрешает его
// в полную запись пользователя из хранилища и кладёт в контекст имя
// пользователя и уровень доступа для дальнейших обработчиков.
//
// Невалидный или истёкший токен — HTTP 401; валидный токен, чей субъект
// уже удалён из хранилища, — HTTP 404 (токены не отзываются).
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/response"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/jwt"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
	"github.com/magabrotheeeer/inventory-keeper/internal/storage/repository"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для имени пользователя в контексте
	User Key = "username"
	// Permission — ключ для уровня доступа пользователя в контексте
	Permission Key = "permission"
)

// Resolver описывает интерфейс сервиса для разрешения токена в пользователя.
type Resolver interface {
	ResolveUser(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
func AuthMiddleware(resolver Resolver, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := resolver.ResolveUser(r.Context(), tokenStr)
			if err != nil {
				switch {
				case errors.Is(err, jwt.ErrInvalidToken):
					log.Error("invalid or expired token", sl.Err(err))
					w.WriteHeader(http.StatusUnauthorized)
					render.JSON(w, r, response.Error("invalid or expired token"))
				case errors.Is(err, repository.ErrUserNotFound):
					log.Error("token subject not found", sl.Err(err))
					w.WriteHeader(http.StatusNotFound)
					render.JSON(w, r, response.Error("user not exists"))
				default:
					log.Error("failed to resolve user", sl.Err(err))
					w.WriteHeader(http.StatusInternalServerError)
					render.JSON(w, r, response.Error("internal service error"))
				}
				return
			}

			ctx := context.WithValue(r.Context(), User, user.Username)
			ctx = context.WithValue(ctx, Permission, user.Permission)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
