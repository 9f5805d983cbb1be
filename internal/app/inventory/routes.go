// Package inventory предоставляет сборку и маршруты основного приложения.
package inventory

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/item/create"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/item/health"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/item/list"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/item/read"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/item/remove"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/item/update"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/middlewarectx"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/access"
	authservice "github.com/magabrotheeeer/inventory-keeper/internal/services/auth"
	itemservice "github.com/magabrotheeeer/inventory-keeper/internal/services/item"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService,
	itemService *itemservice.ItemService, apiKey string) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/registration", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			if apiKey != "" {
				r.Use(middlewarectx.APIKeyMiddleware(apiKey, logger))
			}
			r.Use(middlewarectx.AuthMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.With(middlewarectx.PermissionMiddleware(access.OpListItems, logger)).
				Get("/items", list.New(logger, itemService).ServeHTTP)
			r.With(middlewarectx.PermissionMiddleware(access.OpCreateItem, logger)).
				Post("/items", create.New(logger, itemService).ServeHTTP)
			r.With(middlewarectx.PermissionMiddleware(access.OpReadItem, logger)).
				Get("/items/{id}", read.New(logger, itemService).ServeHTTP)
			r.With(middlewarectx.PermissionMiddleware(access.OpUpdateItem, logger)).
				Put("/items/{id}", update.New(logger, itemService).ServeHTTP)
			r.With(middlewarectx.PermissionMiddleware(access.OpRemoveItem, logger)).
				Delete("/items/{id}", remove.New(logger, itemService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
