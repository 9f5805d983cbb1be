// Package login реализует HTTP-обработчик аутентификации пользователей.
//
// Учётные данные принимаются в form-encoded виде (поля username и password,
// как в OAuth2 password flow). При успехе возвращается JSON с access-токеном.
// Неизвестный пользователь и неверный пароль дают одинаковый ответ 400,
// чтобы по ответу нельзя было перечислять учётные записи.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/response"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	services "github.com/magabrotheeeer/inventory-keeper/internal/services/auth"
)

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid form data"))
		return
	}

	username := r.PostFormValue("username")
	pass := r.PostFormValue("password")
	if username == "" || pass == "" {
		log.Error("missing credentials in form")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("username and password are required"))
		return
	}

	token, err := h.service.Login(r.Context(), username, pass)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Error("login failed", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid credentials"))
			return
		}
		log.Error("failed to authenticate user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}

	log.Info("login success", slog.String("username", username))
	render.JSON(w, r, map[string]any{
		"access_token": token,
		"token_type":   "bearer",
	})
}
