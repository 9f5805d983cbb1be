// Package read реализует HTTP-обработчик для получения предмета по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику
// и возвращает предмет в JSON-формате. Отсутствующий предмет — HTTP 404.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/response"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
	"github.com/magabrotheeeer/inventory-keeper/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики чтения предмета.
type Service interface {
	Read(ctx context.Context, id int) (*models.Item, error)
}

// Handler обрабатывает запросы на получение предмета по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	item, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			log.Error("item not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("item not found"))
			return
		}
		log.Error("failed to read item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read item"))
		return
	}

	log.Info("success to read item", slog.Int("id", id))
	render.JSON(w, r, item)
}
