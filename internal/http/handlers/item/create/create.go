// Package create реализует HTTP-обработчик для создания новых предметов инвентаря.
//
// Handler принимает JSON-запрос с данными предмета, валидирует их,
// вызывает бизнес-логику создания и возвращает созданную запись
// со статусом 201. Дубликат имени предмета — HTTP 400.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/response"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
	"github.com/magabrotheeeer/inventory-keeper/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики создания предмета.
type Service interface {
	Create(ctx context.Context, req models.DummyItem) (*models.Item, error)
}

// Handler управляет HTTP-запросами на создание предметов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	item, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrItemAlreadyExists) {
			log.Error("item name already taken", slog.String("name", req.Name))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("item already exists"))
			return
		}
		log.Error("failed to create item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create item"))
		return
	}

	log.Info("success to create item", slog.Int("id", item.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, item)
}
