package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/response"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// Service описывает интерфейс бизнес-логики постраничного чтения предметов.
type Service interface {
	List(ctx context.Context, page, size int) (*models.ItemPage, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	// Страницы нумеруются с единицы, дефолтный размер страницы — 10.
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}

	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size <= 0 {
		size = 10
	}

	res, err := h.service.List(r.Context(), page, size)
	if err != nil {
		log.Error("failed to list items", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list items"))
		return
	}

	log.Info("list items", slog.Int("count", len(res.Items)), slog.Int("page", page))
	render.JSON(w, r, res)
}
