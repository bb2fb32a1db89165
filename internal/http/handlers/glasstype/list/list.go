// Package list реализует HTTP-обработчик GET /api/vidrios.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/glass-quote/internal/http/response"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/models"
)

// MsgListFailed — ответ при ошибке чтения каталога.
const MsgListFailed = "No se pudieron cargar los tipos de vidrio"

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение каталога.
type Service interface {
	List(ctx context.Context) ([]models.GlassType, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.glasstype.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list glass types", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(MsgListFailed))
		return
	}
	if res == nil {
		res = []models.GlassType{}
	}

	log.Debug("list glass types", slog.Int("count", len(res)))
	render.JSON(w, r, res)
}
