// Package remove реализует HTTP-обработчик DELETE /api/presupuestos/{id}.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/glass-quote/internal/http/response"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/storage"
)

const (
	MsgDeleted      = "Presupuesto eliminado"
	MsgNotFound     = "Presupuesto no encontrado"
	MsgDeleteFailed = "No se pudo eliminar el presupuesto"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Remove(ctx context.Context, id string) error
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.quote.remove"
	id := chi.URLParam(r, "id")
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("id", id),
	)

	err := h.service.Remove(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		log.Info("quote not found")
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(MsgNotFound))
		return
	}
	if err != nil {
		log.Error("failed to delete quote", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(MsgDeleteFailed))
		return
	}

	log.Info("quote deleted")
	render.JSON(w, r, response.Message(MsgDeleted))
}
