// Package update реализует HTTP-обработчик PUT /api/vidrios/{id}.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/glass-quote/internal/http/response"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/models"
	"github.com/magabrotheeeer/glass-quote/internal/storage"
)

const (
	// MsgNotFound — тип стекла с таким ID не существует.
	MsgNotFound = "Tipo de vidrio no encontrado"
	// MsgUpdateFailed — ответ при ошибке сохранения.
	MsgUpdateFailed = "No se pudo actualizar el tipo de vidrio"
)

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает изменение записи каталога.
type Service interface {
	Update(ctx context.Context, id string, req models.GlassTypeRequest) (*models.GlassType, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: response.NewValidator(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.glasstype.update"
	id := chi.URLParam(r, "id")
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("id", id),
	)

	var req models.GlassTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.MsgInvalidBody))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	g, err := h.service.Update(r.Context(), id, req)
	if errors.Is(err, storage.ErrNotFound) {
		log.Info("glass type not found")
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(MsgNotFound))
		return
	}
	if err != nil {
		log.Error("failed to update glass type", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(MsgUpdateFailed))
		return
	}

	log.Info("glass type updated")
	render.JSON(w, r, g)
}
