// Package create реализует HTTP-обработчик POST /api/presupuestos.
//
// Клиент присылает только размеры, ID типа стекла, наценку и заметку.
// Площадь и цены считает сервис; в ответе возвращается полная запись.
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

	"github.com/magabrotheeeer/glass-quote/internal/http/response"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/models"
	"github.com/magabrotheeeer/glass-quote/internal/services/quote"
)

const (
	// MsgUnknownGlassType — указанный тип стекла не найден в каталоге.
	MsgUnknownGlassType = "El tipo de vidrio no existe"
	// MsgCreateFailed — ответ при ошибке сохранения.
	MsgCreateFailed = "No se pudo guardar el presupuesto"
)

// Handler управляет HTTP-запросами на создание расчёта.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает создание расчёта.
type Service interface {
	Create(ctx context.Context, req models.QuoteRequest) (*models.Quote, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: response.NewValidator(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.quote.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.MsgInvalidBody))
		return
	}
	log.Debug("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	q, err := h.service.Create(r.Context(), req)
	if errors.Is(err, quote.ErrUnknownGlassType) {
		log.Info("unknown glass type", slog.String("glass_id", req.GlassID))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(MsgUnknownGlassType))
		return
	}
	if err != nil {
		log.Error("failed to create quote", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(MsgCreateFailed))
		return
	}

	log.Info("quote created", slog.String("id", q.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, q)
}
