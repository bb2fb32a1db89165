// Package create реализует HTTP-обработчик POST /api/vidrios.
//
// Handler принимает {nombre, grosor, precioM2}, валидирует его и возвращает
// созданную запись каталога со статусом 201.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/glass-quote/internal/http/response"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/models"
)

// MsgCreateFailed — ответ при ошибке сохранения.
const MsgCreateFailed = "No se pudo guardar el tipo de vidrio"

// Handler управляет HTTP-запросами на создание типа стекла.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис каталога
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает создание записи каталога.
type Service interface {
	Create(ctx context.Context, req models.GlassTypeRequest) (*models.GlassType, error)
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
	const op = "handlers.glasstype.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.GlassTypeRequest
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

	g, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create glass type", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(MsgCreateFailed))
		return
	}

	log.Info("glass type created", slog.String("id", g.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, g)
}
