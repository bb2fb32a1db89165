// Package login реализует HTTP-обработчик входа администратора.
//
// Обработчик декодирует и валидирует учётные данные, делегирует проверку
// сервису аутентификации и при успехе кладёт токен сессии в HttpOnly cookie.
// В теле ответа возвращается {"user": {...}}.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/glass-quote/internal/http/middlewarectx"
	"github.com/magabrotheeeer/glass-quote/internal/http/response"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/models"
	"github.com/magabrotheeeer/glass-quote/internal/services/auth"
)

// MsgInvalidCredentials — ответ на неизвестного пользователя или неверный пароль.
const MsgInvalidCredentials = "Credenciales inválidas"

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log          *slog.Logger        // Логгер для записи операций и ошибок
	service      Service             // Сервис аутентификации
	validate     *validator.Validate // Валидатор для проверки входных данных
	secureCookie bool                // Выставлять ли флаг Secure у cookie
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	TokenTTL() time.Duration
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, secureCookie bool) *Handler {
	return &Handler{
		log:          log,
		service:      service,
		validate:     response.NewValidator(),
		secureCookie: secureCookie,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.MsgInvalidBody))
		return
	}
	log.Debug("request body decoded", slog.String("username", req.Username))

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		log.Info("invalid credentials", slog.String("username", req.Username))
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error(MsgInvalidCredentials))
		return
	}
	if err != nil {
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.MsgInternal))
		return
	}

	middlewarectx.SetSessionCookie(w, token, h.service.TokenTTL(), h.secureCookie)
	log.Info("login success", slog.String("username", user.Username))
	render.JSON(w, r, models.UserEnvelope{User: user})
}
