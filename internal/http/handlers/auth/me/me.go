// Package me реализует HTTP-обработчик GET /api/auth/me: возвращает
// пользователя текущей сессии. Работает за middlewarectx.Session.
package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/glass-quote/internal/http/middlewarectx"
	"github.com/magabrotheeeer/glass-quote/internal/http/response"
	"github.com/magabrotheeeer/glass-quote/internal/models"
)

type Handler struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		h.log.Error("user not found in context",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error(middlewarectx.MsgUnauthorized))
		return
	}
	render.JSON(w, r, models.UserEnvelope{User: user})
}
