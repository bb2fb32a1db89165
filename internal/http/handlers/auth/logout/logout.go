// Package logout реализует HTTP-обработчик выхода: cookie сессии сбрасывается.
// Запрос без cookie тоже считается успешным.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/glass-quote/internal/http/middlewarectx"
	"github.com/magabrotheeeer/glass-quote/internal/http/response"
)

// MsgLoggedOut — тело успешного ответа.
const MsgLoggedOut = "Sesión cerrada"

type Handler struct {
	log          *slog.Logger
	secureCookie bool
}

func New(log *slog.Logger, secureCookie bool) *Handler {
	return &Handler{
		log:          log,
		secureCookie: secureCookie,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	middlewarectx.ClearSessionCookie(w, h.secureCookie)
	h.log.Info("logout",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	render.JSON(w, r, response.Message(MsgLoggedOut))
}
