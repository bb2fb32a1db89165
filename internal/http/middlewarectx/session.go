// Package middlewarectx содержит HTTP middleware справочного API:
// проверку cookie сессии, ограничение частоты входа и сбор метрик.
//
// Session читает JWT из HttpOnly cookie, восстанавливает пользователя через
// Authenticator и кладёт его в контекст запроса. Без валидной cookie
// запрос завершается 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/glass-quote/internal/http/response"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для *models.User в контексте
	User Key = "user"
)

// CookieName — имя cookie, в которой хранится токен сессии.
const CookieName = "token"

// MsgUnauthorized — текст ответа на запрос без валидной сессии.
const MsgUnauthorized = "No autenticado"

// Authenticator восстанавливает пользователя по токену сессии.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// Session возвращает middleware, требующий валидную cookie сессии.
func Session(auth Authenticator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Session"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				log.Debug("session cookie missing")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(MsgUnauthorized))
				return
			}

			user, err := auth.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				log.Info("invalid session", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(MsgUnauthorized))
				return
			}

			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext возвращает пользователя, положенного в контекст Session.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(User).(*models.User)
	return user, ok && user != nil
}

// SetSessionCookie записывает токен в HttpOnly cookie со сроком ttl.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie просит браузер удалить cookie сессии.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
