// Package server собирает справочный API: хранилище, кэш, сервисы и маршруты chi.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/glass-quote/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/glass-quote/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/glass-quote/internal/http/handlers/auth/me"
	glasscreate "github.com/magabrotheeeer/glass-quote/internal/http/handlers/glasstype/create"
	glasslist "github.com/magabrotheeeer/glass-quote/internal/http/handlers/glasstype/list"
	glassremove "github.com/magabrotheeeer/glass-quote/internal/http/handlers/glasstype/remove"
	glassupdate "github.com/magabrotheeeer/glass-quote/internal/http/handlers/glasstype/update"
	"github.com/magabrotheeeer/glass-quote/internal/http/handlers/health"
	quotecreate "github.com/magabrotheeeer/glass-quote/internal/http/handlers/quote/create"
	quotelist "github.com/magabrotheeeer/glass-quote/internal/http/handlers/quote/list"
	quoteremove "github.com/magabrotheeeer/glass-quote/internal/http/handlers/quote/remove"
	"github.com/magabrotheeeer/glass-quote/internal/http/middlewarectx"
)

// AuthService — всё, что маршрутам нужно от сервиса аутентификации.
type AuthService interface {
	login.Service
	middlewarectx.Authenticator
}

// CatalogService — операции каталога типов стекла.
type CatalogService interface {
	glasslist.Service
	glasscreate.Service
	glassupdate.Service
	glassremove.Service
}

// QuoteService — операции над сохранёнными расчётами.
type QuoteService interface {
	quotelist.Service
	quotecreate.Service
	quoteremove.Service
}

// Services группирует зависимости маршрутов.
type Services struct {
	Auth    AuthService
	Catalog CatalogService
	Quotes  QuoteService
	DB      health.Pinger
}

// Options — настройки HTTP-слоя, не относящиеся к бизнес-логике.
type Options struct {
	SecureCookie bool
	LoginLimiter *middlewarectx.RateLimiter
	Registry     *prometheus.Registry
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc Services, opts Options) {
	metrics := middlewarectx.NewMetrics(opts.Registry)

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		metrics.Middleware,
	)

	r.Get("/health", health.New(logger, svc.DB).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))

	session := middlewarectx.Session(svc.Auth, logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middlewarectx.RateLimitMiddleware(opts.LoginLimiter, logger)).
				Post("/login", login.New(logger, svc.Auth, opts.SecureCookie).ServeHTTP)
			r.Post("/logout", logout.New(logger, opts.SecureCookie).ServeHTTP)
			r.With(session).Get("/me", me.New(logger).ServeHTTP)
		})

		// Группа, требующая cookie сессии
		r.Group(func(r chi.Router) {
			r.Use(session)

			r.Get("/vidrios", glasslist.New(logger, svc.Catalog).ServeHTTP)
			r.Post("/vidrios", glasscreate.New(logger, svc.Catalog).ServeHTTP)
			r.Put("/vidrios/{id}", glassupdate.New(logger, svc.Catalog).ServeHTTP)
			r.Delete("/vidrios/{id}", glassremove.New(logger, svc.Catalog).ServeHTTP)

			r.Get("/presupuestos", quotelist.New(logger, svc.Quotes).ServeHTTP)
			r.Post("/presupuestos", quotecreate.New(logger, svc.Quotes).ServeHTTP)
			r.Delete("/presupuestos/{id}", quoteremove.New(logger, svc.Quotes).ServeHTTP)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Ruta no encontrada"}`))
	})
}
