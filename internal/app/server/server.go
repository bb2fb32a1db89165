package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/glass-quote/internal/cache"
	"github.com/magabrotheeeer/glass-quote/internal/config"
	"github.com/magabrotheeeer/glass-quote/internal/http/middlewarectx"
	"github.com/magabrotheeeer/glass-quote/internal/lib/jwt"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/migrations"
	authservice "github.com/magabrotheeeer/glass-quote/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/glass-quote/internal/services/catalog"
	quoteservice "github.com/magabrotheeeer/glass-quote/internal/services/quote"
	"github.com/magabrotheeeer/glass-quote/internal/storage/repository"
)

const shutdownTimeout = 15 * time.Second

// App — справочный API-сервер.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New подключается к PostgreSQL и Redis, накатывает миграции, создаёт
// администратора и собирает маршруты. Redis необязателен: без него каталог
// читается напрямую из базы.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.server.New"

	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("%s: jwt secret key is empty", op)
	}

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = repository.CheckDatabaseReady(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var catalogCache catalogservice.Cache
	var redisCache *cache.Cache
	if cfg.AddressRedis != "" {
		redisCache, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			logger.Warn("redis unavailable, catalog cache disabled", sl.Err(err))
		} else {
			catalogCache = redisCache
		}
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(db, jwtMaker, logger)
	if err = authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, "glass_quote"),
	)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Services{
		Auth:    authService,
		Catalog: catalogservice.NewService(db, catalogCache, cfg.CatalogTTL, logger),
		Quotes:  quoteservice.NewService(db, db, logger),
		DB:      db.DB,
	}, Options{
		SecureCookie: cfg.SecureCookie,
		LoginLimiter: middlewarectx.NewRateLimiter(cfg.LoginRate, cfg.LoginBurst),
		Registry:     registry,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  redisCache,
	}, nil
}

// Run обслуживает HTTP до отмены ctx, затем корректно останавливает сервер.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err = a.server.Shutdown(timeoutCtx)
	}
	a.close()
	return err
}

func (a *App) close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("failed to close redis", sl.Err(err))
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", sl.Err(err))
	}
}
