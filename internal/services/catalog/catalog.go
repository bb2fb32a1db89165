// Package catalog содержит бизнес-логику каталога типов стекла.
// Полный список кэшируется в Redis и сбрасывается при каждом изменении.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/models"
)

// CacheKey — ключ, под которым хранится весь каталог.
const CacheKey = "glass_types:all"

// Repository определяет методы для работы с каталогом в хранилище.
type Repository interface {
	ListGlassTypes(ctx context.Context) ([]models.GlassType, error)
	CreateGlassType(ctx context.Context, req models.GlassTypeRequest) (*models.GlassType, error)
	UpdateGlassType(ctx context.Context, id string, req models.GlassTypeRequest) (*models.GlassType, error)
	RemoveGlassType(ctx context.Context, id string) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// Service реализует операции над каталогом. Ошибки кеша только логируются:
// источником истины остаётся база данных.
type Service struct {
	repo  Repository
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewService создает новый экземпляр Service. cache может быть nil.
func NewService(repo Repository, cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

// List возвращает каталог, отсортированный по названию.
func (s *Service) List(ctx context.Context) ([]models.GlassType, error) {
	const op = "services.catalog.List"

	if s.cache != nil {
		var cached []models.GlassType
		found, err := s.cache.Get(ctx, CacheKey, &cached)
		if err != nil {
			s.log.Warn("failed to read catalog from cache", slog.String("op", op), sl.Err(err))
		}
		if found {
			return cached, nil
		}
	}

	list, err := s.repo.ListGlassTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, CacheKey, list, s.ttl); err != nil {
			s.log.Warn("failed to cache catalog", slog.String("op", op), sl.Err(err))
		}
	}
	return list, nil
}

// Create добавляет тип стекла.
func (s *Service) Create(ctx context.Context, req models.GlassTypeRequest) (*models.GlassType, error) {
	const op = "services.catalog.Create"

	g, err := s.repo.CreateGlassType(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, op)
	return g, nil
}

// Update перезаписывает тип стекла.
func (s *Service) Update(ctx context.Context, id string, req models.GlassTypeRequest) (*models.GlassType, error) {
	const op = "services.catalog.Update"

	g, err := s.repo.UpdateGlassType(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, op)
	return g, nil
}

// Remove удаляет тип стекла.
func (s *Service) Remove(ctx context.Context, id string) error {
	const op = "services.catalog.Remove"

	if err := s.repo.RemoveGlassType(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, op)
	return nil
}

func (s *Service) invalidate(ctx context.Context, op string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, CacheKey); err != nil {
		s.log.Warn("failed to invalidate catalog cache", slog.String("op", op), sl.Err(err))
	}
}
