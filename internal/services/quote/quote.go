// Package quote содержит бизнес-логику сохранённых расчётов (presupuestos).
package quote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/glass-quote/internal/models"
	"github.com/magabrotheeeer/glass-quote/internal/pricing"
	"github.com/magabrotheeeer/glass-quote/internal/storage"
)

// ErrUnknownGlassType — в запросе указан несуществующий тип стекла.
var ErrUnknownGlassType = errors.New("unknown glass type")

// Repository определяет методы для работы с расчётами в хранилище.
type Repository interface {
	ListQuotes(ctx context.Context) ([]models.Quote, error)
	CreateQuote(ctx context.Context, q models.Quote) (*models.Quote, error)
	RemoveQuote(ctx context.Context, id string) error
}

// GlassSource возвращает тип стекла по ID.
type GlassSource interface {
	GetGlassType(ctx context.Context, id string) (*models.GlassType, error)
}

// Service реализует операции над расчётами.
type Service struct {
	repo  Repository
	glass GlassSource
	log   *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, glass GlassSource, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		glass: glass,
		log:   log,
	}
}

// List возвращает все расчёты, новые первыми.
func (s *Service) List(ctx context.Context) ([]models.Quote, error) {
	const op = "services.quote.List"

	list, err := s.repo.ListQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// Create считает площадь и цены по текущей цене типа стекла, сохраняет
// снимок типа стекла вместе с расчётом и возвращает сохранённую запись.
func (s *Service) Create(ctx context.Context, req models.QuoteRequest) (*models.Quote, error) {
	const op = "services.quote.Create"

	glass, err := s.glass.GetGlassType(ctx, req.GlassID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownGlassType)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b := pricing.Compute(req.Height, req.Width, glass.PriceM2, req.Markup)
	q, err := s.repo.CreateQuote(ctx, models.Quote{
		Glass: models.GlassSnapshot{
			ID:        glass.ID,
			Name:      glass.Name,
			Thickness: glass.Thickness,
			PriceM2:   glass.PriceM2,
		},
		Height:      req.Height,
		Width:       req.Width,
		Area:        b.Area,
		Markup:      req.Markup,
		CostPrice:   b.CostPrice,
		ClientPrice: b.ClientPrice,
		Note:        req.Note,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Debug("quote created", slog.String("op", op), slog.String("id", q.ID),
		slog.Float64("client_price", q.ClientPrice))
	return q, nil
}

// Remove удаляет расчёт.
func (s *Service) Remove(ctx context.Context, id string) error {
	const op = "services.quote.Remove"

	if err := s.repo.RemoveQuote(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
