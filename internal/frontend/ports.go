package frontend

import (
	"context"

	"github.com/magabrotheeeer/glass-quote/internal/models"
)

// SessionAPI — вызовы API, которые делает оболочка.
type SessionAPI interface {
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	ListQuotes(ctx context.Context) ([]models.Quote, error)
}

// AuthAPI — вход пользователя.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// CatalogAPI — CRUD каталога типов стекла.
type CatalogAPI interface {
	ListGlassTypes(ctx context.Context) ([]models.GlassType, error)
	CreateGlassType(ctx context.Context, req models.GlassTypeRequest) (*models.GlassType, error)
	UpdateGlassType(ctx context.Context, id string, req models.GlassTypeRequest) (*models.GlassType, error)
	DeleteGlassType(ctx context.Context, id string) error
}

// QuoteAPI — сохранение и удаление расчётов.
type QuoteAPI interface {
	CreateQuote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
}

// Gateway — полный набор вызовов API (реализуется apiclient.Client).
type Gateway interface {
	SessionAPI
	AuthAPI
	CatalogAPI
	QuoteAPI
}

// Notifier показывает пользователю короткое уведомление.
type Notifier interface {
	Notify(msg string)
}

// Confirmer запрашивает у пользователя подтверждение действия.
type Confirmer interface {
	Confirm(question string) bool
}

// Events — обработчики событий оболочки, которые получают дочерние компоненты.
type Events struct {
	OnLogin         func(ctx context.Context, u models.User)
	OnNewQuote      func(q models.Quote)
	OnDeleteQuote   func(id string)
	OnCatalogChange func(list []models.GlassType)
}
