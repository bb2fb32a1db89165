package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/magabrotheeeer/glass-quote/internal/models"
)

// Me возвращает текущего пользователя по cookie сессии.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var resp models.UserEnvelope
	if err := c.Do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &Error{Status: http.StatusUnauthorized, Message: FallbackMessage}
	}
	return resp.User, nil
}

// Login отправляет учётные данные. Сервер выставляет cookie сессии.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	var resp models.UserEnvelope
	body := models.Credentials{Username: username, Password: password}
	if err := c.Do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &Error{Status: http.StatusBadGateway, Message: FallbackMessage}
	}
	return resp.User, nil
}

// Logout просит сервер закрыть сессию. Ответ игнорируется.
func (c *Client) Logout(ctx context.Context) error {
	return c.Do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// ListGlassTypes возвращает каталог типов стекла.
func (c *Client) ListGlassTypes(ctx context.Context) ([]models.GlassType, error) {
	var list []models.GlassType
	if err := c.Do(ctx, http.MethodGet, "/api/vidrios", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateGlassType создаёт тип стекла.
func (c *Client) CreateGlassType(ctx context.Context, req models.GlassTypeRequest) (*models.GlassType, error) {
	var created models.GlassType
	if err := c.Do(ctx, http.MethodPost, "/api/vidrios", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateGlassType обновляет тип стекла id.
func (c *Client) UpdateGlassType(ctx context.Context, id string, req models.GlassTypeRequest) (*models.GlassType, error) {
	var updated models.GlassType
	if err := c.Do(ctx, http.MethodPut, "/api/vidrios/"+url.PathEscape(id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteGlassType удаляет тип стекла id.
func (c *Client) DeleteGlassType(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/api/vidrios/"+url.PathEscape(id), nil, nil)
}

// ListQuotes возвращает сохранённые расчёты, новые первыми.
func (c *Client) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	var list []models.Quote
	if err := c.Do(ctx, http.MethodGet, "/api/presupuestos", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateQuote сохраняет расчёт. Ответ сервера (с id, датой и вычисленными
// полями) считается источником истины.
func (c *Client) CreateQuote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error) {
	var created models.Quote
	if err := c.Do(ctx, http.MethodPost, "/api/presupuestos", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteQuote удаляет расчёт id.
func (c *Client) DeleteQuote(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/api/presupuestos/"+url.PathEscape(id), nil, nil)
}
