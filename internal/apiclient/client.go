// Package apiclient — HTTP-клиент к API мастерской (/api/auth, /api/vidrios,
// /api/presupuestos). Клиент сам хранит cookie сессии, разбирает ответ по
// Content-Type и превращает любой статус >= 400 в *Error.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
)

// FallbackMessage — текст ошибки, если сервер не прислал поле message.
const FallbackMessage = "Error en la petición"

// Error — неуспешный ответ API. Message можно показывать пользователю.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Message возвращает текст ошибки для пользователя: сообщение сервера
// для *Error и текст самой ошибки для сетевых сбоев.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// Client выполняет запросы к API с cookie текущей сессии.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New создаёт клиент. Cookie хранятся только в памяти процесса.
// timeout == 0 означает отсутствие таймаута.
func New(baseURL string, timeout time.Duration, log *slog.Logger) (*Client, error) {
	const op = "apiclient.New"
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout, Jar: jar},
		log:        log,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/plain")
	return req, nil
}

// Do выполняет запрос. body (если не nil) кодируется в JSON. При успехе
// JSON-ответ декодируется в out; текстовый ответ записывается в out,
// если это *string, и иначе отбрасывается.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	const op = "apiclient.Do"
	log := c.log.With(
		slog.String("op", op),
		slog.String("method", method),
		slog.String("path", path),
	)

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("request failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")
	log.Debug("response received", slog.Int("status", resp.StatusCode), slog.Bool("json", isJSON))

	if resp.StatusCode >= http.StatusBadRequest {
		return &Error{Status: resp.StatusCode, Message: errorMessage(raw, isJSON)}
	}

	if out == nil {
		return nil
	}
	if isJSON {
		if len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s: decode: %w", op, err)
		}
		return nil
	}
	if s, ok := out.(*string); ok {
		*s = string(raw)
	}
	return nil
}

func errorMessage(raw []byte, isJSON bool) string {
	if !isJSON {
		return FallbackMessage
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		return FallbackMessage
	}
	return body.Message
}
