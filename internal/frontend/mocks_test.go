package frontend

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/glass-quote/internal/models"
)

// GatewayMock реализует Gateway.
type GatewayMock struct {
	mock.Mock
}

func (m *GatewayMock) Me(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *GatewayMock) Login(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *GatewayMock) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *GatewayMock) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Quote)
	return list, args.Error(1)
}

func (m *GatewayMock) ListGlassTypes(ctx context.Context) ([]models.GlassType, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.GlassType)
	return list, args.Error(1)
}

func (m *GatewayMock) CreateGlassType(ctx context.Context, req models.GlassTypeRequest) (*models.GlassType, error) {
	args := m.Called(ctx, req)
	g, _ := args.Get(0).(*models.GlassType)
	return g, args.Error(1)
}

func (m *GatewayMock) UpdateGlassType(ctx context.Context, id string, req models.GlassTypeRequest) (*models.GlassType, error) {
	args := m.Called(ctx, id, req)
	g, _ := args.Get(0).(*models.GlassType)
	return g, args.Error(1)
}

func (m *GatewayMock) DeleteGlassType(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *GatewayMock) CreateQuote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error) {
	args := m.Called(ctx, req)
	q, _ := args.Get(0).(*models.Quote)
	return q, args.Error(1)
}

func (m *GatewayMock) DeleteQuote(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type notifierStub struct {
	messages []string
}

func (n *notifierStub) Notify(msg string) { n.messages = append(n.messages, msg) }

type confirmerStub struct {
	answer    bool
	questions []string
}

func (c *confirmerStub) Confirm(q string) bool {
	c.questions = append(c.questions, q)
	return c.answer
}

type clipboardStub struct {
	text string
	err  error
}

func (c *clipboardStub) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type openerStub struct {
	url string
	err error
}

func (o *openerStub) Open(url string) error {
	o.url = url
	return o.err
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

type fixture struct {
	api       *GatewayMock
	notifier  *notifierStub
	confirmer *confirmerStub
	clipboard *clipboardStub
	opener    *openerStub
	shell     *Shell
}

func newFixture() *fixture {
	f := &fixture{
		api:       new(GatewayMock),
		notifier:  &notifierStub{},
		confirmer: &confirmerStub{answer: true},
		clipboard: &clipboardStub{},
		opener:    &openerStub{},
	}
	f.shell = NewShell(Deps{
		API:       f.api,
		Notifier:  f.notifier,
		Confirmer: f.confirmer,
		Clipboard: f.clipboard,
		Opener:    f.opener,
		Log:       newNoopLogger(),
	})
	return f
}

var (
	admin   = &models.User{ID: "u1", Username: "admin100"}
	float4  = models.GlassType{ID: "g1", Name: "Float", Thickness: "4mm", PriceM2: 100}
	laminad = models.GlassType{ID: "g2", Name: "Laminado", Thickness: "3+3", PriceM2: 250}
)
