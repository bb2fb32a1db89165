package frontend

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/glass-quote/internal/export"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/models"
)

// View — какой экран показывать.
type View int

const (
	// ViewChecking — заглушка "Verificando sesión..." до завершения проверки сессии.
	ViewChecking View = iota
	// ViewLogin — форма входа.
	ViewLogin
	// ViewMain — шапка, калькулятор, каталог и список расчётов.
	ViewMain
)

// Deps — внешние зависимости оболочки.
type Deps struct {
	API       Gateway
	Notifier  Notifier
	Confirmer Confirmer
	Clipboard export.Clipboard
	Opener    export.Opener
	Log       *slog.Logger
}

// Shell — корневой компонент. Единственный владелец общего состояния:
// сессии, списка расчётов и каталога.
type Shell struct {
	store *Store
	api   SessionAPI
	log   *slog.Logger

	Header     *Header
	Auth       *AuthPanel
	Calculator *Calculator
	Catalog    *CatalogManager
	Quotes     *QuoteList
}

// NewShell собирает оболочку и дочерние компоненты.
func NewShell(d Deps) *Shell {
	s := &Shell{
		store: NewStore(),
		api:   d.API,
		log:   d.Log,
	}
	ev := s.Events()
	s.Header = NewHeader()
	s.Auth = NewAuthPanel(d.API, ev, d.Log)
	s.Calculator = NewCalculator(d.API, s.store.Catalog, ev, d.Notifier, d.Clipboard, d.Opener, d.Log)
	s.Catalog = NewCatalogManager(d.API, ev, d.Confirmer, d.Log)
	s.Quotes = NewQuoteList(d.API, s.store.Quotes, ev, d.Notifier, d.Confirmer, d.Clipboard, d.Opener, d.Log)
	return s
}

// Events возвращает обработчики, через которые дочерние компоненты
// просят изменить общее состояние.
func (s *Shell) Events() Events {
	return Events{
		OnLogin:         s.OnLogin,
		OnNewQuote:      s.OnNewQuote,
		OnDeleteQuote:   s.OnDeleteQuote,
		OnCatalogChange: s.OnCatalogChange,
	}
}

// State возвращает снимок общего состояния.
func (s *Shell) State() State {
	return s.store.Snapshot()
}

// View выбирает экран по состоянию.
func (s *Shell) View() View {
	switch s.store.Snapshot().Phase {
	case PhaseResolving:
		return ViewChecking
	case PhaseNone:
		return ViewLogin
	default:
		return ViewMain
	}
}

// Start проверяет сессию ровно одним запросом "кто я". Любая ошибка означает
// "не вошёл" и пользователю не показывается. Если сессия есть, после проверки
// загружаются расчёты и каталог.
func (s *Shell) Start(ctx context.Context) {
	const op = "frontend.Shell.Start"
	log := s.log.With(slog.String("op", op))

	user, err := s.api.Me(ctx)
	if err != nil {
		log.Debug("no active session", sl.Err(err))
		s.store.ClearSession()
		return
	}
	log.Info("session resolved", slog.String("username", user.Username))
	s.enter(ctx, *user)
}

// OnLogin вызывается формой входа после успешного входа.
func (s *Shell) OnLogin(ctx context.Context, u models.User) {
	s.log.Info("logged in", slog.String("op", "frontend.Shell.OnLogin"), slog.String("username", u.Username))
	s.enter(ctx, u)
}

func (s *Shell) enter(ctx context.Context, u models.User) {
	s.store.SetUser(u)
	s.loadQuotes(ctx)
	s.Catalog.Load(ctx)
}

func (s *Shell) loadQuotes(ctx context.Context) {
	const op = "frontend.Shell.loadQuotes"
	list, err := s.api.ListQuotes(ctx)
	if err != nil {
		s.log.Error("failed to load quotes", slog.String("op", op), sl.Err(err))
		return
	}
	s.store.ReplaceQuotes(list)
}

// Logout сообщает серверу о выходе (ошибка игнорируется) и в любом случае
// очищает сессию и список расчётов.
func (s *Shell) Logout(ctx context.Context) {
	const op = "frontend.Shell.Logout"
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn("logout request failed", slog.String("op", op), sl.Err(err))
	}
	s.store.ClearSession()
	s.Header.CloseMenu()
	s.Auth.Reset()
}

// OnNewQuote добавляет сохранённый расчёт в начало списка без перезагрузки.
func (s *Shell) OnNewQuote(q models.Quote) {
	s.store.PrependQuote(q)
}

// OnDeleteQuote убирает расчёт из списка без перезагрузки.
func (s *Shell) OnDeleteQuote(id string) {
	s.store.RemoveQuote(id)
}

// OnCatalogChange заменяет каталог; единственный канал, по которому
// калькулятор узнаёт о типах стекла.
func (s *Shell) OnCatalogChange(list []models.GlassType) {
	s.store.ReplaceCatalog(list)
	s.Calculator.SyncCatalog(list)
}
