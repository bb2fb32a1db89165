// Package frontend реализует клиентское приложение без привязки к способу
// отображения: оболочку (Shell), владеющую общим состоянием, и дочерние
// компоненты — форму входа, калькулятор, каталог типов стекла и список
// сохранённых расчётов. Дочерние компоненты не меняют общее состояние
// напрямую: они вызывают обработчики событий оболочки.
package frontend

import (
	"slices"
	"sync"

	"github.com/magabrotheeeer/glass-quote/internal/models"
)

// SessionPhase — состояние сессии.
type SessionPhase int

const (
	// PhaseResolving — сессия ещё проверяется (начальное состояние).
	PhaseResolving SessionPhase = iota
	// PhaseNone — пользователь не вошёл.
	PhaseNone
	// PhaseActive — пользователь вошёл.
	PhaseActive
)

// State — снимок общего состояния приложения.
type State struct {
	Phase   SessionPhase
	User    *models.User
	Quotes  []models.Quote     // новые первыми
	Catalog []models.GlassType // последний успешно загруженный каталог
}

// Store — контейнер общего состояния с единственным писателем (Shell).
// Изменения только через именованные операции, чтение через Snapshot.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore создаёт хранилище в фазе проверки сессии.
func NewStore() *Store {
	return &Store{state: State{Phase: PhaseResolving}}
}

// Snapshot возвращает копию состояния; срезы копируются.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.Quotes = slices.Clone(s.state.Quotes)
	st.Catalog = slices.Clone(s.state.Catalog)
	if s.state.User != nil {
		u := *s.state.User
		st.User = &u
	}
	return st
}

// Catalog возвращает копию текущего каталога.
func (s *Store) Catalog() []models.GlassType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Catalog)
}

// Quotes возвращает копию списка расчётов.
func (s *Store) Quotes() []models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Quotes)
}

// SetUser завершает проверку сессии с известным пользователем.
func (s *Store) SetUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Phase = PhaseActive
	s.state.User = &u
}

// ClearSession завершает сессию и очищает список расчётов.
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Phase = PhaseNone
	s.state.User = nil
	s.state.Quotes = nil
}

// ReplaceQuotes заменяет список расчётов целиком.
func (s *Store) ReplaceQuotes(list []models.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Quotes = slices.Clone(list)
}

// PrependQuote добавляет расчёт в начало списка.
func (s *Store) PrependQuote(q models.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Quotes = append([]models.Quote{q}, s.state.Quotes...)
}

// RemoveQuote убирает из списка все расчёты с данным id.
func (s *Store) RemoveQuote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Quotes = slices.DeleteFunc(s.state.Quotes, func(q models.Quote) bool {
		return q.ID == id
	})
}

// ReplaceCatalog заменяет каталог целиком.
func (s *Store) ReplaceCatalog(list []models.GlassType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Catalog = slices.Clone(list)
}
