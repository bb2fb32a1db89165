package frontend

import (
	"context"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/glass-quote/internal/apiclient"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/models"
	"github.com/magabrotheeeer/glass-quote/internal/pricing"
)

const (
	msgNameRequired   = "El nombre es obligatorio."
	msgPriceInvalid   = "El precio por m² debe ser un número mayor o igual a 0."
	msgConfirmGlass   = "¿Eliminar este tipo de vidrio?"
	msgCatalogEmpty   = "No hay tipos de vidrio cargados."
	msgCatalogLoading = "Cargando tipos de vidrio..."
)

// CatalogManager — управление каталогом типов стекла. После каждой загрузки
// сообщает оболочке свежий список; локальных правок без перезагрузки нет.
type CatalogManager struct {
	api       CatalogAPI
	events    Events
	confirmer Confirmer
	log       *slog.Logger

	Items   []models.GlassType
	Loading bool
	Error   string

	Name      string
	Thickness string
	Price     string
	EditID    string
}

// NewCatalogManager создаёт менеджер каталога.
func NewCatalogManager(api CatalogAPI, events Events, confirmer Confirmer, log *slog.Logger) *CatalogManager {
	return &CatalogManager{api: api, events: events, confirmer: confirmer, log: log}
}

// EmptyMessage — строка для пустого каталога.
func (m *CatalogManager) EmptyMessage() string { return msgCatalogEmpty }

// LoadingMessage — текст во время загрузки.
func (m *CatalogManager) LoadingMessage() string { return msgCatalogLoading }

// SubmitLabel — надпись на кнопке формы.
func (m *CatalogManager) SubmitLabel() string {
	if m.EditID != "" {
		return "Guardar cambios"
	}
	return "Agregar"
}

// Load загружает каталог и передаёт его оболочке.
func (m *CatalogManager) Load(ctx context.Context) {
	const op = "frontend.CatalogManager.Load"
	m.Loading = true
	m.Error = ""
	defer func() { m.Loading = false }()

	list, err := m.api.ListGlassTypes(ctx)
	if err != nil {
		m.log.Error("failed to load glass types", slog.String("op", op), sl.Err(err))
		m.Error = apiclient.Message(err)
		return
	}
	m.Items = list
	m.events.OnCatalogChange(list)
}

// Edit заполняет форму данными типа стекла и помечает его как редактируемый.
func (m *CatalogManager) Edit(g models.GlassType) {
	m.EditID = g.ID
	m.Name = g.Name
	m.Thickness = g.Thickness
	m.Price = pricing.FormatPlain(g.PriceM2)
}

// CancelEdit очищает форму и выходит из режима редактирования.
func (m *CatalogManager) CancelEdit() {
	m.Name, m.Thickness, m.Price, m.EditID = "", "", "", ""
}

func (m *CatalogManager) request() (models.GlassTypeRequest, string) {
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return models.GlassTypeRequest{}, msgNameRequired
	}
	price, err := pricing.ParseDecimal(m.Price)
	if err != nil || price < 0 {
		return models.GlassTypeRequest{}, msgPriceInvalid
	}
	return models.GlassTypeRequest{
		Name:      name,
		Thickness: strings.TrimSpace(m.Thickness),
		PriceM2:   price,
	}, ""
}

// Submit создаёт тип стекла или, если задан EditID, обновляет его.
// После успеха форма очищается и каталог перезагружается.
func (m *CatalogManager) Submit(ctx context.Context) {
	const op = "frontend.CatalogManager.Submit"
	m.Error = ""

	req, msg := m.request()
	if msg != "" {
		m.Error = msg
		return
	}

	var err error
	if m.EditID != "" {
		_, err = m.api.UpdateGlassType(ctx, m.EditID, req)
	} else {
		_, err = m.api.CreateGlassType(ctx, req)
	}
	if err != nil {
		m.log.Error("failed to save glass type", slog.String("op", op),
			slog.String("edit_id", m.EditID), sl.Err(err))
		m.Error = apiclient.Message(err)
		return
	}

	m.CancelEdit()
	m.Load(ctx)
}

// Delete удаляет тип стекла после подтверждения и перезагружает каталог.
func (m *CatalogManager) Delete(ctx context.Context, id string) {
	const op = "frontend.CatalogManager.Delete"
	if !m.confirmer.Confirm(msgConfirmGlass) {
		return
	}
	m.Error = ""
	if err := m.api.DeleteGlassType(ctx, id); err != nil {
		m.log.Error("failed to delete glass type", slog.String("op", op), slog.String("id", id), sl.Err(err))
		m.Error = apiclient.Message(err)
		return
	}
	if m.EditID == id {
		m.CancelEdit()
	}
	m.Load(ctx)
}
