package frontend

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/glass-quote/internal/apiclient"
	"github.com/magabrotheeeer/glass-quote/internal/export"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/models"
	"github.com/magabrotheeeer/glass-quote/internal/pricing"
)

// DefaultMarkup — наценка по умолчанию, %.
const DefaultMarkup = "30"

const (
	msgMissingData    = "Faltan datos para calcular el presupuesto."
	msgSaved          = "Presupuesto guardado con éxito"
	msgCopied         = "Presupuesto copiado al portapapeles"
	msgCopyFailed     = "No se pudo copiar el presupuesto"
	msgWhatsAppFailed = "No se pudo abrir WhatsApp: "
)

// ErrNoPreview — расчёт невозможен: поля не разобраны или не выбран тип стекла.
var ErrNoPreview = errors.New(msgMissingData)

// Calculator — калькулятор стоимости. Поля ввода хранятся текстом,
// как их ввёл пользователь.
type Calculator struct {
	api       QuoteAPI
	catalog   func() []models.GlassType
	events    Events
	notifier  Notifier
	clipboard export.Clipboard
	opener    export.Opener
	log       *slog.Logger

	Height  string
	Width   string
	GlassID string
	Markup  string
	Note    string

	Saving bool
	Error  string

	seenCatalog bool
}

// NewCalculator создаёт калькулятор. catalog — доступ только на чтение
// к каталогу, которым владеет оболочка.
func NewCalculator(api QuoteAPI, catalog func() []models.GlassType, events Events,
	notifier Notifier, clipboard export.Clipboard, opener export.Opener, log *slog.Logger) *Calculator {
	return &Calculator{
		api:       api,
		catalog:   catalog,
		events:    events,
		notifier:  notifier,
		clipboard: clipboard,
		opener:    opener,
		log:       log,
		Markup:    DefaultMarkup,
	}
}

// SyncCatalog применяет новый каталог: выбор удалённого типа стекла
// сбрасывается, а при первом появлении непустого каталога без выбора
// выбирается первая позиция.
func (c *Calculator) SyncCatalog(list []models.GlassType) {
	if c.GlassID != "" && findGlass(list, c.GlassID) == nil {
		c.GlassID = ""
	}
	if len(list) > 0 && c.GlassID == "" && !c.seenCatalog {
		c.GlassID = list[0].ID
	}
	c.seenCatalog = len(list) > 0
}

// Select выбирает тип стекла по id.
func (c *Calculator) Select(id string) {
	c.GlassID = id
}

// Selected возвращает выбранный тип стекла или nil.
func (c *Calculator) Selected() *models.GlassType {
	if c.GlassID == "" {
		return nil
	}
	return findGlass(c.catalog(), c.GlassID)
}

// Preview — живой расчёт по текущему вводу. Без побочных эффектов.
func (c *Calculator) Preview() (pricing.Breakdown, bool) {
	g := c.Selected()
	if g == nil {
		return pricing.Breakdown{}, false
	}
	return pricing.Preview(c.inputs(), &g.PriceM2)
}

func (c *Calculator) inputs() pricing.Inputs {
	return pricing.Inputs{Height: c.Height, Width: c.Width, Markup: c.Markup}
}

// SaveLabel — надпись на кнопке сохранения.
func (c *Calculator) SaveLabel() string {
	if c.Saving {
		return "Guardando..."
	}
	return "Guardar presupuesto"
}

// Save сохраняет расчёт на сервере. Если расчёта нет, показывает ошибку
// и не обращается к серверу.
func (c *Calculator) Save(ctx context.Context) {
	const op = "frontend.Calculator.Save"
	if c.Saving {
		return
	}
	c.Error = ""

	g := c.Selected()
	h, w, m, ok := c.inputs().Parsed()
	if g == nil || !ok {
		c.Error = msgMissingData
		return
	}

	c.Saving = true
	created, err := c.api.CreateQuote(ctx, models.QuoteRequest{
		Height:  h,
		Width:   w,
		GlassID: g.ID,
		Markup:  m,
		Note:    c.Note,
	})
	c.Saving = false
	if err != nil {
		c.log.Error("failed to save quote", slog.String("op", op), sl.Err(err))
		c.Error = apiclient.Message(err)
		return
	}

	c.log.Info("quote saved", slog.String("op", op), slog.String("id", created.ID))
	c.events.OnNewQuote(*created)
	c.notifier.Notify(msgSaved)
}

func (c *Calculator) summary() (export.Summary, error) {
	g := c.Selected()
	b, ok := c.Preview()
	if !ok {
		return export.Summary{}, ErrNoPreview
	}
	h, w, _, _ := c.inputs().Parsed()
	return export.Summary{
		GlassName:   g.Name,
		Thickness:   g.Thickness,
		Height:      h,
		Width:       w,
		Area:        b.Area,
		ClientPrice: b.ClientPrice,
	}, nil
}

// Copy копирует текущий (несохранённый) расчёт в буфер обмена.
func (c *Calculator) Copy() {
	s, err := c.summary()
	if err != nil {
		c.notifier.Notify(msgMissingData)
		return
	}
	copyText(c.clipboard, c.notifier, c.log, export.ClipboardText(s))
}

// WhatsApp открывает WhatsApp с текущим расчётом.
func (c *Calculator) WhatsApp() {
	s, err := c.summary()
	if err != nil {
		c.notifier.Notify(msgMissingData)
		return
	}
	openLink(c.opener, c.notifier, c.log, export.WhatsAppURL(s))
}

func findGlass(list []models.GlassType, id string) *models.GlassType {
	for i := range list {
		if list[i].ID == id {
			g := list[i]
			return &g
		}
	}
	return nil
}

func copyText(cb export.Clipboard, n Notifier, log *slog.Logger, text string) {
	if err := cb.WriteAll(text); err != nil {
		log.Error("failed to copy quote", slog.String("op", "frontend.copyText"), sl.Err(err))
		n.Notify(msgCopyFailed)
		return
	}
	n.Notify(msgCopied)
}

func openLink(o export.Opener, n Notifier, log *slog.Logger, link string) {
	if err := o.Open(link); err != nil {
		log.Error("failed to open link", slog.String("op", "frontend.openLink"), sl.Err(err))
		n.Notify(msgWhatsAppFailed + link)
	}
}
