package frontend

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/glass-quote/internal/apiclient"
	"github.com/magabrotheeeer/glass-quote/internal/export"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/models"
	"github.com/magabrotheeeer/glass-quote/internal/pricing"
)

const (
	msgQuotesEmpty  = "No hay presupuestos guardados."
	msgConfirmQuote = "¿Eliminar este presupuesto?"
	quoteDateLayout = "02/01/2006 15:04"
)

// QuoteRow — строка таблицы сохранённых расчётов, уже отформатированная.
type QuoteRow struct {
	ID          string
	Date        string
	Glass       string
	Dimensions  string
	Area        string
	ClientPrice string
	Note        string
}

// QuoteList — таблица сохранённых расчётов. Данные читает у оболочки.
type QuoteList struct {
	api       QuoteAPI
	quotes    func() []models.Quote
	events    Events
	notifier  Notifier
	confirmer Confirmer
	clipboard export.Clipboard
	opener    export.Opener
	log       *slog.Logger
}

// NewQuoteList создаёт список расчётов.
func NewQuoteList(api QuoteAPI, quotes func() []models.Quote, events Events, notifier Notifier,
	confirmer Confirmer, clipboard export.Clipboard, opener export.Opener, log *slog.Logger) *QuoteList {
	return &QuoteList{
		api:       api,
		quotes:    quotes,
		events:    events,
		notifier:  notifier,
		confirmer: confirmer,
		clipboard: clipboard,
		opener:    opener,
		log:       log,
	}
}

// Items возвращает расчёты в порядке отображения.
func (l *QuoteList) Items() []models.Quote {
	return l.quotes()
}

// EmptyMessage — единственная строка таблицы, когда расчётов нет.
func (l *QuoteList) EmptyMessage() string { return msgQuotesEmpty }

// Rows форматирует расчёты для таблицы.
func (l *QuoteList) Rows() []QuoteRow {
	items := l.quotes()
	rows := make([]QuoteRow, 0, len(items))
	for _, q := range items {
		glass := q.Glass.Name
		if q.Glass.Thickness != "" {
			glass += " (" + q.Glass.Thickness + ")"
		}
		rows = append(rows, QuoteRow{
			ID:          q.ID,
			Date:        q.CreatedAt.Local().Format(quoteDateLayout),
			Glass:       glass,
			Dimensions:  pricing.Format2(q.Height) + "m x " + pricing.Format2(q.Width) + "m",
			Area:        pricing.Format2(q.Area),
			ClientPrice: "$" + pricing.Format2(q.ClientPrice),
			Note:        q.Note,
		})
	}
	return rows
}

// Copy копирует расчёт в буфер обмена.
func (l *QuoteList) Copy(q models.Quote) {
	copyText(l.clipboard, l.notifier, l.log, export.ClipboardText(export.FromQuote(q)))
}

// WhatsApp открывает WhatsApp с расчётом, получателя выбирает пользователь.
func (l *QuoteList) WhatsApp(q models.Quote) {
	openLink(l.opener, l.notifier, l.log, export.WhatsAppURL(export.FromQuote(q)))
}

// Delete удаляет расчёт после подтверждения и сообщает оболочке его id.
func (l *QuoteList) Delete(ctx context.Context, q models.Quote) {
	const op = "frontend.QuoteList.Delete"
	if !l.confirmer.Confirm(msgConfirmQuote) {
		return
	}
	if err := l.api.DeleteQuote(ctx, q.ID); err != nil {
		l.log.Error("failed to delete quote", slog.String("op", op), slog.String("id", q.ID), sl.Err(err))
		l.notifier.Notify(apiclient.Message(err))
		return
	}
	l.events.OnDeleteQuote(q.ID)
}
