// Package export формирует текст расчёта для буфера обмена и ссылку WhatsApp.
package export

import (
	"net/url"
	"strings"
	"time"

	"github.com/magabrotheeeer/glass-quote/internal/models"
	"github.com/magabrotheeeer/glass-quote/internal/pricing"
)

const (
	shopTitle  = "Presupuesto Vidriería Villarroel:"
	waGreeting = "Hola! Te paso tu presupuesto:"
	waFarewell = "Cualquier consulta estoy a disposición."
	waBaseURL  = "https://wa.me/?text="
	dateLayout = "02/01/2006 15:04"
)

// Summary — поля, которые попадают в текст расчёта.
// Date нулевая для несохранённого расчёта из калькулятора.
type Summary struct {
	Date        time.Time
	GlassName   string
	Thickness   string
	Height      float64
	Width       float64
	Area        float64
	ClientPrice float64
}

// FromQuote собирает Summary из сохранённого расчёта.
func FromQuote(q models.Quote) Summary {
	return Summary{
		Date:        q.CreatedAt,
		GlassName:   q.Glass.Name,
		Thickness:   q.Glass.Thickness,
		Height:      q.Height,
		Width:       q.Width,
		Area:        q.Area,
		ClientPrice: q.ClientPrice,
	}
}

func (s Summary) glass() string {
	if s.Thickness == "" {
		return s.GlassName
	}
	return s.GlassName + " " + s.Thickness
}

func (s Summary) dimensions() string {
	return pricing.Format2(s.Height) + "m x " + pricing.Format2(s.Width) + "m"
}

// ClipboardText возвращает текст расчёта для копирования.
func ClipboardText(s Summary) string {
	lines := []string{shopTitle}
	if !s.Date.IsZero() {
		lines = append(lines, "Fecha: "+s.Date.Local().Format(dateLayout))
	}
	lines = append(lines,
		"Medidas: "+s.dimensions(),
		"Vidrio: "+s.glass(),
		"Metros cuadrados: "+pricing.Format2(s.Area),
		"Precio cliente: $"+pricing.Format2(s.ClientPrice),
	)
	return strings.Join(lines, "\n")
}

// WhatsAppText возвращает неэкранированный текст сообщения WhatsApp.
func WhatsAppText(s Summary) string {
	lines := []string{waGreeting, ""}
	if !s.Date.IsZero() {
		lines = append(lines, "Fecha: "+s.Date.Local().Format(dateLayout))
	}
	lines = append(lines,
		"Vidrio: "+s.glass(),
		"Medidas: "+s.dimensions(),
		"m2: "+pricing.Format2(s.Area),
		"Precio final: $"+pricing.Format2(s.ClientPrice),
		"",
		waFarewell,
	)
	return strings.Join(lines, "\n")
}

// WhatsAppURL возвращает ссылку wa.me без номера: получателя выбирает пользователь.
func WhatsAppURL(s Summary) string {
	escaped := strings.ReplaceAll(url.QueryEscape(WhatsAppText(s)), "+", "%20")
	return waBaseURL + escaped
}
