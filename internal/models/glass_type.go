package models

import "github.com/magabrotheeeer/glass-quote/internal/pricing"

// GlassType — позиция каталога: название стекла, необязательная толщина
// (свободный текст, например "4mm") и цена за квадратный метр.
type GlassType struct {
	ID        string  `json:"_id"`
	Name      string  `json:"nombre"`
	Thickness string  `json:"grosor,omitempty"`
	PriceM2   float64 `json:"precioM2"`
}

// Label возвращает подпись для выпадающего списка: "Laminado (4mm) - $100".
func (g GlassType) Label() string {
	label := g.Name
	if g.Thickness != "" {
		label += " (" + g.Thickness + ")"
	}
	return label + " - $" + pricing.FormatPlain(g.PriceM2)
}

// GlassTypeRequest — тело запросов POST /api/vidrios и PUT /api/vidrios/:id.
type GlassTypeRequest struct {
	Name      string  `json:"nombre" validate:"required"`
	Thickness string  `json:"grosor"`
	PriceM2   float64 `json:"precioM2" validate:"gte=0"`
}
