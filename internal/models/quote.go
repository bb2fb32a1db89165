package models

import "time"

// GlassSnapshot — денормализованная копия типа стекла на момент создания расчёта.
// Если тип стекла позже удалён, расчёт сохраняет название и толщину.
type GlassSnapshot struct {
	ID        string  `json:"_id,omitempty"`
	Name      string  `json:"nombre"`
	Thickness string  `json:"grosor,omitempty"`
	PriceM2   float64 `json:"precioM2"`
}

// Quote — сохранённый расчёт стоимости стекла. Площадь, себестоимость и цена
// для клиента всегда выводятся из размеров, цены за м² и наценки.
type Quote struct {
	ID          string        `json:"_id"`
	CreatedAt   time.Time     `json:"fecha"`
	Glass       GlassSnapshot `json:"tipoVidrio"`
	Height      float64       `json:"alto"`
	Width       float64       `json:"ancho"`
	Area        float64       `json:"m2"`
	Markup      float64       `json:"porcentajeGanancia"`
	CostPrice   float64       `json:"precioCosto"`
	ClientPrice float64       `json:"precioCliente"`
	Note        string        `json:"nota"`
}

// QuoteRequest — тело запроса POST /api/presupuestos.
// Вычисляемые поля сюда не входят: их считает сервер.
type QuoteRequest struct {
	Height  float64 `json:"alto" validate:"gt=0"`
	Width   float64 `json:"ancho" validate:"gt=0"`
	GlassID string  `json:"tipoVidrio" validate:"required"`
	Markup  float64 `json:"porcentajeGanancia" validate:"gte=0"`
	Note    string  `json:"nota"`
}
