// Package pricing считает площадь, себестоимость и цену для клиента.
// Одна и та же функция используется клиентом для живого предпросмотра
// и сервером при сохранении расчёта, поэтому значения совпадают.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Breakdown — результат расчёта. Значения хранятся с полной точностью,
// округление до двух знаков только при выводе.
type Breakdown struct {
	Area        float64 // м² = высота × ширина
	CostPrice   float64 // площадь × цена за м²
	ClientPrice float64 // себестоимость × (1 + наценка/100)
}

// Compute выполняет расчёт для уже разобранных чисел.
func Compute(height, width, priceM2, markup float64) Breakdown {
	area := height * width
	cost := area * priceM2
	return Breakdown{
		Area:        area,
		CostPrice:   cost,
		ClientPrice: cost * (1 + markup/100),
	}
}

// Inputs — сырые значения полей калькулятора, как их ввёл пользователь.
type Inputs struct {
	Height string
	Width  string
	Markup string
}

// Parsed разбирает поля как десятичные числа. ok == false, если хотя бы одно
// из них не является числом.
func (in Inputs) Parsed() (height, width, markup float64, ok bool) {
	var err error
	if height, err = ParseDecimal(in.Height); err != nil {
		return 0, 0, 0, false
	}
	if width, err = ParseDecimal(in.Width); err != nil {
		return 0, 0, 0, false
	}
	if markup, err = ParseDecimal(in.Markup); err != nil {
		return 0, 0, 0, false
	}
	return height, width, markup, true
}

// Preview возвращает расчёт для живого предпросмотра. Если поля не разбираются
// или цена за м² неизвестна (не выбран тип стекла), результата нет.
func Preview(in Inputs, priceM2 *float64) (Breakdown, bool) {
	if priceM2 == nil {
		return Breakdown{}, false
	}
	h, w, m, ok := in.Parsed()
	if !ok {
		return Breakdown{}, false
	}
	return Compute(h, w, *priceM2, m), true
}

// ParseDecimal разбирает десятичное число, допуская запятую как разделитель.
// NaN и бесконечности не считаются числами.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

// Format2 форматирует значение с двумя знаками после запятой (как toFixed(2)).
func Format2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatPlain форматирует значение без лишних нулей (как String(n) в JS).
func FormatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
