package frontend

// Section — раздел главного экрана.
type Section string

const (
	SectionCalculator Section = "Calculadora"
	SectionCatalog    Section = "Vidrios"
	SectionQuotes     Section = "Presupuestos"
)

// Header — шапка с названием мастерской и навигационным меню.
// Открыто ли меню — локальное состояние шапки.
type Header struct {
	Title    string
	Sections []Section
	MenuOpen bool
	Current  Section
}

// NewHeader создаёт шапку с закрытым меню.
func NewHeader() *Header {
	return &Header{
		Title:    "Vidriería Villarroel",
		Sections: []Section{SectionCalculator, SectionCatalog, SectionQuotes},
		Current:  SectionCalculator,
	}
}

// ToggleMenu открывает или закрывает меню.
func (h *Header) ToggleMenu() {
	h.MenuOpen = !h.MenuOpen
}

// CloseMenu закрывает меню.
func (h *Header) CloseMenu() {
	h.MenuOpen = false
}

// Navigate переходит к разделу и закрывает меню.
// Неизвестный раздел игнорируется, возвращается false.
func (h *Header) Navigate(s Section) bool {
	for _, known := range h.Sections {
		if known == s {
			h.Current = s
			h.MenuOpen = false
			return true
		}
	}
	return false
}
