package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/magabrotheeeer/glass-quote/internal/frontend"
	"github.com/magabrotheeeer/glass-quote/internal/pricing"
)

const (
	msgChecking       = "Verificando sesión..."
	msgUnknownCommand = "Comando desconocido. Escriba \"ayuda\"."
	msgUnknownItem    = "Número de fila inválido."
	msgUnknownSection = "Sección desconocida."
	msgNoPreview      = "Complete las medidas y elija un tipo de vidrio."
	msgLogout         = "Cerrar sesión"
)

const helpText = `Calculadora:
  alto <m>  ancho <m>  ganancia <%>  nota <texto>  vidrio <n>
  guardar  copiar  whatsapp
Vidrios:
  vidrio-nombre <texto>  vidrio-grosor <texto>  vidrio-precio <$/m²>
  vidrio-guardar  vidrio-editar <n>  vidrio-borrar <n>  vidrio-cancelar  vidrios-recargar
Presupuestos:
  presupuesto-copiar <n>  presupuesto-whatsapp <n>  presupuesto-borrar <n>
General:
  menu  ir <calculadora|vidrios|presupuestos>  salir-sesion  salir  ayuda
`

// render рисует экран, выбранный оболочкой.
func (t *Terminal) render() {
	switch t.shell.View() {
	case frontend.ViewChecking:
		fmt.Fprintln(t.out, msgChecking)
	case frontend.ViewLogin:
		renderLogin(t.out, t.shell.Auth)
	default:
		t.renderMain()
	}
}

func renderLogin(w io.Writer, a *frontend.AuthPanel) {
	fmt.Fprintln(w, "== Iniciar sesión ==")
	if a.Error != "" {
		fmt.Fprintf(w, "! %s\n", a.Error)
	}
	fmt.Fprintf(w, "[%s]\n", a.SubmitLabel())
}

func (t *Terminal) renderMain() {
	st := t.shell.State()
	h := t.shell.Header

	fmt.Fprintf(t.out, "== %s ==", h.Title)
	if st.User != nil {
		fmt.Fprintf(t.out, "  (%s)", st.User.Username)
	}
	fmt.Fprintln(t.out)
	if h.MenuOpen {
		for _, s := range h.Sections {
			mark := " "
			if s == h.Current {
				mark = "*"
			}
			fmt.Fprintf(t.out, " %s %s\n", mark, s)
		}
		fmt.Fprintf(t.out, "   %s\n", msgLogout)
	}

	switch h.Current {
	case frontend.SectionCatalog:
		renderCatalog(t.out, t.shell.Catalog)
	case frontend.SectionQuotes:
		renderQuotes(t.out, t.shell.Quotes)
	default:
		renderCalculator(t.out, t.shell.Calculator, st)
	}
}

func renderCalculator(w io.Writer, c *frontend.Calculator, st frontend.State) {
	fmt.Fprintln(w, "-- Calculadora --")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Alto (m)\t%s\n", c.Height)
	fmt.Fprintf(tw, "Ancho (m)\t%s\n", c.Width)
	fmt.Fprintf(tw, "Ganancia (%%)\t%s\n", c.Markup)
	fmt.Fprintf(tw, "Nota\t%s\n", c.Note)
	tw.Flush()

	fmt.Fprintln(w, "Tipo de vidrio:")
	for i, g := range st.Catalog {
		mark := " "
		if g.ID == c.GlassID {
			mark = "*"
		}
		fmt.Fprintf(w, " %s %d. %s\n", mark, i+1, g.Label())
	}

	if b, ok := c.Preview(); ok {
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Metros cuadrados\t%s\n", pricing.Format2(b.Area))
		fmt.Fprintf(tw, "Precio costo\t$%s\n", pricing.Format2(b.CostPrice))
		fmt.Fprintf(tw, "Precio cliente\t$%s\n", pricing.Format2(b.ClientPrice))
		tw.Flush()
	} else {
		fmt.Fprintln(w, msgNoPreview)
	}
	if c.Error != "" {
		fmt.Fprintf(w, "! %s\n", c.Error)
	}
	fmt.Fprintf(w, "[%s]\n", c.SaveLabel())
}

func renderCatalog(w io.Writer, m *frontend.CatalogManager) {
	fmt.Fprintln(w, "-- Tipos de vidrio --")
	fmt.Fprintf(w, "Nombre: %s | Grosor: %s | Precio m²: %s  [%s]\n",
		m.Name, m.Thickness, m.Price, m.SubmitLabel())
	if m.Error != "" {
		fmt.Fprintf(w, "! %s\n", m.Error)
	}
	if m.Loading {
		fmt.Fprintln(w, m.LoadingMessage())
		return
	}
	if len(m.Items) == 0 {
		fmt.Fprintln(w, m.EmptyMessage())
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNombre\tGrosor\tPrecio m²")
	for i, g := range m.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t$%s\n", i+1, g.Name, g.Thickness, pricing.FormatPlain(g.PriceM2))
	}
	tw.Flush()
}

func renderQuotes(w io.Writer, l *frontend.QuoteList) {
	fmt.Fprintln(w, "-- Presupuestos --")
	rows := l.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(w, l.EmptyMessage())
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tFecha\tVidrio\tMedidas\tm²\tPrecio cliente\tNota")
	for i, r := range rows {
		fmt.Fprintln(tw, strings.Join([]string{
			strconv.Itoa(i + 1), r.Date, r.Glass, r.Dimensions, r.Area, r.ClientPrice, r.Note,
		}, "\t"))
	}
	tw.Flush()
}
