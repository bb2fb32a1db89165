package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/glass-quote/internal/apiclient"
	"github.com/magabrotheeeer/glass-quote/internal/models"
	"github.com/magabrotheeeer/glass-quote/internal/pricing"
)

// fakeAPI — API в памяти с одним пользователем admin/secret.
type fakeAPI struct {
	loggedIn bool
	glass    []models.GlassType
	quotes   []models.Quote
	seq      int
}

var errUnauthorized = &apiclient.Error{Status: http.StatusUnauthorized, Message: "No autenticado"}

func (f *fakeAPI) nextID() string {
	f.seq++
	return "id-" + strconv.Itoa(f.seq)
}

func (f *fakeAPI) Me(_ context.Context) (*models.User, error) {
	if !f.loggedIn {
		return nil, errUnauthorized
	}
	return &models.User{ID: "u1", Username: "admin"}, nil
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (*models.User, error) {
	if username != "admin" || password != "secret" {
		return nil, &apiclient.Error{Status: http.StatusUnauthorized, Message: "Credenciales inválidas"}
	}
	f.loggedIn = true
	return &models.User{ID: "u1", Username: "admin"}, nil
}

func (f *fakeAPI) Logout(_ context.Context) error {
	f.loggedIn = false
	return nil
}

func (f *fakeAPI) ListGlassTypes(_ context.Context) ([]models.GlassType, error) {
	return append([]models.GlassType(nil), f.glass...), nil
}

func (f *fakeAPI) CreateGlassType(_ context.Context, req models.GlassTypeRequest) (*models.GlassType, error) {
	g := models.GlassType{ID: f.nextID(), Name: req.Name, Thickness: req.Thickness, PriceM2: req.PriceM2}
	f.glass = append(f.glass, g)
	return &g, nil
}

func (f *fakeAPI) UpdateGlassType(_ context.Context, id string, req models.GlassTypeRequest) (*models.GlassType, error) {
	for i := range f.glass {
		if f.glass[i].ID == id {
			f.glass[i] = models.GlassType{ID: id, Name: req.Name, Thickness: req.Thickness, PriceM2: req.PriceM2}
			g := f.glass[i]
			return &g, nil
		}
	}
	return nil, &apiclient.Error{Status: http.StatusNotFound, Message: "Tipo de vidrio no encontrado"}
}

func (f *fakeAPI) DeleteGlassType(_ context.Context, id string) error {
	for i := range f.glass {
		if f.glass[i].ID == id {
			f.glass = append(f.glass[:i], f.glass[i+1:]...)
			return nil
		}
	}
	return &apiclient.Error{Status: http.StatusNotFound, Message: "Tipo de vidrio no encontrado"}
}

func (f *fakeAPI) ListQuotes(_ context.Context) ([]models.Quote, error) {
	return append([]models.Quote(nil), f.quotes...), nil
}

func (f *fakeAPI) CreateQuote(_ context.Context, req models.QuoteRequest) (*models.Quote, error) {
	for _, g := range f.glass {
		if g.ID != req.GlassID {
			continue
		}
		b := pricing.Compute(req.Height, req.Width, g.PriceM2, req.Markup)
		q := models.Quote{
			ID:          f.nextID(),
			CreatedAt:   time.Date(2024, 5, 1, 10, 30, 0, 0, time.Local),
			Glass:       models.GlassSnapshot{ID: g.ID, Name: g.Name, Thickness: g.Thickness, PriceM2: g.PriceM2},
			Height:      req.Height,
			Width:       req.Width,
			Area:        b.Area,
			Markup:      req.Markup,
			CostPrice:   b.CostPrice,
			ClientPrice: b.ClientPrice,
			Note:        req.Note,
		}
		f.quotes = append([]models.Quote{q}, f.quotes...)
		return &q, nil
	}
	return nil, &apiclient.Error{Status: http.StatusBadRequest, Message: "El tipo de vidrio no existe"}
}

func (f *fakeAPI) DeleteQuote(_ context.Context, id string) error {
	for i := range f.quotes {
		if f.quotes[i].ID == id {
			f.quotes = append(f.quotes[:i], f.quotes[i+1:]...)
			return nil
		}
	}
	return &apiclient.Error{Status: http.StatusNotFound, Message: "Presupuesto no encontrado"}
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type fakeOpener struct {
	urls []string
}

func (o *fakeOpener) Open(url string) error {
	o.urls = append(o.urls, url)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func script(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestTerminal_LoginCalculateSaveAndDelete(t *testing.T) {
	api := &fakeAPI{glass: []models.GlassType{{ID: "g1", Name: "Float", Thickness: "4mm", PriceM2: 100}}}
	cb := &fakeClipboard{}
	opener := &fakeOpener{}
	var out bytes.Buffer

	in := script(
		"admin", "wrong",
		"admin", "secret",
		"alto 2",
		"ancho 1,5",
		"guardar",
		"copiar",
		"whatsapp",
		"ir presupuestos",
		"presupuesto-borrar 1", "s",
		"salir",
	)
	term := New(api, cb, opener, in, &out, discardLogger())

	require.NoError(t, term.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Verificando sesión...")
	assert.Contains(t, text, "! Credenciales inválidas")
	assert.Contains(t, text, "== Vidriería Villarroel ==  (admin)")
	assert.Contains(t, text, "* 1. Float (4mm) - $100")
	assert.Contains(t, text, "$390.00")
	assert.Contains(t, text, "» Presupuesto guardado con éxito")
	assert.Contains(t, text, "» Presupuesto copiado al portapapeles")
	assert.Contains(t, text, "01/05/2024 10:30")
	assert.Contains(t, text, "No hay presupuestos guardados.")

	assert.Contains(t, cb.text, "Precio cliente: $390.00")
	require.Len(t, opener.urls, 1)
	assert.True(t, strings.HasPrefix(opener.urls[0], "https://wa.me/?text="))

	assert.Empty(t, api.quotes)
	assert.Empty(t, term.Shell().State().Quotes)
}

func TestTerminal_CatalogCommands(t *testing.T) {
	api := &fakeAPI{loggedIn: true}
	var out bytes.Buffer

	in := script(
		"ir vidrios",
		"vidrio-guardar",
		"vidrio-nombre Laminado",
		"vidrio-grosor 3+3",
		"vidrio-precio 250,5",
		"vidrio-guardar",
		"vidrio-editar 1",
		"vidrio-precio 300",
		"vidrio-guardar",
		"vidrio-borrar 1", "n",
		"vidrio-borrar 7",
		"salir",
	)
	term := New(api, &fakeClipboard{}, &fakeOpener{}, in, &out, discardLogger())

	require.NoError(t, term.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "No hay tipos de vidrio cargados.")
	assert.Contains(t, text, "! El nombre es obligatorio.")
	assert.Contains(t, text, "[Guardar cambios]")
	assert.Contains(t, text, "¿Eliminar este tipo de vidrio? (s/n)")
	assert.Contains(t, text, "» Número de fila inválido.")

	require.Len(t, api.glass, 1)
	assert.Equal(t, "Laminado", api.glass[0].Name)
	assert.Equal(t, "3+3", api.glass[0].Thickness)
	assert.InDelta(t, 300, api.glass[0].PriceM2, 1e-9)

	st := term.Shell().State()
	require.Len(t, st.Catalog, 1)
	assert.Equal(t, api.glass[0].ID, term.Shell().Calculator.GlassID)
}

func TestTerminal_LogoutAndEndOfInput(t *testing.T) {
	api := &fakeAPI{loggedIn: true}
	var out bytes.Buffer

	term := New(api, &fakeClipboard{}, &fakeOpener{}, script("menu", "ayuda", "foo", "salir-sesion"), &out, discardLogger())

	require.NoError(t, term.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Cerrar sesión")
	assert.Contains(t, text, "vidrio-guardar")
	assert.Contains(t, text, "» Comando desconocido.")
	assert.Contains(t, text, "== Iniciar sesión ==")
	assert.False(t, api.loggedIn)
}

func TestTerminal_CanceledContext(t *testing.T) {
	api := &fakeAPI{loggedIn: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	term := New(api, &fakeClipboard{}, &fakeOpener{}, script("salir"), io.Discard, discardLogger())

	err := term.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTerminal_CopyFailureIsReported(t *testing.T) {
	api := &fakeAPI{loggedIn: true, glass: []models.GlassType{{ID: "g1", Name: "Float", PriceM2: 10}}}
	var out bytes.Buffer

	in := script("copiar", "alto 1", "ancho 1", "copiar", "salir")
	cb := &fakeClipboard{err: errors.New("no clipboard")}
	term := New(api, cb, &fakeOpener{}, in, &out, discardLogger())

	require.NoError(t, term.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "» Faltan datos para calcular el presupuesto.")
	assert.Contains(t, text, "» No se pudo copiar el presupuesto")
}
