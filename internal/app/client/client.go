// Package client — терминальный интерфейс клиентского приложения.
// Рисует экран, выбранный оболочкой frontend.Shell, и выполняет построчные команды.
package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/glass-quote/internal/export"
	"github.com/magabrotheeeer/glass-quote/internal/frontend"
)

// Terminal — построчный терминальный интерфейс. Реализует frontend.Notifier
// и frontend.Confirmer.
type Terminal struct {
	in    *bufio.Scanner
	out   io.Writer
	log   *slog.Logger
	shell *frontend.Shell
}

// New собирает терминал и оболочку приложения.
func New(api frontend.Gateway, clipboard export.Clipboard, opener export.Opener,
	in io.Reader, out io.Writer, log *slog.Logger) *Terminal {
	t := &Terminal{
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
	t.shell = frontend.NewShell(frontend.Deps{
		API:       api,
		Notifier:  t,
		Confirmer: t,
		Clipboard: clipboard,
		Opener:    opener,
		Log:       log,
	})
	return t
}

// Shell возвращает оболочку приложения.
func (t *Terminal) Shell() *frontend.Shell {
	return t.shell
}

// Notify печатает короткое уведомление.
func (t *Terminal) Notify(msg string) {
	fmt.Fprintf(t.out, "» %s\n", msg)
}

// Confirm спрашивает подтверждение. Конец ввода считается отказом.
func (t *Terminal) Confirm(question string) bool {
	fmt.Fprintf(t.out, "%s (s/n): ", question)
	line, ok := t.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí":
		return true
	default:
		return false
	}
}

// Run проверяет сессию и обрабатывает команды до "salir", конца ввода
// или отмены контекста.
func (t *Terminal) Run(ctx context.Context) error {
	const op = "client.Terminal.Run"
	log := t.log.With(slog.String("op", op))

	t.render()
	t.shell.Start(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		t.render()

		if t.shell.View() == frontend.ViewLogin {
			if !t.login(ctx) {
				log.Debug("input closed on login")
				return nil
			}
			continue
		}

		fmt.Fprint(t.out, "> ")
		line, ok := t.readLine()
		if !ok {
			log.Debug("input closed")
			return nil
		}
		if quit := t.execute(ctx, line); quit {
			log.Debug("quit requested")
			return nil
		}
	}
}

func (t *Terminal) readLine() (string, bool) {
	if !t.in.Scan() {
		return "", false
	}
	return t.in.Text(), true
}

func (t *Terminal) login(ctx context.Context) bool {
	auth := t.shell.Auth
	fmt.Fprint(t.out, "Usuario: ")
	user, ok := t.readLine()
	if !ok {
		return false
	}
	fmt.Fprint(t.out, "Contraseña: ")
	pass, ok := t.readLine()
	if !ok {
		return false
	}
	auth.Username = strings.TrimSpace(user)
	auth.Password = pass
	auth.Submit(ctx)
	return true
}

// execute выполняет одну команду главного экрана. Возвращает true для выхода.
func (t *Terminal) execute(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	cmd = strings.ToLower(cmd)
	arg = strings.TrimSpace(arg)

	calc := t.shell.Calculator
	catalog := t.shell.Catalog
	quotes := t.shell.Quotes

	switch cmd {
	case "":
	case "alto":
		calc.Height = arg
	case "ancho":
		calc.Width = arg
	case "ganancia":
		calc.Markup = arg
	case "nota":
		calc.Note = arg
	case "vidrio":
		if g, ok := pick(t.shell.State().Catalog, arg); ok {
			calc.Select(g.ID)
		} else {
			t.Notify(msgUnknownItem)
		}
	case "guardar":
		calc.Save(ctx)
	case "copiar":
		calc.Copy()
	case "whatsapp":
		calc.WhatsApp()

	case "vidrio-nombre":
		catalog.Name = arg
	case "vidrio-grosor":
		catalog.Thickness = arg
	case "vidrio-precio":
		catalog.Price = arg
	case "vidrio-guardar":
		catalog.Submit(ctx)
	case "vidrio-editar":
		if g, ok := pick(catalog.Items, arg); ok {
			catalog.Edit(g)
			t.shell.Header.Navigate(frontend.SectionCatalog)
		} else {
			t.Notify(msgUnknownItem)
		}
	case "vidrio-cancelar":
		catalog.CancelEdit()
	case "vidrio-borrar":
		if g, ok := pick(catalog.Items, arg); ok {
			catalog.Delete(ctx, g.ID)
		} else {
			t.Notify(msgUnknownItem)
		}
	case "vidrios-recargar":
		catalog.Load(ctx)

	case "presupuesto-copiar", "presupuesto-whatsapp", "presupuesto-borrar":
		q, ok := pick(quotes.Items(), arg)
		if !ok {
			t.Notify(msgUnknownItem)
			break
		}
		switch cmd {
		case "presupuesto-copiar":
			quotes.Copy(q)
		case "presupuesto-whatsapp":
			quotes.WhatsApp(q)
		default:
			quotes.Delete(ctx, q)
		}

	case "menu":
		t.shell.Header.ToggleMenu()
	case "ir":
		if !t.shell.Header.Navigate(section(arg)) {
			t.Notify(msgUnknownSection)
		}
	case "salir-sesion":
		t.shell.Logout(ctx)
	case "salir":
		return true
	case "ayuda":
		fmt.Fprint(t.out, helpText)
	default:
		t.Notify(msgUnknownCommand)
	}
	return false
}

// pick выбирает элемент по номеру строки таблицы (с единицы).
func pick[T any](items []T, arg string) (T, bool) {
	var zero T
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(items) {
		return zero, false
	}
	return items[n-1], true
}

func section(arg string) frontend.Section {
	switch strings.ToLower(arg) {
	case "calculadora":
		return frontend.SectionCalculator
	case "vidrios":
		return frontend.SectionCatalog
	case "presupuestos":
		return frontend.SectionQuotes
	}
	return frontend.Section(arg)
}
