package frontend

import (
	"context"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/glass-quote/internal/apiclient"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
)

const msgCredentialsRequired = "Usuario y contraseña son obligatorios."

// AuthPanel — форма входа.
type AuthPanel struct {
	api    AuthAPI
	events Events
	log    *slog.Logger

	Username string
	Password string
	Loading  bool
	Error    string
}

// NewAuthPanel создаёт форму входа.
func NewAuthPanel(api AuthAPI, events Events, log *slog.Logger) *AuthPanel {
	return &AuthPanel{api: api, events: events, log: log}
}

// SubmitLabel — надпись на кнопке входа.
func (a *AuthPanel) SubmitLabel() string {
	if a.Loading {
		return "Ingresando..."
	}
	return "Ingresar"
}

// Submit отправляет учётные данные. При ошибке показывает сообщение сервера
// и не очищает поля.
func (a *AuthPanel) Submit(ctx context.Context) {
	const op = "frontend.AuthPanel.Submit"
	if a.Loading {
		return
	}
	a.Error = ""
	if strings.TrimSpace(a.Username) == "" || a.Password == "" {
		a.Error = msgCredentialsRequired
		return
	}

	a.Loading = true
	user, err := a.api.Login(ctx, a.Username, a.Password)
	a.Loading = false
	if err != nil {
		a.log.Warn("login failed", slog.String("op", op), sl.Err(err))
		a.Error = apiclient.Message(err)
		return
	}
	a.events.OnLogin(ctx, *user)
}

// Reset очищает форму (после выхода из сессии).
func (a *AuthPanel) Reset() {
	a.Username, a.Password, a.Error = "", "", ""
	a.Loading = false
}
