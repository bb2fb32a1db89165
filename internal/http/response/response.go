// Package response содержит вспомогательные функции для формирования
// JSON-ответов HTTP-обработчиков. Ошибки отдаются в виде {"message": "..."}:
// именно это поле клиент показывает пользователю.
package response

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
)

// Общие тексты ошибок.
const (
	MsgInvalidBody = "Cuerpo de la petición inválido"
	MsgInternal    = "Error interno del servidor"
)

// Response описывает тело ответа с ошибкой.
type Response struct {
	Message string `json:"message"`
}

// Error возвращает Response с переданным сообщением.
func Error(msg string) Response {
	return Response{
		Message: msg,
	}
}

// Message возвращает Response с информационным сообщением для успешных
// операций без данных (удаление, выход).
func Message(msg string) Response {
	return Response{
		Message: msg,
	}
}

// NewValidator возвращает валидатор, который в ошибках называет поля
// так же, как они называются в JSON.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError формирует Response на основе ошибок валидации.
// Каждое нарушение превращается в текст, тексты объединяются через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("el campo %s es obligatorio", err.Field()))
		case "gt":
			errsMsgs = append(errsMsgs, fmt.Sprintf("el campo %s debe ser mayor que %s", err.Field(), err.Param()))
		case "gte":
			errsMsgs = append(errsMsgs, fmt.Sprintf("el campo %s debe ser mayor o igual que %s", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("el campo %s no es válido", err.Field()))
		}
	}
	return Response{
		Message: strings.Join(errsMsgs, ", "),
	}
}
