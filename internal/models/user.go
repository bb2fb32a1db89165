// Package models содержит доменные структуры витрины стекольной мастерской:
// пользователя-администратора, тип стекла и сохранённый расчёт (presupuesto),
// а также DTO для приёма JSON-запросов с тегами валидации.
package models

// User представляет администратора, который входит в приложение.
// Наружу (в ответах /api/auth/*) отдаются только ID и Username.
type User struct {
	ID           string `json:"id"`       // Уникальный идентификатор пользователя
	Username     string `json:"username"` // Имя пользователя (уникальное)
	PasswordHash string `json:"-"`        // Хэш пароля пользователя
}

// Credentials — тело запроса POST /api/auth/login.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserEnvelope — ответ вида { "user": ... } для /api/auth/me и /api/auth/login.
type UserEnvelope struct {
	User *User `json:"user"`
}
