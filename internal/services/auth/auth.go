// Package auth содержит бизнес-логику входа администратора: проверку пароля,
// выпуск токена сессии и восстановление пользователя по токену.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/glass-quote/internal/lib/jwt"
	"github.com/magabrotheeeer/glass-quote/internal/lib/password"
	"github.com/magabrotheeeer/glass-quote/internal/lib/sl"
	"github.com/magabrotheeeer/glass-quote/internal/models"
	"github.com/magabrotheeeer/glass-quote/internal/storage"
)

var (
	// ErrInvalidCredentials — неизвестный пользователь или неверный пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidSession — токен отсутствует, просрочен или указывает на удалённого пользователя.
	ErrInvalidSession = errors.New("invalid session")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, username, passwordHash string) (string, error)
	// GetUserByUsername возвращает пользователя по имени или storage.ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUser возвращает пользователя по ID или storage.ErrNotFound.
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// AuthService отвечает за вход, проверку сессии и создание администратора.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Login проверяет пароль и выпускает токен сессии.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (*models.User, string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return user, token, nil
}

// Authenticate возвращает пользователя, которому принадлежит токен.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	const op = "services.auth.Authenticate"

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidSession, err)
	}
	user, err := s.users.GetUser(ctx, claims.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSession)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// TokenTTL возвращает время жизни выпускаемых токенов.
func (s *AuthService) TokenTTL() time.Duration {
	return s.jwtMaker.TTL()
}

// EnsureAdmin создает учётную запись администратора, если её ещё нет.
// Пустое имя пользователя означает, что создавать никого не нужно.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, rawPassword string) error {
	const op = "services.auth.EnsureAdmin"
	log := s.log.With(slog.String("op", op), slog.String("username", username))

	if username == "" {
		log.Warn("admin username is empty, skipping")
		return nil
	}

	_, err := s.users.GetUserByUsername(ctx, username)
	if err == nil {
		log.Debug("admin already exists")
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rawPassword == "" {
		return fmt.Errorf("%s: admin password is empty", op)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	id, err := s.users.CreateUser(ctx, username, hashed)
	if errors.Is(err, storage.ErrAlreadyExists) {
		log.Debug("admin created concurrently")
		return nil
	}
	if err != nil {
		log.Error("failed to create admin", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	log.Info("admin created", slog.String("id", id))
	return nil
}
