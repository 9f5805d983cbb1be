// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/inventory-keeper/internal/lib/jwt"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/password"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
	"github.com/magabrotheeeer/inventory-keeper/internal/storage/repository"
)

// ErrInvalidCredentials возвращается и для неизвестного пользователя,
// и для неверного пароля — одинаково, чтобы не раскрывать существование учётной записи.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidPermission возвращается при попытке регистрации
// с уровнем доступа вне закрытого множества.
var ErrInvalidPermission = errors.New("invalid permission")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и разрешение текущего пользователя.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Пустой уровень доступа означает дефолтный read_only.
// Занятый username приходит из хранилища как ErrUserAlreadyExists.
func (s *AuthService) Register(ctx context.Context, username, rawPassword, permission string) (string, error) {
	const op = "services.auth.Register"
	if permission == "" {
		permission = models.PermissionReadOnly
	}
	if !models.ValidPermission(permission) {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidPermission)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		UID:          uuid.New().String(),
		Username:     username,
		PasswordHash: hashed,
		Permission:   permission,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя и выпускает JWT.
// В ErrInvalidCredentials сворачивается только отсутствие пользователя;
// отказ хранилища или отмена контекста проходят наверх как есть.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Login"
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !password.CompareHash(user.PasswordHash, rawPassword) {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	token, err := s.jwtMaker.GenerateToken(user.Username)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ResolveUser проверяет токен и возвращает полную запись пользователя из хранилища.
//
// Невалидный токен — jwt.ErrInvalidToken; валидный токен с субъектом,
// которого больше нет в хранилище (токены не отзываются) — ErrUserNotFound
// из слоя хранилища.
func (s *AuthService) ResolveUser(ctx context.Context, token string) (*models.User, error) {
	const op = "services.auth.ResolveUser"
	subject, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.users.GetUserByUsername(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}
