// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/product-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/product-catalog/internal/lib/password"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage/repository"
)

// DefaultAvatarURL подставляется, если при регистрации аватар не передан.
const DefaultAvatarURL = "https://i.imgur.com/JyGGDXL.png"

// ErrInvalidCredentials возвращается при любом несовпадении email/пароля.
// Сообщение одно для "нет такого пользователя" и "неверный пароль",
// чтобы не раскрывать, какие email зарегистрированы.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию и авторизацию пользователей.
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

// Register создает нового пользователя с хэшированием пароля и дефолтной
// ролью "user", затем выпускает токен с email и ролью. Дубликат email
// отображается в repository.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword, avatarURL string) (string, *models.User, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", nil, err
	}
	if avatarURL == "" {
		avatarURL = DefaultAvatarURL
	}
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Role:         "user", // дефолтная роль при регистрации
		AvatarURL:    avatarURL,
	}

	uid, err := s.users.RegisterUser(ctx, *user)
	if err != nil {
		return "", nil, err
	}
	user.UID = uid

	token, err := s.jwtMaker.GenerateToken(user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login проверяет пароль пользователя и генерирует JWT с email и сохранённой ролью.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
