package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/product-catalog/internal/models"
)

func TestStorage_RegisterUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	user := models.User{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		Role:         "user",
		AvatarURL:    "https://example.com/avatar.png",
	}

	uid, err := storage.RegisterUser(ctx, user)
	require.NoError(t, err)

	// UID назначает база
	_, err = uuid.Parse(uid)
	assert.NoError(t, err)

	got, err := storage.GetUserByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, uid, got.UID)
	assert.Equal(t, "testuser", got.Username)
	assert.Equal(t, "hashedpassword", got.PasswordHash)
	assert.Equal(t, "user", got.Role)
	assert.Equal(t, "https://example.com/avatar.png", got.AvatarURL)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestStorage_RegisterUser_DuplicateEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	user := models.User{
		Username:     "testuser",
		Email:        "taken@example.com",
		PasswordHash: "hashedpassword",
		Role:         "user",
	}

	_, err := storage.RegisterUser(ctx, user)
	require.NoError(t, err)

	// Повторная регистрация того же email упирается в UNIQUE
	user.Username = "otheruser"
	_, err = storage.RegisterUser(ctx, user)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestStorage_GetUserByEmail_NotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	_, err := storage.GetUserByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
