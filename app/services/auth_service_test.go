package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elgarage/backend/app/models"
	"github.com/elgarage/backend/pkg/apperr"
	"github.com/elgarage/backend/pkg/crypt"
)

func TestRegisterCreatesRegularUser(t *testing.T) {
	db := newTestDB(t)
	users, _, _, _ := newRepos(db)
	svc := NewAuthService(users)

	user, err := svc.Register(context.Background(), RegisterInput{
		Nom:      "Jean Dupont",
		Email:    "jean@example.com",
		Password: "secret123",
		Adresse:  "12 rue des Lilas",
	})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.AIAllowed)
	assert.Equal(t, crypt.Hash("secret123"), user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users, _, _, _ := newRepos(db)
	svc := NewAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Nom: "Jean", Email: "jean@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Nom: "Autre Jean", Email: "jean@example.com", Password: "autre456"})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Equal(t, "Email déjà utilisé.", apperr.MessageOf(err))

	// the failed attempt must not have inserted a second row
	var count int64
	db.Model(&models.User{}).Where("email = ?", "jean@example.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	users, _, _, _ := newRepos(db)
	svc := NewAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Nom: "Jean", Email: "jean@example.com", Password: "secret123"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, "jean@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "jean@example.com", user.Email)

	_, err = svc.Login(ctx, "jean@example.com", "mauvais")
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
	assert.Equal(t, "Identifiants incorrects.", apperr.MessageOf(err))

	// unknown email yields the same message as a wrong password
	_, err = svc.Login(ctx, "inconnu@example.com", "secret123")
	require.Error(t, err)
	assert.Equal(t, "Identifiants incorrects.", apperr.MessageOf(err))
}
