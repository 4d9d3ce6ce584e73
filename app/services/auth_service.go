package services

import (
	"context"

	"github.com/elgarage/backend/app/models"
	"github.com/elgarage/backend/app/repositories"
	"github.com/elgarage/backend/pkg/apperr"
	"github.com/elgarage/backend/pkg/crypt"
)

// AuthService implements account registration and credential checks.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// RegisterInput is the payload accepted by Register.
type RegisterInput struct {
	Nom      string `json:"nom" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Adresse  string `json:"adresse" validate:"nullable"`
}

// Register creates a new account. New accounts always start as regular
// users without AI access, whatever the request claims.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	taken, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, apperr.New(apperr.Validation, "Email déjà utilisé.")
	}

	user := models.User{
		Nom:          in.Nom,
		Email:        in.Email,
		PasswordHash: crypt.Hash(in.Password),
		Adresse:      in.Adresse,
		Role:         models.RoleUser,
		AIAllowed:    false,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login checks the credentials and returns the matching account. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return s.users.FindByCredentials(ctx, email, crypt.Hash(password))
}
