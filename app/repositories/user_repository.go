package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/elgarage/backend/app/models"
	"github.com/elgarage/backend/pkg/apperr"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user record.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	db, err := session(ctx, r.db)
	if err != nil {
		return err
	}
	if err := db.Create(user).Error; err != nil {
		return apperr.Wrap(apperr.Upstream, "Erreur Inscription", err)
	}
	return nil
}

// EmailExists reports whether a user with this email is already registered.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	db, err := session(ctx, r.db)
	if err != nil {
		return false, err
	}
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, apperr.Wrap(apperr.Upstream, "Erreur DB", err)
	}
	return count > 0, nil
}

// FindByCredentials looks up a user by email and password digest. The digest
// comparison happens in the store, matching how the login query filters.
func (r *UserRepository) FindByCredentials(ctx context.Context, email, passwordHash string) (models.User, error) {
	var user models.User
	db, err := session(ctx, r.db)
	if err != nil {
		return user, err
	}
	err = db.Where("email = ? AND password_hash = ?", email, passwordHash).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, apperr.New(apperr.Unauthorized, "Identifiants incorrects.")
	}
	if err != nil {
		return user, apperr.Wrap(apperr.Upstream, "Erreur DB", err)
	}
	return user, nil
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	db, err := session(ctx, r.db)
	if err != nil {
		return user, err
	}
	err = db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, apperr.New(apperr.NotFound, "Utilisateur introuvable.")
	}
	if err != nil {
		return user, apperr.Wrap(apperr.Upstream, "Erreur DB", err)
	}
	return user, nil
}
