package seeders

import (
	"errors"

	"gorm.io/gorm"

	"github.com/elgarage/backend/app/models"
	"github.com/elgarage/backend/pkg/crypt"
)

func init() {
	Register("app_settings", SeedAppSettings)
	Register("admin_user", SeedAdminUser)
}

// SeedAppSettings provisions the single configuration row the diagnosis
// flow reads. Idempotent: an existing row is left untouched.
func SeedAppSettings(db *gorm.DB) error {
	var settings models.AppSettings
	err := db.First(&settings, 1).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(&models.AppSettings{ID: 1, MaintenanceMode: false}).Error
}

// SeedAdminUser creates a demo administrator account for local setups.
// Idempotent on the email.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "admin@elgarage.local").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&models.User{
		Nom:          "Admin",
		Email:        "admin@elgarage.local",
		PasswordHash: crypt.Hash("admin123"),
		Role:         models.RoleAdmin,
		AIAllowed:    true,
	}).Error
}
