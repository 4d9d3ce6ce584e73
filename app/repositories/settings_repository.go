package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/elgarage/backend/app/models"
	"github.com/elgarage/backend/pkg/apperr"
)

// settingsRowID is the primary key of the single configuration row.
const settingsRowID = 1

// SettingsRepository reads the single-row application configuration.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the configuration row. A missing row is not an error, the
// caller receives zero-valued settings.
func (r *SettingsRepository) Get(ctx context.Context) (models.AppSettings, error) {
	var settings models.AppSettings
	db, err := session(ctx, r.db)
	if err != nil {
		return settings, err
	}
	err = db.First(&settings, settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AppSettings{ID: settingsRowID}, nil
	}
	if err != nil {
		return settings, apperr.Wrap(apperr.Upstream, "Erreur DB", err)
	}
	return settings, nil
}
