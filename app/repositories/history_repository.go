package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/elgarage/backend/app/models"
	"github.com/elgarage/backend/pkg/apperr"
)

// HistoryRepository reads maintenance notes and past diagnostics for a
// vehicle, and persists new diagnostics.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// RecentNotes returns the most recent maintenance notes, newest first.
func (r *HistoryRepository) RecentNotes(ctx context.Context, vehicleID uint, limit int) ([]models.HistoryEntry, error) {
	db, err := session(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var notes []models.HistoryEntry
	err = db.Where("vehicule_id = ?", vehicleID).
		Order("date desc").
		Limit(limit).
		Find(&notes).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Erreur lecture historique.", err)
	}
	return notes, nil
}

// RecentDiagnostics returns the most recent past diagnostics, newest first.
func (r *HistoryRepository) RecentDiagnostics(ctx context.Context, vehicleID uint, limit int) ([]models.Diagnostic, error) {
	db, err := session(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var diags []models.Diagnostic
	err = db.Where("vehicule_id = ?", vehicleID).
		Order("date desc").
		Limit(limit).
		Find(&diags).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Erreur lecture historique.", err)
	}
	return diags, nil
}

// CreateDiagnostic persists a new diagnosis record.
func (r *HistoryRepository) CreateDiagnostic(ctx context.Context, diag *models.Diagnostic) error {
	db, err := session(ctx, r.db)
	if err != nil {
		return err
	}
	if err := db.Create(diag).Error; err != nil {
		return apperr.Wrap(apperr.Upstream, "Erreur DB", err)
	}
	return nil
}
