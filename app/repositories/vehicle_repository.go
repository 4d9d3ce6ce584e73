package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/elgarage/backend/app/models"
	"github.com/elgarage/backend/pkg/apperr"
)

// VehicleRepository handles database operations for Vehicle.
type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create persists a new vehicle record.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	db, err := session(ctx, r.db)
	if err != nil {
		return err
	}
	if err := db.Create(vehicle).Error; err != nil {
		return apperr.Wrap(apperr.Upstream, "Erreur lors de l'enregistrement DB", err)
	}
	return nil
}

// FindByID looks up a vehicle by primary key. A missing row maps to a
// not-found error, any store fault stays distinct from it.
func (r *VehicleRepository) FindByID(ctx context.Context, id uint) (models.Vehicle, error) {
	var vehicle models.Vehicle
	db, err := session(ctx, r.db)
	if err != nil {
		return vehicle, err
	}
	err = db.First(&vehicle, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return vehicle, apperr.New(apperr.NotFound, "Véhicule introuvable.")
	}
	if err != nil {
		return vehicle, apperr.Wrap(apperr.Upstream, "Erreur DB", err)
	}
	return vehicle, nil
}

// ListByUser returns every vehicle belonging to the user. An empty garage
// yields an empty slice, not nil, so it serialises as [].
func (r *VehicleRepository) ListByUser(ctx context.Context, userID uint) ([]models.Vehicle, error) {
	db, err := session(ctx, r.db)
	if err != nil {
		return nil, err
	}
	vehicles := make([]models.Vehicle, 0)
	if err := db.Where("user_id = ?", userID).Find(&vehicles).Error; err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Erreur DB", err)
	}
	return vehicles, nil
}
