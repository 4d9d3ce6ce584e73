package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/elgarage/backend/app/models"
	"github.com/elgarage/backend/app/repositories"
	"github.com/elgarage/backend/pkg/logger"
)

// History bounds fed to the diagnosis prompt: only the freshest entries
// matter and the prompt must stay small.
const (
	historyNoteLimit = 5
	historyDiagLimit = 3
)

// VehicleService implements garage management and history rendering.
type VehicleService struct {
	vehicles *repositories.VehicleRepository
	history  *repositories.HistoryRepository
}

func NewVehicleService(vehicles *repositories.VehicleRepository, history *repositories.HistoryRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles, history: history}
}

// VehicleInput is the payload accepted by Add.
type VehicleInput struct {
	UserID          uint   `json:"user_id" validate:"required"`
	Marque          string `json:"marque" validate:"required,max=100"`
	Modele          string `json:"modele" validate:"required,max=100"`
	Immatriculation string `json:"immatriculation" validate:"required,max=20"`
	Annee           int    `json:"annee" validate:"required,gte=1900,lte=2100"`
	KmActuel        int    `json:"km_actuel" validate:"gte=0"`
	Nom             string `json:"nom" validate:"nullable,max=100"`
}

// Add registers a new vehicle for a user.
func (s *VehicleService) Add(ctx context.Context, in VehicleInput) (models.Vehicle, error) {
	vehicle := models.Vehicle{
		UserID:          in.UserID,
		Marque:          in.Marque,
		Modele:          in.Modele,
		Immatriculation: in.Immatriculation,
		Annee:           in.Annee,
		KmActuel:        in.KmActuel,
		Nom:             in.Nom,
	}
	if err := s.vehicles.Create(ctx, &vehicle); err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

// List returns all vehicles of a user.
func (s *VehicleService) List(ctx context.Context, userID uint) ([]models.Vehicle, error) {
	return s.vehicles.ListByUser(ctx, userID)
}

// Get returns one vehicle by id.
func (s *VehicleService) Get(ctx context.Context, id uint) (models.Vehicle, error) {
	return s.vehicles.FindByID(ctx, id)
}

// HistoryTranscript renders the recent history of a vehicle as the text
// block fed to the diagnosis prompt. Notes come first, then past
// diagnostics, both newest first. A read fault degrades to a fixed line
// instead of failing the whole diagnosis.
func (s *VehicleService) HistoryTranscript(ctx context.Context, vehicleID uint) string {
	var b strings.Builder
	b.WriteString("--- HISTORIQUE ---\n")

	notes, err := s.history.RecentNotes(ctx, vehicleID, historyNoteLimit)
	if err != nil {
		logger.WithCtx(ctx).Error("history notes read failed", "vehicule_id", vehicleID, "error", err)
		return "Erreur lecture historique."
	}
	for _, n := range notes {
		fmt.Fprintf(&b, "- %s : %s\n", n.Date, n.Notes)
	}

	diags, err := s.history.RecentDiagnostics(ctx, vehicleID, historyDiagLimit)
	if err != nil {
		logger.WithCtx(ctx).Error("history diagnostics read failed", "vehicule_id", vehicleID, "error", err)
		return "Erreur lecture historique."
	}
	for _, d := range diags {
		fmt.Fprintf(&b, "- %s : %s (%s)\n", d.Date, d.CodeDefaut, d.ResumeIA)
	}

	return b.String()
}
