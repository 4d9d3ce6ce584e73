package services

import (
	"context"
	"time"

	"github.com/elgarage/backend/app/models"
	"github.com/elgarage/backend/app/repositories"
	"github.com/elgarage/backend/config"
	"github.com/elgarage/backend/pkg/ai"
	"github.com/elgarage/backend/pkg/apperr"
	"github.com/elgarage/backend/pkg/logger"
	"github.com/elgarage/backend/pkg/metrics"
)

// DiagnosisService orchestrates an AI diagnosis: access checks, prompt
// assembly, the model call and best-effort persistence of the result.
type DiagnosisService struct {
	users    *repositories.UserRepository
	vehicles *VehicleService
	history  *repositories.HistoryRepository
	settings *repositories.SettingsRepository

	// NewCompleter builds the model client for a resolved API key.
	// Tests swap it for a stub.
	NewCompleter func(apiKey string) ai.Completer
}

func NewDiagnosisService(
	users *repositories.UserRepository,
	vehicles *VehicleService,
	history *repositories.HistoryRepository,
	settings *repositories.SettingsRepository,
) *DiagnosisService {
	return &DiagnosisService{
		users:    users,
		vehicles: vehicles,
		history:  history,
		settings: settings,
		NewCompleter: func(apiKey string) ai.Completer {
			return ai.NewClient(ai.Config{
				APIKey:      apiKey,
				BaseURL:     config.AIBaseURL(),
				Model:       config.AIModel(),
				Temperature: config.AITemperature(),
				Timeout:     config.AITimeout(),
			})
		},
	}
}

// AnalyzeInput is the payload accepted by Analyze.
type AnalyzeInput struct {
	UserID        uint   `json:"user_id" validate:"required"`
	VehiculeID    uint   `json:"vehicule_id" validate:"required"`
	CodesDefaut   string `json:"codes_defaut" validate:"nullable,max=255"`
	Symptomes     string `json:"symptomes" validate:"required"`
	DateOccurence string `json:"date_occurence" validate:"required"`
}

// Analyze runs a full diagnosis. The returned report carries the raw model
// JSON so the handler can pass it through verbatim.
func (s *DiagnosisService) Analyze(ctx context.Context, in AnalyzeInput) (*ai.Report, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings.MaintenanceMode {
		return nil, apperr.New(apperr.Unavailable, "Service IA non disponible.")
	}

	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !user.CanUseAI() {
		return nil, apperr.New(apperr.Forbidden, "Accès IA non autorisé.")
	}

	apiKey := config.GroqAPIKey()
	if apiKey == "" {
		apiKey = settings.GroqAPIKey
	}
	if apiKey == "" {
		return nil, apperr.New(apperr.Unavailable, "Service IA non disponible.")
	}

	vehicle, err := s.vehicles.Get(ctx, in.VehiculeID)
	if err != nil {
		return nil, err
	}

	prompt := ai.BuildPrompt(ai.PromptData{
		Date:           in.DateOccurence,
		TechnicalSheet: vehicle.TechnicalSheet(),
		History:        s.vehicles.HistoryTranscript(ctx, in.VehiculeID),
		Problem:        ai.BuildProblem(in.CodesDefaut, in.Symptomes),
	})

	start := time.Now()
	text, err := s.NewCompleter(apiKey).Complete(ctx, prompt)
	metrics.ObserveAICall(start, err)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Erreur IA : "+err.Error(), err)
	}

	report, err := ai.ParseReport(text)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Erreur IA : réponse illisible", err)
	}

	// The answer is already in hand, a failed save must not void it.
	diag := models.Diagnostic{
		VehiculeID:    in.VehiculeID,
		Date:          in.DateOccurence,
		CodeDefaut:    in.CodesDefaut,
		ResumeIA:      report.Summary(),
		AnalyseIA:     string(report.Raw),
		CoutEstime:    report.Cost(),
		SanteVehicule: report.Health(),
	}
	if err := s.history.CreateDiagnostic(ctx, &diag); err != nil {
		logger.WithCtx(ctx).Error("diagnostic save failed", "vehicule_id", in.VehiculeID, "error", err)
	}

	return report, nil
}
