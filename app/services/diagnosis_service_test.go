package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/elgarage/backend/app/models"
	"github.com/elgarage/backend/pkg/ai"
	"github.com/elgarage/backend/pkg/apperr"
)

// stubCompleter records the prompt and returns a canned completion.
type stubCompleter struct {
	calls  int
	prompt string
	text   string
	err    error
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompt = prompt
	return s.text, s.err
}

func newDiagnosisFixture(t *testing.T, db *gorm.DB, stub *stubCompleter) *DiagnosisService {
	t.Helper()
	users, vehicles, history, settings := newRepos(db)
	svc := NewDiagnosisService(users, NewVehicleService(vehicles, history), history, settings)
	svc.NewCompleter = func(apiKey string) ai.Completer { return stub }
	return svc
}

func seedDiagnosisData(t *testing.T, db *gorm.DB, aiAllowed bool) (models.User, models.Vehicle) {
	t.Helper()
	require.NoError(t, db.Create(&models.AppSettings{ID: 1, GroqAPIKey: "gsk_seed"}).Error)

	user := models.User{Nom: "Jean", Email: "jean@example.com", PasswordHash: "x", Role: models.RoleUser, AIAllowed: aiAllowed}
	require.NoError(t, db.Create(&user).Error)

	vehicle := models.Vehicle{UserID: user.ID, Marque: "Peugeot", Modele: "308", Annee: 2019, KmActuel: 84000}
	require.NoError(t, db.Create(&vehicle).Error)
	return user, vehicle
}

func analyzeInput(user models.User, vehicle models.Vehicle) AnalyzeInput {
	return AnalyzeInput{
		UserID:        user.ID,
		VehiculeID:    vehicle.ID,
		CodesDefaut:   "P0303",
		Symptomes:     "ratés moteur à froid",
		DateOccurence: "2026-03-14",
	}
}

func diagnosticCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Diagnostic{}).Count(&n).Error)
	return n
}

func TestAnalyzeSuccessStoresDiagnostic(t *testing.T) {
	db := newTestDB(t)
	stub := &stubCompleter{text: `{
		"titre_rapport": "Bobine défaillante",
		"resume_court": "Bobine cylindre 3 à remplacer",
		"analyse_technique_detaillee": "Ratés sur le cylindre 3.",
		"gravite_score": 3,
		"sante_vehicule": "ORANGE",
		"plan_action_propose": "Remplacer la bobine",
		"estimation_cout_pieces_mo": "120-180€"
	}`}
	svc := newDiagnosisFixture(t, db, stub)
	user, vehicle := seedDiagnosisData(t, db, true)

	report, err := svc.Analyze(context.Background(), analyzeInput(user, vehicle))
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, stub.text, string(report.Raw))

	// the prompt carries the vehicle sheet and the problem statement
	assert.Contains(t, stub.prompt, "[VÉHICULE] Peugeot 308 (2019)")
	assert.Contains(t, stub.prompt, "Codes: P0303. Symptômes: ratés moteur à froid")
	assert.Contains(t, stub.prompt, "Date : 2026-03-14")

	var diag models.Diagnostic
	require.NoError(t, db.First(&diag).Error)
	assert.Equal(t, vehicle.ID, diag.VehiculeID)
	assert.Equal(t, "2026-03-14", diag.Date)
	assert.Equal(t, "P0303", diag.CodeDefaut)
	assert.Equal(t, "Bobine cylindre 3 à remplacer", diag.ResumeIA)
	assert.Equal(t, "ORANGE", diag.SanteVehicule)
	assert.Equal(t, "120-180€", diag.CoutEstime)
	assert.JSONEq(t, stub.text, diag.AnalyseIA)
}

func TestAnalyzeDefaultsMissingKeys(t *testing.T) {
	db := newTestDB(t)
	stub := &stubCompleter{text: `{"titre_rapport":"Diagnostic","analyse_technique_detaillee":"..."}`}
	svc := newDiagnosisFixture(t, db, stub)
	user, vehicle := seedDiagnosisData(t, db, true)

	_, err := svc.Analyze(context.Background(), analyzeInput(user, vehicle))
	require.NoError(t, err)

	var diag models.Diagnostic
	require.NoError(t, db.First(&diag).Error)
	assert.Equal(t, ai.HealthGreen, diag.SanteVehicule)
	assert.Equal(t, "Analyse IA", diag.ResumeIA)
	assert.Equal(t, "N/A", diag.CoutEstime)
}

func TestAnalyzeForbiddenUser(t *testing.T) {
	db := newTestDB(t)
	stub := &stubCompleter{text: `{}`}
	svc := newDiagnosisFixture(t, db, stub)
	user, vehicle := seedDiagnosisData(t, db, false)

	_, err := svc.Analyze(context.Background(), analyzeInput(user, vehicle))
	require.Error(t, err)
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	// no model call, nothing stored
	assert.Equal(t, 0, stub.calls)
	assert.Equal(t, int64(0), diagnosticCount(t, db))
}

func TestAnalyzeAdminBypassesFlag(t *testing.T) {
	db := newTestDB(t)
	stub := &stubCompleter{text: `{"titre_rapport":"ok"}`}
	svc := newDiagnosisFixture(t, db, stub)
	user, vehicle := seedDiagnosisData(t, db, false)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("role", models.RoleAdmin).Error)
	user.Role = models.RoleAdmin

	_, err := svc.Analyze(context.Background(), analyzeInput(user, vehicle))
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
}

func TestAnalyzeMaintenanceMode(t *testing.T) {
	db := newTestDB(t)
	stub := &stubCompleter{text: `{}`}
	svc := newDiagnosisFixture(t, db, stub)
	user, vehicle := seedDiagnosisData(t, db, true)
	require.NoError(t, db.Model(&models.AppSettings{}).Where("id = ?", 1).Update("maintenance_mode", true).Error)

	_, err := svc.Analyze(context.Background(), analyzeInput(user, vehicle))
	require.Error(t, err)
	assert.Equal(t, apperr.Unavailable, apperr.KindOf(err))
	assert.Equal(t, 0, stub.calls)
}

func TestAnalyzeNoAPIKeyAnywhere(t *testing.T) {
	db := newTestDB(t)
	stub := &stubCompleter{text: `{}`}
	svc := newDiagnosisFixture(t, db, stub)
	user, vehicle := seedDiagnosisData(t, db, true)
	require.NoError(t, db.Model(&models.AppSettings{}).Where("id = ?", 1).Update("groq_api_key", "").Error)

	_, err := svc.Analyze(context.Background(), analyzeInput(user, vehicle))
	require.Error(t, err)
	assert.Equal(t, apperr.Unavailable, apperr.KindOf(err))
	assert.Equal(t, 0, stub.calls)
}

func TestAnalyzeUnknownUser(t *testing.T) {
	db := newTestDB(t)
	stub := &stubCompleter{text: `{}`}
	svc := newDiagnosisFixture(t, db, stub)
	_, vehicle := seedDiagnosisData(t, db, true)

	in := analyzeInput(models.User{ID: 999}, vehicle)
	_, err := svc.Analyze(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestAnalyzeUnknownVehicle(t *testing.T) {
	db := newTestDB(t)
	stub := &stubCompleter{text: `{}`}
	svc := newDiagnosisFixture(t, db, stub)
	user, _ := seedDiagnosisData(t, db, true)

	in := analyzeInput(user, models.Vehicle{ID: 999})
	_, err := svc.Analyze(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Véhicule introuvable.", apperr.MessageOf(err))
	assert.Equal(t, 0, stub.calls)
}

func TestAnalyzeModelFault(t *testing.T) {
	db := newTestDB(t)
	stub := &stubCompleter{err: errors.New("rate limit reached")}
	svc := newDiagnosisFixture(t, db, stub)
	user, vehicle := seedDiagnosisData(t, db, true)

	_, err := svc.Analyze(context.Background(), analyzeInput(user, vehicle))
	require.Error(t, err)
	assert.Equal(t, apperr.Upstream, apperr.KindOf(err))
	assert.Contains(t, apperr.MessageOf(err), "Erreur IA")
	assert.Equal(t, int64(0), diagnosticCount(t, db))
}

func TestAnalyzeNonJSONModelOutput(t *testing.T) {
	db := newTestDB(t)
	stub := &stubCompleter{text: "Je ne peux pas répondre en JSON."}
	svc := newDiagnosisFixture(t, db, stub)
	user, vehicle := seedDiagnosisData(t, db, true)

	_, err := svc.Analyze(context.Background(), analyzeInput(user, vehicle))
	require.Error(t, err)
	assert.Equal(t, apperr.Upstream, apperr.KindOf(err))
	assert.Equal(t, int64(0), diagnosticCount(t, db))
}

func TestAnalyzeHistoryInPrompt(t *testing.T) {
	db := newTestDB(t)
	stub := &stubCompleter{text: `{"titre_rapport":"ok"}`}
	svc := newDiagnosisFixture(t, db, stub)
	user, vehicle := seedDiagnosisData(t, db, true)
	require.NoError(t, db.Create(&models.HistoryEntry{VehiculeID: vehicle.ID, Date: "2026-01-10", Notes: "Vidange"}).Error)

	_, err := svc.Analyze(context.Background(), analyzeInput(user, vehicle))
	require.NoError(t, err)
	assert.Contains(t, stub.prompt, "--- HISTORIQUE ---")
	assert.Contains(t, stub.prompt, "- 2026-01-10 : Vidange")
}
