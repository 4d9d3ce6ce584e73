package ai

import (
	"encoding/json"
	"fmt"
)

// Health verdicts the model may assign. Anything else is normalized to
// HealthGreen so the stored verdict is always one of exactly three values.
const (
	HealthGreen  = "VERT"
	HealthOrange = "ORANGE"
	HealthRed    = "ROUGE"
)

// Defaults applied when the model omits an optional key.
const (
	defaultSummary = "Analyse IA"
	defaultCost    = "N/A"
)

// Report is the parsed diagnosis returned by the model.
//
// Raw keeps the exact bytes the model produced: the API hands the object
// back to the client verbatim, extra keys and all; the typed fields exist
// for persistence and defaulting only.
type Report struct {
	TitreRapport              string      `json:"titre_rapport"`
	ResumeCourt               string      `json:"resume_court"`
	AnalyseTechniqueDetaillee string      `json:"analyse_technique_detaillee"`
	GraviteScore              json.Number `json:"gravite_score"`
	SanteVehicule             string      `json:"sante_vehicule"`
	PlanActionPropose         string      `json:"plan_action_propose"`
	EstimationCoutPiecesMo    string      `json:"estimation_cout_pieces_mo"`

	Raw json.RawMessage `json:"-"`
}

// ParseReport parses the completion text as a JSON report.
func ParseReport(text string) (*Report, error) {
	var r Report
	if err := json.Unmarshal([]byte(text), &r); err != nil {
		return nil, fmt.Errorf("ai: invalid JSON report: %w", err)
	}
	r.Raw = json.RawMessage(text)
	return &r, nil
}

// Health returns the verdict, defaulting to VERT when absent or unknown.
func (r *Report) Health() string {
	switch r.SanteVehicule {
	case HealthGreen, HealthOrange, HealthRed:
		return r.SanteVehicule
	default:
		return HealthGreen
	}
}

// Summary returns the short summary, defaulting to "Analyse IA".
func (r *Report) Summary() string {
	if r.ResumeCourt == "" {
		return defaultSummary
	}
	return r.ResumeCourt
}

// Cost returns the free-form cost estimate, defaulting to "N/A".
func (r *Report) Cost() string {
	if r.EstimationCoutPiecesMo == "" {
		return defaultCost
	}
	return r.EstimationCoutPiecesMo
}
