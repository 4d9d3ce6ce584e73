package ai

import (
	"fmt"
	"strings"
)

// PromptData holds the named slots of the diagnosis prompt.
type PromptData struct {
	Date           string // occurrence date reported by the user
	TechnicalSheet string // rendered vehicle block (models.Vehicle.TechnicalSheet)
	History        string // bounded maintenance/diagnosis transcript
	Problem        string // "Codes: …. Symptômes: …."
}

// promptTemplate is the single source of truth for the diagnosis prompt.
// The mobile app's report screens are built around these exact seven keys,
// so any change here must stay in sync with ParseReport and the client.
const promptTemplate = `Rôle : Expert Mécanicien Auto. Date : %s

VÉHICULE :
%s

HISTORIQUE :
%s

PROBLÈME SIGNALÉ :
%s

TACHE :
Analyse ce problème technique.

FORMAT JSON STRICT ATTENDU :
{
    "titre_rapport": "Titre court",
    "resume_court": "Synthèse pour le client (max 20 mots)",
    "analyse_technique_detaillee": "Explication technique détaillée des causes probables.",
    "gravite_score": 1,
    "sante_vehicule": "VERT" ou "ORANGE" ou "ROUGE",
    "plan_action_propose": "Étapes de réparation",
    "estimation_cout_pieces_mo": "Fourchette prix (ex: 150-200€)"
}`

// BuildPrompt renders the diagnosis prompt from its named slots.
func BuildPrompt(d PromptData) string {
	return fmt.Sprintf(promptTemplate,
		d.Date,
		strings.TrimSpace(d.TechnicalSheet),
		strings.TrimSpace(d.History),
		strings.TrimSpace(d.Problem),
	)
}

// BuildProblem renders the problem statement from the caller-supplied fault
// codes and symptom description.
func BuildProblem(faultCodes, symptoms string) string {
	return fmt.Sprintf("Codes: %s. Symptômes: %s", faultCodes, symptoms)
}
