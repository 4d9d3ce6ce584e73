package models

import (
	"fmt"
	"strings"
)

// Vehicle is a car registered by a user. The optional engine fields are
// pointers so an absent value renders as "N/A" in the technical sheet
// instead of a zero.
type Vehicle struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	UserID          uint   `gorm:"column:user_id;not null;index" json:"user_id"`
	Nom             string `gorm:"size:255" json:"nom"`
	Marque          string `gorm:"size:255;not null" json:"marque"`
	Modele          string `gorm:"size:255;not null" json:"modele"`
	Immatriculation string `gorm:"size:50" json:"immatriculation"`
	Annee           int    `json:"annee"`
	KmActuel        int    `gorm:"column:km_actuel" json:"km_actuel"`
	CodeMoteur      string `gorm:"column:code_moteur;size:100" json:"code_moteur,omitempty"`
	Cylindree       *int   `json:"cylindree,omitempty"`
	PuissanceCh     *int   `gorm:"column:puissance_ch" json:"puissance_ch,omitempty"`
	Carburant       string `gorm:"size:50" json:"carburant,omitempty"`
	BoiteVitesse    string `gorm:"column:boite_vitesse;size:50" json:"boite_vitesse,omitempty"`
}

// TableName pins the gorm table name.
func (Vehicle) TableName() string { return "vehicules" }

// TechnicalSheet renders the vehicle as the technical context block fed to
// the diagnosis prompt. Missing values appear as "N/A".
func (v *Vehicle) TechnicalSheet() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[VÉHICULE] %s %s (%s)\n", orNA(v.Marque), orNA(v.Modele), intOrNA(v.Annee, ""))
	fmt.Fprintf(&b, "IMMAT: %s - KM: %s\n", orNA(v.Immatriculation), intOrNA(v.KmActuel, "km"))
	fmt.Fprintf(&b, "MOTEUR: %s - %s - %s\n", orNA(v.CodeMoteur), ptrOrNA(v.Cylindree, "cc"), ptrOrNA(v.PuissanceCh, "ch"))
	fmt.Fprintf(&b, "CARBURANT: %s - BOITE: %s", orNA(v.Carburant), orNA(v.BoiteVitesse))
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func intOrNA(n int, unit string) string {
	if n == 0 {
		return "N/A"
	}
	if unit == "" {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d %s", n, unit)
}

func ptrOrNA(n *int, unit string) string {
	if n == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d %s", *n, unit)
}
