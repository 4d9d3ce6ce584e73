package models

// HistoryEntry is a free-form maintenance note attached to a vehicle.
// Dates are stored as ISO-8601 strings so entries sort lexically.
type HistoryEntry struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	VehiculeID    uint   `gorm:"column:vehicule_id;not null;index" json:"vehicule_id"`
	Date          string `gorm:"size:50;not null" json:"date"`
	TypeEvenement string `gorm:"column:type_evenement;size:100" json:"type_evenement"`
	Notes         string `gorm:"type:text" json:"notes"`
}

// TableName pins the gorm table name.
func (HistoryEntry) TableName() string { return "historique_vehicules" }

// Diagnostic is a persisted AI diagnosis result for a vehicle.
type Diagnostic struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	VehiculeID    uint   `gorm:"column:vehicule_id;not null;index" json:"vehicule_id"`
	Date          string `gorm:"size:50;not null" json:"date"`
	CodeDefaut    string `gorm:"column:code_defaut;size:255" json:"code_defaut"`
	ResumeIA      string `gorm:"column:resume_ia;type:text" json:"resume_ia"`
	AnalyseIA     string `gorm:"column:analyse_ia;type:text" json:"analyse_ia"`
	CoutEstime    string `gorm:"column:cout_estime;size:100" json:"cout_estime"`
	SanteVehicule string `gorm:"column:sante_vehicule;size:20" json:"sante_vehicule"`
}

// TableName pins the gorm table name.
func (Diagnostic) TableName() string { return "diagnostics_vehicules" }
