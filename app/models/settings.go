package models

// AppSettings is the single-row application configuration table. Row id 1
// holds the fallback AI key and the maintenance switch.
type AppSettings struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	GroqAPIKey      string `gorm:"column:groq_api_key;size:255" json:"-"`
	MaintenanceMode bool   `gorm:"column:maintenance_mode;default:false" json:"maintenance_mode"`
}

// TableName pins the gorm table name.
func (AppSettings) TableName() string { return "app_settings" }
