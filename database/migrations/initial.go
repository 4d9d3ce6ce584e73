package migrations

import (
	"gorm.io/gorm"

	"github.com/elgarage/backend/app/models"
	"github.com/elgarage/backend/pkg/migration"
)

func init() {
	migration.Register("20260301000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260301000001_create_vehicules_table", &CreateVehiculesTable{})
	migration.Register("20260301000002_create_historique_vehicules_table", &CreateHistoriqueVehiculesTable{})
	migration.Register("20260301000003_create_diagnostics_vehicules_table", &CreateDiagnosticsVehiculesTable{})
	migration.Register("20260301000004_create_app_settings_table", &CreateAppSettingsTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: vehicules --------

type CreateVehiculesTable struct{}

func (m *CreateVehiculesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Vehicle{})
}

func (m *CreateVehiculesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("vehicules")
}

// -------- 0003: historique_vehicules --------

type CreateHistoriqueVehiculesTable struct{}

func (m *CreateHistoriqueVehiculesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.HistoryEntry{})
}

func (m *CreateHistoriqueVehiculesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("historique_vehicules")
}

// -------- 0004: diagnostics_vehicules --------

type CreateDiagnosticsVehiculesTable struct{}

func (m *CreateDiagnosticsVehiculesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Diagnostic{})
}

func (m *CreateDiagnosticsVehiculesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("diagnostics_vehicules")
}

// -------- 0005: app_settings --------

type CreateAppSettingsTable struct{}

func (m *CreateAppSettingsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.AppSettings{})
}

func (m *CreateAppSettingsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("app_settings")
}
