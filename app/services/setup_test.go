package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/elgarage/backend/app/models"
	"github.com/elgarage/backend/app/repositories"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// a single pooled connection keeps every query on the same in-memory DB
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.HistoryEntry{},
		&models.Diagnostic{},
		&models.AppSettings{},
	))
	return db
}

func newRepos(db *gorm.DB) (*repositories.UserRepository, *repositories.VehicleRepository, *repositories.HistoryRepository, *repositories.SettingsRepository) {
	return repositories.NewUserRepository(db),
		repositories.NewVehicleRepository(db),
		repositories.NewHistoryRepository(db),
		repositories.NewSettingsRepository(db)
}
