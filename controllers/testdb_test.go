package controllers

import (
	"testing"

	"go-postgres-optics/config"
	"go-postgres-optics/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB gives each test an isolated in-memory database with the full
// schema migrated. TranslateError makes unique violations classify the same
// way they do with the Postgres driver.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// Every new connection to :memory: is a fresh database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Stock{},
		&models.Customer{},
		&models.EyePrescription{},
		&models.SpectacleNo{},
	))
	return db
}

// useTestDB points the global connection and the catalog at a test database.
func useTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := openTestDB(t)
	prev := config.DB
	config.DB = db
	InitCatalog()
	t.Cleanup(func() {
		config.DB = prev
	})
	return db
}
