package database_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fbrandt/pigeon/internal/database"
	"github.com/fbrandt/pigeon/internal/models"
)

func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A pooled second connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Conversation{}, &models.Message{}))

	return database.NewDatabase(db)
}

func createTestUser(t *testing.T, db *database.Database, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username}
	require.NoError(t, db.SaveUser(user))
	return user
}
