package api

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/ayaskant-12/portfolio-backend/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestGorm opens a throwaway SQLite connection with the full schema, for
// tests that need to manipulate the schema directly.
func newTestGorm(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newTestDatabase opens a throwaway SQLite database with the full schema.
func newTestDatabase(t *testing.T) database.Database {
	t.Helper()
	return database.New(newTestGorm(t))
}

func newTestSessions() *sessionManager {
	return newSessionManager([]byte("test-secret"), false)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
