// Package testdb opens throwaway SQLite stores for tests.
package testdb

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/Fco200/UES-Academic-Helper/infrastructure/postgres"
)

// New opens a migrated SQLite store under t.TempDir()
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Driver:   "sqlite",
		Path:     filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "silent",
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
