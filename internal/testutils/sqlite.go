package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"maintenance-scheduler-backend/internal/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var sqliteSeq atomic.Int64

// NewSQLiteTestDB opens an in-memory SQLite database with the full schema
// migrated. Each call returns an isolated database, so suites that use it
// do not need truncation between tests. UUID primary keys are assigned by
// the BeforeCreate hook, so the Postgres-only column default is not needed.
func NewSQLiteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database with a shared cache keeps all pooled
	// connections on the same data while isolating it from other tests.
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", sqliteSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}

	if err := db.AutoMigrate(database.AllModels()...); err != nil {
		t.Fatalf("failed to migrate sqlite test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
