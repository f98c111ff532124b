package database

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/breno-augst/family-relationship-api/config"
)

var testDBSeq atomic.Int64

// NewTestDB returns a migrated, private in-memory sqlite database that is
// closed when the test finishes.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, testDBSeq.Add(1))

	db, err := InitGormDB(Options{
		Driver:   config.DriverSQLite,
		DSN:      dsn,
		LogLevel: "silent",
		Logger:   zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := AutoMigrateModels(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if err := Close(db); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return db
}
