package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"

	"github.com/taskflowhq/taskflow-api/internal/ciutil"
)

var (
	testDBOnce sync.Once
	testDB     *sql.DB
	testDBErr  error
)

// GetTestDB returns a shared database handle with all migrations applied.
// It skips the calling test when DATABASE_URL is not set, so integration
// tests degrade to no-ops in environments without a database. CI runs fail
// instead, so a misconfigured pipeline cannot silently skip the suite.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		if ciutil.IsCI() {
			t.Fatal("DATABASE_URL must be set when running in CI")
		}
		t.Skip("DATABASE_URL not set, skipping database integration test")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = openAndMigrate(dbURL)
	})
	if testDBErr != nil {
		t.Fatalf("Failed to prepare test database: %v", testDBErr)
	}

	return testDB
}

// openAndMigrate opens a connection pool for dbURL, verifies connectivity
// and applies all pending migrations.
func openAndMigrate(dbURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	goose.SetTableName("schema_migrations")
	if err := goose.Up(db, migrationsDir()); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return db, nil
}

// migrationsDir resolves the migrations directory relative to this source
// file, so tests work regardless of the package they run from.
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "platform", "postgres", "migrations")
}

// WithTx runs fn inside a transaction that is always rolled back, keeping
// the shared database clean between tests.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("Failed to begin test transaction: %v", err)
	}

	defer AssertRollbackNoError(t, tx)

	fn(t, tx)
}

// AssertRollbackNoError rolls back tx and fails the test if the rollback
// itself fails. A transaction that was already committed or rolled back is
// not an error.
func AssertRollbackNoError(t *testing.T, tx *sql.Tx) {
	t.Helper()

	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		t.Errorf("Failed to roll back test transaction: %v", err)
	}
}
