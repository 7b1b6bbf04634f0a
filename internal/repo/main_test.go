package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/helpboard/backend/migrations"
	"github.com/helpboard/backend/testutil"
)

// TestMain migrates the test database once for the whole package so the
// Postgres tests never deal with schema state. Without TEST_DATABASE_URL the
// Postgres tests skip themselves and nothing is migrated.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	db, err := testutil.OpenSQLDB(dsn)
	if err != nil {
		log.Fatalf("TestMain: open database: %v", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}
	db.Close()

	os.Exit(m.Run())
}
