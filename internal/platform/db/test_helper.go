package db

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/ferdiebergado/gopherkit/env"
	"github.com/peaceoutommy/DMA-API/internal/config"
)

// Setup connects to the test database and returns a context carrying a
// transaction that is rolled back when the test ends.
// Tests are skipped when DB_HOST is not configured.
func Setup(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()

	const projRoot = "../../"

	if err := env.Load(projRoot + ".env.testing"); err != nil {
		t.Logf("no .env.testing loaded: %v", err)
	}

	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST is not set; skipping integration test")
	}

	cfg, err := config.Load(projRoot + "config.json")
	if err != nil {
		t.Fatalf("failed to load config file: %v", err)
	}

	creds, err := CredentialsFromEnv()
	if err != nil {
		t.Fatal(err)
	}

	if err := Migrate(creds, MigrateUp); err != nil && !errors.Is(err, ErrNoChange) {
		t.Fatalf("failed to migrate database: %v", err)
	}

	conn, err := Connect(t.Context(), cfg.DB, creds)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	tx, err := conn.BeginTx(t.Context(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Logf("failed to rollback transaction: %v", err)
		}
	})

	return conn, NewContextWithTx(context.Background(), tx)
}
