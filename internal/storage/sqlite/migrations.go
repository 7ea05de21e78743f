package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/mmynk/utilityportal/internal/storage/sqlite/migrations"
)

// runMigrations applies the embedded goose migrations that have not run yet.
func runMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		slog.Debug("Applied migration", "version", r.Source.Version, "duration_ms", r.Duration.Milliseconds())
	}

	return nil
}
