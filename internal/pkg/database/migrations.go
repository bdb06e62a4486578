package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/lock"
)

const migrationsDriver = "pgx"

// MigrateDatabase applies the pending goose migrations found at the root of fsys and returns the
// versions applied by this call, oldest first. A postgres advisory lock keeps concurrently
// starting instances from migrating twice.
func MigrateDatabase(ctx context.Context, databaseUrl string, fsys fs.FS) ([]int64, error) {
	db, err := sql.Open(migrationsDriver, databaseUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}

	locker, err := lock.NewPostgresSessionLocker()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create migration lock: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys,
		goose.WithSessionLocker(locker),
		goose.WithDisableGlobalRegistry(true),
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	defer provider.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return appliedVersions(results), nil
}

func appliedVersions(results []*goose.MigrationResult) []int64 {
	versions := make([]int64, 0, len(results))
	for _, result := range results {
		if result.Source == nil {
			continue
		}

		versions = append(versions, result.Source.Version)
	}

	return versions
}
