package testhelpers

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/repository/postgres"
)

// ApplyMigrations applies all .up.sql migration files from the specified directory
func ApplyMigrations(db *sqlx.DB, migrationsPath string) error {
	return postgres.Migrate(context.Background(), db, migrationsPath, postgres.MigrateUp, zap.NewNop())
}
