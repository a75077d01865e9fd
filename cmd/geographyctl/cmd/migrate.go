package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/repository/postgres"
)

var migrationsDir string

// migrateCmd применяет миграции в указанном направлении
var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Применить миграции схемы (up) или откатить их (down)",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(postgres.MigrateUp), string(postgres.MigrateDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := postgres.MigrationDirection(args[0])

		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		if err := postgres.Migrate(cmd.Context(), db, migrationsDir, direction, log); err != nil {
			return err
		}

		log.Info("Migrations applied",
			zap.String("direction", string(direction)),
			zap.String("dir", migrationsDir))
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "./migrations", "каталог с файлами *.up.sql / *.down.sql")
	rootCmd.AddCommand(migrateCmd)
}
