package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// MigrationDirection - направление применения миграций
type MigrationDirection string

const (
	MigrateUp   MigrationDirection = "up"
	MigrateDown MigrationDirection = "down"
)

// MigrationFiles возвращает файлы миграций направления в порядке применения:
// up по возрастанию имени, down по убыванию
func MigrationFiles(dir string, direction MigrationDirection) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	suffix := "." + string(direction) + ".sql"
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			files = append(files, e.Name())
		}
	}

	sort.Strings(files)
	if direction == MigrateDown {
		sort.Sort(sort.Reverse(sort.StringSlice(files)))
	}
	return files, nil
}

// Migrate применяет миграции из dir
func Migrate(ctx context.Context, db sqlx.ExecerContext, dir string, direction MigrationDirection, logger *zap.Logger) error {
	files, err := MigrationFiles(dir, direction)
	if err != nil {
		return err
	}

	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
		logger.Info("Applied migration", zap.String("file", file))
	}

	return nil
}
