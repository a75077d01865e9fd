package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sqlx.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// CountActiveLinks returns the number of active links for the pair
func CountActiveLinks(db *sqlx.DB, objectID, coordinateID int64) (int, error) {
	var count int
	err := db.Get(&count, `
		SELECT COUNT(*) FROM insania_geography.u_geography_objects_coordinates
		WHERE geography_object_id = $1 AND coordinate_id = $2 AND date_deleted IS NULL`,
		objectID, coordinateID)
	if err != nil {
		return 0, fmt.Errorf("count active links (%d, %d): %w", objectID, coordinateID, err)
	}
	return count, nil
}

// CountRows returns the number of rows in a table
func CountRows(db *sqlx.DB, table string) (int, error) {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, fmt.Errorf("count rows in %s: %w", table, err)
	}
	return count, nil
}
