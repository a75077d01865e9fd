package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/domain/repository"
	"github.com/geography-microservice/internal/pkg/errors"
)

const coordinateSelect = `
	SELECT
		c.id,
		ST_AsBinary(c.polygon) AS polygon,
		c.type_id,
		c.is_system,
		c.date_create,
		c.date_update,
		c.username_create,
		c.username_update,
		c.date_deleted,
		t.alias AS type_alias,
		t.name AS type_name,
		t.background_color AS type_background_color,
		t.border_color AS type_border_color,
		t.date_deleted AS type_date_deleted
	FROM ` + tableCoordinates + ` c
	LEFT JOIN ` + tableCoordinatesTypes + ` t ON t.id = c.type_id`

type coordinateRow struct {
	ID       int64          `db:"id"`
	Polygon  domain.Polygon `db:"polygon"`
	TypeID   sql.NullInt64  `db:"type_id"`
	IsSystem bool           `db:"is_system"`
	auditColumns
	coordinateTypeColumns
}

func (r coordinateRow) toDomain() domain.Coordinate {
	return domain.Coordinate{
		ID:        r.ID,
		Polygon:   r.Polygon,
		TypeID:    int64Ptr(r.TypeID),
		Type:      r.coordinateTypeColumns.toDomain(r.TypeID),
		IsSystem:  r.IsSystem,
		Audit:     r.audit(),
		Lifecycle: r.lifecycle(),
	}
}

type coordinateRepository struct {
	db     sqlx.ExtContext
	logger *zap.Logger
}

// NewCoordinateRepository создает новый экземпляр CoordinateRepository
func NewCoordinateRepository(db *DB) repository.CoordinateRepository {
	return newCoordinateRepository(db.DB, db.logger)
}

func newCoordinateRepository(db sqlx.ExtContext, logger *zap.Logger) *coordinateRepository {
	return &coordinateRepository{
		db:     db,
		logger: logger,
	}
}

func (r *coordinateRepository) GetByID(ctx context.Context, id int64) (*domain.Coordinate, error) {
	var row coordinateRow
	err := sqlx.GetContext(ctx, r.db, &row, coordinateSelect+` WHERE c.id = $1`, id)
	if isNoRows(err) {
		return nil, errors.ErrNotFoundCoordinate
	}
	if err != nil {
		r.logger.Error("failed to get coordinate", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("get coordinate %d: %w", id, err)
	}

	coordinate := row.toDomain()
	return &coordinate, nil
}

func (r *coordinateRepository) GetList(ctx context.Context) ([]domain.Coordinate, error) {
	var rows []coordinateRow
	err := sqlx.SelectContext(ctx, r.db, &rows, coordinateSelect+` WHERE c.date_deleted IS NULL ORDER BY c.id`)
	if err != nil {
		r.logger.Error("failed to get coordinates", zap.Error(err))
		return nil, fmt.Errorf("get coordinates: %w", err)
	}

	result := make([]domain.Coordinate, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

func (r *coordinateRepository) Create(ctx context.Context, coordinate *domain.Coordinate) (int64, error) {
	query := `
		INSERT INTO ` + tableCoordinates + ` (
			polygon, type_id, is_system,
			date_create, date_update, username_create, username_update, date_deleted
		)
		VALUES (ST_SetSRID(ST_GeomFromGeoJSON($1::text), 0), $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := sqlx.GetContext(ctx, r.db, &id, query,
		coordinate.Polygon,
		nullInt64(coordinate.TypeID),
		coordinate.IsSystem,
		coordinate.Audit.DateCreate,
		coordinate.Audit.DateUpdate,
		coordinate.Audit.UsernameCreate,
		coordinate.Audit.UsernameUpdate,
		coordinate.Lifecycle.DateDeleted(),
	)
	if err != nil {
		r.logger.Error("failed to create coordinate", zap.Error(err))
		return 0, fmt.Errorf("create coordinate: %w", err)
	}

	coordinate.ID = id
	return id, nil
}

func (r *coordinateRepository) UpdatePolygon(ctx context.Context, coordinate *domain.Coordinate) error {
	query := `
		UPDATE ` + tableCoordinates + `
		SET polygon = ST_SetSRID(ST_GeomFromGeoJSON($2::text), 0),
			date_update = $3,
			username_update = $4
		WHERE id = $1`

	return r.exec(ctx, "update coordinate polygon", coordinate.ID, query,
		coordinate.ID,
		coordinate.Polygon,
		coordinate.Audit.DateUpdate,
		coordinate.Audit.UsernameUpdate,
	)
}

func (r *coordinateRepository) UpdateLifecycle(ctx context.Context, coordinate *domain.Coordinate) error {
	query := `
		UPDATE ` + tableCoordinates + `
		SET date_deleted = $2,
			date_update = $3,
			username_update = $4
		WHERE id = $1`

	return r.exec(ctx, "update coordinate lifecycle", coordinate.ID, query,
		coordinate.ID,
		coordinate.Lifecycle.DateDeleted(),
		coordinate.Audit.DateUpdate,
		coordinate.Audit.UsernameUpdate,
	)
}

func (r *coordinateRepository) exec(ctx context.Context, op string, id int64, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to "+op, zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("%s %d: %w", op, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d: rows affected: %w", op, id, err)
	}
	if affected == 0 {
		return errors.ErrNotFoundCoordinate
	}
	return nil
}
