package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/domain/repository"
	"github.com/geography-microservice/internal/pkg/errors"
)

const linkColumns = `
		l.id,
		l.geography_object_id,
		l.coordinate_id,
		ST_AsGeoJSON(l.center, ` + geoJSONPrecision + `) AS center,
		l.area,
		l.zoom,
		l.is_system,
		l.date_create,
		l.date_update,
		l.username_create,
		l.username_update,
		l.date_deleted`

const linkSelect = `SELECT` + linkColumns + ` FROM ` + tableGeographyObjectsCoordinates + ` l`

// linkDetailSelect - связь вместе с объектом, полигоном координаты и цветами её типа
const linkDetailSelect = `
	SELECT` + linkColumns + `,
		o.alias AS object_alias,
		o.name AS object_name,
		o.type_id AS object_type_id,
		o.parent_id AS object_parent_id,
		ST_AsBinary(c.polygon) AS polygon,
		c.type_id AS coordinate_type_id,
		c.is_system AS coordinate_is_system,
		t.alias AS type_alias,
		t.name AS type_name,
		t.background_color AS type_background_color,
		t.border_color AS type_border_color,
		t.date_deleted AS type_date_deleted
	FROM ` + tableGeographyObjectsCoordinates + ` l
	JOIN ` + tableGeographyObjects + ` o ON o.id = l.geography_object_id
	JOIN ` + tableCoordinates + ` c ON c.id = l.coordinate_id
	LEFT JOIN ` + tableCoordinatesTypes + ` t ON t.id = c.type_id`

// Активная запись пары первой, затем самая поздняя закрытая
const pairOrder = ` ORDER BY l.date_deleted ASC NULLS FIRST, l.id DESC LIMIT 1`

type linkRow struct {
	ID                int64         `db:"id"`
	GeographyObjectID int64         `db:"geography_object_id"`
	CoordinateID      sql.NullInt64 `db:"coordinate_id"`
	Center            domain.Point  `db:"center"`
	Area              float64       `db:"area"`
	Zoom              int           `db:"zoom"`
	IsSystem          bool          `db:"is_system"`
	auditColumns
}

func (r linkRow) toDomain() domain.GeographyObjectCoordinate {
	return domain.GeographyObjectCoordinate{
		ID:                r.ID,
		GeographyObjectID: r.GeographyObjectID,
		CoordinateID:      r.CoordinateID.Int64,
		Center:            r.Center,
		Area:              r.Area,
		Zoom:              r.Zoom,
		IsSystem:          r.IsSystem,
		Audit:             r.audit(),
		Lifecycle:         r.lifecycle(),
	}
}

type linkDetailRow struct {
	linkRow
	ObjectAlias        string         `db:"object_alias"`
	ObjectName         string         `db:"object_name"`
	ObjectTypeID       int64          `db:"object_type_id"`
	ObjectParentID     sql.NullInt64  `db:"object_parent_id"`
	Polygon            domain.Polygon `db:"polygon"`
	CoordinateTypeID   sql.NullInt64  `db:"coordinate_type_id"`
	CoordinateIsSystem bool           `db:"coordinate_is_system"`
	coordinateTypeColumns
}

func (r linkDetailRow) toDomain() domain.GeographyObjectCoordinate {
	link := r.linkRow.toDomain()
	link.GeographyObject = &domain.GeographyObject{
		ID:       r.GeographyObjectID,
		Alias:    r.ObjectAlias,
		Name:     r.ObjectName,
		TypeID:   r.ObjectTypeID,
		ParentID: int64Ptr(r.ObjectParentID),
	}
	link.Coordinate = &domain.Coordinate{
		ID:       link.CoordinateID,
		Polygon:  r.Polygon,
		TypeID:   int64Ptr(r.CoordinateTypeID),
		Type:     r.coordinateTypeColumns.toDomain(r.CoordinateTypeID),
		IsSystem: r.CoordinateIsSystem,
	}
	return link
}

type geographyObjectCoordinateRepository struct {
	db     sqlx.ExtContext
	logger *zap.Logger
}

// NewGeographyObjectCoordinateRepository создает новый экземпляр GeographyObjectCoordinateRepository
func NewGeographyObjectCoordinateRepository(db *DB) repository.GeographyObjectCoordinateRepository {
	return newGeographyObjectCoordinateRepository(db.DB, db.logger)
}

func newGeographyObjectCoordinateRepository(db sqlx.ExtContext, logger *zap.Logger) *geographyObjectCoordinateRepository {
	return &geographyObjectCoordinateRepository{db: db, logger: logger}
}

func (r *geographyObjectCoordinateRepository) GetByID(ctx context.Context, id int64) (*domain.GeographyObjectCoordinate, error) {
	var row linkRow
	err := sqlx.GetContext(ctx, r.db, &row, linkSelect+` WHERE l.id = $1`, id)
	if isNoRows(err) {
		return nil, errors.ErrNotFoundGeographyObjectCoordinate
	}
	if err != nil {
		r.logger.Error("failed to get geography object coordinate", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("get geography object coordinate %d: %w", id, err)
	}

	link := row.toDomain()
	return &link, nil
}

func (r *geographyObjectCoordinateRepository) GetByObjectAndCoordinate(ctx context.Context, objectID, coordinateID int64) (*domain.GeographyObjectCoordinate, error) {
	return r.getByPair(ctx, objectID, coordinateID, "")
}

func (r *geographyObjectCoordinateRepository) LockByObjectAndCoordinate(ctx context.Context, objectID, coordinateID int64) (*domain.GeographyObjectCoordinate, error) {
	return r.getByPair(ctx, objectID, coordinateID, " FOR UPDATE")
}

func (r *geographyObjectCoordinateRepository) getByPair(ctx context.Context, objectID, coordinateID int64, lock string) (*domain.GeographyObjectCoordinate, error) {
	query := linkSelect + ` WHERE l.geography_object_id = $1 AND l.coordinate_id = $2` + pairOrder + lock

	var row linkRow
	err := sqlx.GetContext(ctx, r.db, &row, query, objectID, coordinateID)
	if isNoRows(err) {
		return nil, errors.ErrNotFoundGeographyObjectCoordinate
	}
	if err != nil {
		r.logger.Error("failed to get geography object coordinate by pair",
			zap.Int64("geography_object_id", objectID),
			zap.Int64("coordinate_id", coordinateID),
			zap.Error(err))
		return nil, fmt.Errorf("get geography object coordinate (%d, %d): %w", objectID, coordinateID, err)
	}

	link := row.toDomain()
	return &link, nil
}

func (r *geographyObjectCoordinateRepository) ExistsActive(ctx context.Context, objectID, coordinateID, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM ` + tableGeographyObjectsCoordinates + `
			WHERE geography_object_id = $1
				AND coordinate_id = $2
				AND date_deleted IS NULL
				AND id <> $3
		)`

	var exists bool
	if err := sqlx.GetContext(ctx, r.db, &exists, query, objectID, coordinateID, excludeID); err != nil {
		r.logger.Error("failed to check active geography object coordinate",
			zap.Int64("geography_object_id", objectID),
			zap.Int64("coordinate_id", coordinateID),
			zap.Error(err))
		return false, fmt.Errorf("check active geography object coordinate: %w", err)
	}
	return exists, nil
}

func (r *geographyObjectCoordinateRepository) GetList(ctx context.Context) ([]domain.GeographyObjectCoordinate, error) {
	var rows []linkRow
	err := sqlx.SelectContext(ctx, r.db, &rows, linkSelect+` WHERE l.date_deleted IS NULL ORDER BY l.id`)
	if err != nil {
		r.logger.Error("failed to get geography object coordinates", zap.Error(err))
		return nil, fmt.Errorf("get geography object coordinates: %w", err)
	}

	result := make([]domain.GeographyObjectCoordinate, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

func (r *geographyObjectCoordinateRepository) GetListByGeographyObject(ctx context.Context, objectID int64) ([]domain.GeographyObjectCoordinate, error) {
	query := linkDetailSelect + `
		WHERE l.geography_object_id = $1 AND l.date_deleted IS NULL
		ORDER BY l.area DESC, l.id`

	return r.selectDetails(ctx, query, objectID)
}

func (r *geographyObjectCoordinateRepository) GetActiveByGeographyObjectTypes(ctx context.Context, typeIDs []int64) ([]domain.GeographyObjectCoordinate, error) {
	conditions := []string{"l.date_deleted IS NULL", "o.date_deleted IS NULL", "c.date_deleted IS NULL"}
	args := []interface{}{}
	if len(typeIDs) > 0 {
		conditions = append(conditions, "o.type_id IN (?)")
		args = append(args, typeIDs)
	}

	query := linkDetailSelect + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY o.id, l.area DESC, l.id"
	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("build geography object coordinates query: %w", err)
	}

	return r.selectDetails(ctx, r.db.Rebind(query), args...)
}

func (r *geographyObjectCoordinateRepository) selectDetails(ctx context.Context, query string, args ...interface{}) ([]domain.GeographyObjectCoordinate, error) {
	var rows []linkDetailRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		r.logger.Error("failed to get geography object coordinates with details", zap.Error(err))
		return nil, fmt.Errorf("get geography object coordinates with details: %w", err)
	}

	result := make([]domain.GeographyObjectCoordinate, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

func (r *geographyObjectCoordinateRepository) Create(ctx context.Context, link *domain.GeographyObjectCoordinate) (int64, error) {
	query := `
		INSERT INTO ` + tableGeographyObjectsCoordinates + ` (
			geography_object_id, coordinate_id, center, area, zoom, is_system,
			date_create, date_update, username_create, username_update, date_deleted
		)
		SELECT $1, c.id, ST_PointOnSurface(c.polygon), ST_Area(c.polygon), $3, $4, $5, $6, $7, $8, $9
		FROM ` + tableCoordinates + ` c
		WHERE c.id = $2
		RETURNING id, ST_AsGeoJSON(center, ` + geoJSONPrecision + `) AS center, area`

	var created struct {
		ID     int64        `db:"id"`
		Center domain.Point `db:"center"`
		Area   float64      `db:"area"`
	}
	err := sqlx.GetContext(ctx, r.db, &created, query,
		link.GeographyObjectID,
		link.CoordinateID,
		link.Zoom,
		link.IsSystem,
		link.Audit.DateCreate,
		link.Audit.DateUpdate,
		link.Audit.UsernameCreate,
		link.Audit.UsernameUpdate,
		link.Lifecycle.DateDeleted(),
	)
	if isNoRows(err) {
		return 0, errors.ErrNotFoundCoordinate
	}
	if isUniqueViolation(err) {
		return 0, errors.ErrExistsGeographyObjectCoordinate
	}
	if err != nil {
		r.logger.Error("failed to create geography object coordinate",
			zap.Int64("geography_object_id", link.GeographyObjectID),
			zap.Int64("coordinate_id", link.CoordinateID),
			zap.Error(err))
		return 0, fmt.Errorf("create geography object coordinate: %w", err)
	}

	link.ID = created.ID
	link.Center = created.Center
	link.Area = created.Area
	return created.ID, nil
}

func (r *geographyObjectCoordinateRepository) UpdateLifecycle(ctx context.Context, link *domain.GeographyObjectCoordinate) error {
	query := `
		UPDATE ` + tableGeographyObjectsCoordinates + `
		SET date_deleted = $2,
			date_update = $3,
			username_update = $4
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		link.ID,
		link.Lifecycle.DateDeleted(),
		link.Audit.DateUpdate,
		link.Audit.UsernameUpdate,
	)
	if isUniqueViolation(err) {
		return errors.ErrExistsGeographyObjectCoordinate
	}
	if err != nil {
		r.logger.Error("failed to update geography object coordinate lifecycle", zap.Int64("id", link.ID), zap.Error(err))
		return fmt.Errorf("update geography object coordinate %d: %w", link.ID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return errors.ErrNotFoundGeographyObjectCoordinate
	}
	return nil
}
