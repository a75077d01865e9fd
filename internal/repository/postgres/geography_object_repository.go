package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/domain/repository"
	"github.com/geography-microservice/internal/pkg/errors"
)

const geographyObjectSelect = `
	SELECT
		o.id,
		o.alias,
		o.name,
		o.type_id,
		o.parent_id,
		o.date_create,
		o.date_update,
		o.username_create,
		o.username_update,
		o.date_deleted,
		t.alias AS type_alias,
		t.name AS type_name,
		t.date_deleted AS type_date_deleted
	FROM ` + tableGeographyObjects + ` o
	JOIN ` + tableGeographyObjectsTypes + ` t ON t.id = o.type_id`

// hasActiveLinks - полусоединение с активными связями объекта
const hasActiveLinks = `EXISTS (
		SELECT 1 FROM ` + tableGeographyObjectsCoordinates + ` l
		WHERE l.geography_object_id = o.id AND l.date_deleted IS NULL
	)`

type geographyObjectRow struct {
	ID              int64         `db:"id"`
	Alias           string        `db:"alias"`
	Name            string        `db:"name"`
	TypeID          int64         `db:"type_id"`
	ParentID        sql.NullInt64 `db:"parent_id"`
	TypeAlias       string        `db:"type_alias"`
	TypeName        string        `db:"type_name"`
	TypeDateDeleted *time.Time    `db:"type_date_deleted"`
	auditColumns
}

func (r geographyObjectRow) toDomain() domain.GeographyObject {
	objectType := &domain.GeographyObjectType{
		ID:        r.TypeID,
		Alias:     r.TypeAlias,
		Name:      r.TypeName,
		Lifecycle: domain.LifecycleFromDateDeleted(r.TypeDateDeleted),
	}

	return domain.GeographyObject{
		ID:        r.ID,
		Alias:     r.Alias,
		Name:      r.Name,
		TypeID:    r.TypeID,
		Type:      objectType,
		ParentID:  int64Ptr(r.ParentID),
		Audit:     r.audit(),
		Lifecycle: r.lifecycle(),
	}
}

type geographyObjectRepository struct {
	db     sqlx.ExtContext
	logger *zap.Logger
}

// NewGeographyObjectRepository создает новый экземпляр GeographyObjectRepository
func NewGeographyObjectRepository(db *DB) repository.GeographyObjectRepository {
	return newGeographyObjectRepository(db.DB, db.logger)
}

func newGeographyObjectRepository(db sqlx.ExtContext, logger *zap.Logger) *geographyObjectRepository {
	return &geographyObjectRepository{db: db, logger: logger}
}

func (r *geographyObjectRepository) GetByID(ctx context.Context, id int64) (*domain.GeographyObject, error) {
	var row geographyObjectRow
	err := sqlx.GetContext(ctx, r.db, &row, geographyObjectSelect+` WHERE o.id = $1`, id)
	if isNoRows(err) {
		return nil, errors.ErrNotFoundGeographyObject
	}
	if err != nil {
		r.logger.Error("failed to get geography object", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("get geography object %d: %w", id, err)
	}

	object := row.toDomain()
	return &object, nil
}

func (r *geographyObjectRepository) GetList(ctx context.Context, filter domain.GeographyObjectFilter) ([]domain.GeographyObject, error) {
	conditions := []string{"o.date_deleted IS NULL"}
	args := []interface{}{}

	if filter.HasCoordinates != nil {
		if *filter.HasCoordinates {
			conditions = append(conditions, hasActiveLinks)
		} else {
			conditions = append(conditions, "NOT "+hasActiveLinks)
		}
	}
	if filter.TypeID != nil {
		conditions = append(conditions, "o.type_id = ?")
		args = append(args, *filter.TypeID)
	}
	if len(filter.TypeIDs) > 0 {
		conditions = append(conditions, "o.type_id IN (?)")
		args = append(args, filter.TypeIDs)
	}

	query := geographyObjectSelect + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY o.id"
	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("build geography objects query: %w", err)
	}

	var rows []geographyObjectRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("failed to get geography objects", zap.Error(err))
		return nil, fmt.Errorf("get geography objects: %w", err)
	}

	result := make([]domain.GeographyObject, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}

func (r *geographyObjectRepository) UpdateLifecycle(ctx context.Context, object *domain.GeographyObject) error {
	query := `
		UPDATE ` + tableGeographyObjects + `
		SET date_deleted = $2,
			date_update = $3,
			username_update = $4
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		object.ID,
		object.Lifecycle.DateDeleted(),
		object.Audit.DateUpdate,
		object.Audit.UsernameUpdate,
	)
	if err != nil {
		r.logger.Error("failed to update geography object lifecycle", zap.Int64("id", object.ID), zap.Error(err))
		return fmt.Errorf("update geography object %d: %w", object.ID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return errors.ErrNotFoundGeographyObject
	}
	return nil
}
