package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/domain/repository"
	"github.com/geography-microservice/internal/pkg/errors"
)

const geographyObjectTypeSelect = `
	SELECT
		id, alias, name,
		date_create, date_update, username_create, username_update, date_deleted
	FROM ` + tableGeographyObjectsTypes

type geographyObjectTypeRow struct {
	ID    int64  `db:"id"`
	Alias string `db:"alias"`
	Name  string `db:"name"`
	auditColumns
}

func (r geographyObjectTypeRow) toDomain() domain.GeographyObjectType {
	return domain.GeographyObjectType{
		ID:        r.ID,
		Alias:     r.Alias,
		Name:      r.Name,
		Audit:     r.audit(),
		Lifecycle: r.lifecycle(),
	}
}

type geographyObjectTypeRepository struct {
	db     sqlx.ExtContext
	logger *zap.Logger
}

// NewGeographyObjectTypeRepository создает новый экземпляр GeographyObjectTypeRepository
func NewGeographyObjectTypeRepository(db *DB) repository.GeographyObjectTypeRepository {
	return newGeographyObjectTypeRepository(db.DB, db.logger)
}

func newGeographyObjectTypeRepository(db sqlx.ExtContext, logger *zap.Logger) *geographyObjectTypeRepository {
	return &geographyObjectTypeRepository{db: db, logger: logger}
}

func (r *geographyObjectTypeRepository) GetByID(ctx context.Context, id int64) (*domain.GeographyObjectType, error) {
	var row geographyObjectTypeRow
	err := sqlx.GetContext(ctx, r.db, &row, geographyObjectTypeSelect+` WHERE id = $1`, id)
	if isNoRows(err) {
		return nil, errors.ErrNotFoundGeographyObjectType
	}
	if err != nil {
		r.logger.Error("failed to get geography object type", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("get geography object type %d: %w", id, err)
	}

	objectType := row.toDomain()
	return &objectType, nil
}

func (r *geographyObjectTypeRepository) GetList(ctx context.Context) ([]domain.GeographyObjectType, error) {
	var rows []geographyObjectTypeRow
	err := sqlx.SelectContext(ctx, r.db, &rows, geographyObjectTypeSelect+` WHERE date_deleted IS NULL ORDER BY name`)
	if err != nil {
		r.logger.Error("failed to get geography object types", zap.Error(err))
		return nil, fmt.Errorf("get geography object types: %w", err)
	}

	result := make([]domain.GeographyObjectType, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}
