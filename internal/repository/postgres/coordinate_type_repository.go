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

const coordinateTypeSelect = `
	SELECT
		id, alias, name, background_color, border_color,
		date_create, date_update, username_create, username_update, date_deleted
	FROM ` + tableCoordinatesTypes

type coordinateTypeRow struct {
	ID              int64  `db:"id"`
	Alias           string `db:"alias"`
	Name            string `db:"name"`
	BackgroundColor string `db:"background_color"`
	BorderColor     string `db:"border_color"`
	auditColumns
}

func (r coordinateTypeRow) toDomain() domain.CoordinateType {
	return domain.CoordinateType{
		ID:              r.ID,
		Alias:           r.Alias,
		Name:            r.Name,
		BackgroundColor: r.BackgroundColor,
		BorderColor:     r.BorderColor,
		Audit:           r.audit(),
		Lifecycle:       r.lifecycle(),
	}
}

type coordinateTypeRepository struct {
	db     sqlx.ExtContext
	logger *zap.Logger
}

// NewCoordinateTypeRepository создает новый экземпляр CoordinateTypeRepository
func NewCoordinateTypeRepository(db *DB) repository.CoordinateTypeRepository {
	return newCoordinateTypeRepository(db.DB, db.logger)
}

func newCoordinateTypeRepository(db sqlx.ExtContext, logger *zap.Logger) *coordinateTypeRepository {
	return &coordinateTypeRepository{db: db, logger: logger}
}

func (r *coordinateTypeRepository) GetByID(ctx context.Context, id int64) (*domain.CoordinateType, error) {
	var row coordinateTypeRow
	err := sqlx.GetContext(ctx, r.db, &row, coordinateTypeSelect+` WHERE id = $1`, id)
	if isNoRows(err) {
		return nil, errors.ErrNotFoundCoordinateType
	}
	if err != nil {
		r.logger.Error("failed to get coordinate type", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("get coordinate type %d: %w", id, err)
	}

	coordinateType := row.toDomain()
	return &coordinateType, nil
}

func (r *coordinateTypeRepository) GetList(ctx context.Context) ([]domain.CoordinateType, error) {
	var rows []coordinateTypeRow
	err := sqlx.SelectContext(ctx, r.db, &rows, coordinateTypeSelect+` WHERE date_deleted IS NULL ORDER BY name`)
	if err != nil {
		r.logger.Error("failed to get coordinate types", zap.Error(err))
		return nil, fmt.Errorf("get coordinate types: %w", err)
	}

	result := make([]domain.CoordinateType, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}
