package repository

import (
	"context"

	"github.com/geography-microservice/internal/domain"
)

// CoordinateRepository определяет методы для работы с версиями координат
type CoordinateRepository interface {
	// GetByID возвращает координату вместе с типом; ErrNotFoundCoordinate, если записи нет
	GetByID(ctx context.Context, id int64) (*domain.Coordinate, error)

	// GetList возвращает активные координаты
	GetList(ctx context.Context) ([]domain.Coordinate, error)

	// Create сохраняет новую версию координаты и возвращает её id
	Create(ctx context.Context, coordinate *domain.Coordinate) (int64, error)

	// UpdatePolygon сохраняет полигон и поля аудита
	UpdatePolygon(ctx context.Context, coordinate *domain.Coordinate) error

	// UpdateLifecycle сохраняет date_deleted и поля аудита
	UpdateLifecycle(ctx context.Context, coordinate *domain.Coordinate) error
}

// CoordinateTypeRepository - компендиум типов координат
type CoordinateTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CoordinateType, error)
	GetList(ctx context.Context) ([]domain.CoordinateType, error)
}
