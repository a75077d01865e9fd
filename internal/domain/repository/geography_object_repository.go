package repository

import (
	"context"

	"github.com/geography-microservice/internal/domain"
)

// GeographyObjectRepository определяет методы для работы с географическими объектами
type GeographyObjectRepository interface {
	// GetByID возвращает объект вместе с типом; ErrNotFoundGeographyObject, если записи нет
	GetByID(ctx context.Context, id int64) (*domain.GeographyObject, error)

	// GetList возвращает активные объекты по фильтру
	GetList(ctx context.Context, filter domain.GeographyObjectFilter) ([]domain.GeographyObject, error)

	// UpdateLifecycle сохраняет date_deleted и поля аудита
	UpdateLifecycle(ctx context.Context, object *domain.GeographyObject) error
}

// GeographyObjectTypeRepository - компендиум типов географических объектов
type GeographyObjectTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.GeographyObjectType, error)
	GetList(ctx context.Context) ([]domain.GeographyObjectType, error)
}
