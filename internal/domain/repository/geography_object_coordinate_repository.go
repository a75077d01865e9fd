package repository

import (
	"context"

	"github.com/geography-microservice/internal/domain"
)

// GeographyObjectCoordinateRepository определяет методы для работы со связями объектов и координат
type GeographyObjectCoordinateRepository interface {
	// GetByID возвращает связь; ErrNotFoundGeographyObjectCoordinate, если записи нет
	GetByID(ctx context.Context, id int64) (*domain.GeographyObjectCoordinate, error)

	// GetByObjectAndCoordinate возвращает наиболее актуальную связь пары: активная запись имеет приоритет
	GetByObjectAndCoordinate(ctx context.Context, objectID, coordinateID int64) (*domain.GeographyObjectCoordinate, error)

	// LockByObjectAndCoordinate - то же, что GetByObjectAndCoordinate, но с блокировкой строки до конца транзакции
	LockByObjectAndCoordinate(ctx context.Context, objectID, coordinateID int64) (*domain.GeographyObjectCoordinate, error)

	// ExistsActive проверяет наличие активной связи пары, кроме связи excludeID (0 - без исключения)
	ExistsActive(ctx context.Context, objectID, coordinateID, excludeID int64) (bool, error)

	// GetList возвращает активные связи
	GetList(ctx context.Context) ([]domain.GeographyObjectCoordinate, error)

	// GetListByGeographyObject возвращает активные связи объекта с координатами и их типами,
	// от большей площади к меньшей
	GetListByGeographyObject(ctx context.Context, objectID int64) ([]domain.GeographyObjectCoordinate, error)

	// GetActiveByGeographyObjectTypes возвращает активные связи активных объектов указанных типов
	// (все типы при пустом списке) вместе с объектами, координатами и типами координат
	GetActiveByGeographyObjectTypes(ctx context.Context, typeIDs []int64) ([]domain.GeographyObjectCoordinate, error)

	// Create сохраняет связь; центр и площадь вычисляются из полигона координаты.
	// Вычисленные значения записываются в link.
	Create(ctx context.Context, link *domain.GeographyObjectCoordinate) (int64, error)

	// UpdateLifecycle сохраняет date_deleted и поля аудита
	UpdateLifecycle(ctx context.Context, link *domain.GeographyObjectCoordinate) error
}
