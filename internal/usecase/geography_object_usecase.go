package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/domain/repository"
	"github.com/geography-microservice/internal/pkg/errors"
	"github.com/geography-microservice/internal/pkg/metrics"
	"github.com/geography-microservice/internal/usecase/dto"
)

// ListCachePrefix - префикс ключей кеша списка объектов с координатами
const ListCachePrefix = "geo_objects_"

// ListCacheInvalidator сбрасывает кеш списка объектов после изменения связей
type ListCacheInvalidator interface {
	InvalidateListCache(ctx context.Context)
}

// ListCacheKey - ключ кеша для набора типов объектов
func ListCacheKey(typeIDs []int64) string {
	parts := make([]string, 0, len(typeIDs))
	for _, id := range typeIDs {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return ListCachePrefix + strings.Join(parts, "_")
}

// GeographyObjectUseCase - географические объекты и кешируемый список объектов с полигонами
type GeographyObjectUseCase struct {
	objectRepo     repository.GeographyObjectRepository
	objectTypeRepo repository.GeographyObjectTypeRepository
	linkRepo       repository.GeographyObjectCoordinateRepository
	cacheRepo      repository.CacheRepository
	txManager      repository.TxManager
	listCacheTTL   time.Duration
	group          singleflight.Group
	logger         *zap.Logger
}

// NewGeographyObjectUseCase создает новый экземпляр GeographyObjectUseCase
func NewGeographyObjectUseCase(
	objectRepo repository.GeographyObjectRepository,
	objectTypeRepo repository.GeographyObjectTypeRepository,
	linkRepo repository.GeographyObjectCoordinateRepository,
	cacheRepo repository.CacheRepository,
	txManager repository.TxManager,
	listCacheTTL time.Duration,
	logger *zap.Logger,
) *GeographyObjectUseCase {
	return &GeographyObjectUseCase{
		objectRepo:     objectRepo,
		objectTypeRepo: objectTypeRepo,
		linkRepo:       linkRepo,
		cacheRepo:      cacheRepo,
		txManager:      txManager,
		listCacheTTL:   listCacheTTL,
		logger:         logger,
	}
}

func (uc *GeographyObjectUseCase) GetByID(ctx context.Context, id *int64) (*dto.GeographyObjectItem, error) {
	if id == nil {
		return nil, errors.ErrEmptyID
	}

	object, err := uc.objectRepo.GetByID(ctx, *id)
	if err != nil {
		return nil, err
	}

	item := toGeographyObjectItem(*object)
	return &item, nil
}

// GetList возвращает активные объекты с фильтрами по типу и наличию координат
func (uc *GeographyObjectUseCase) GetList(ctx context.Context, query dto.GeographyObjectListQuery) ([]dto.GeographyObjectItem, error) {
	objects, err := uc.objectRepo.GetList(ctx, domain.GeographyObjectFilter{
		HasCoordinates: query.HasCoordinates,
		TypeID:         query.TypeID,
		TypeIDs:        query.TypeIDs,
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.GeographyObjectItem, 0, len(objects))
	for _, o := range objects {
		items = append(items, toGeographyObjectItem(o))
	}
	return items, nil
}

func (uc *GeographyObjectUseCase) GetTypes(ctx context.Context) ([]dto.GeographyObjectTypeItem, error) {
	types, err := uc.objectTypeRepo.GetList(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.GeographyObjectTypeItem, 0, len(types))
	for _, t := range types {
		items = append(items, dto.GeographyObjectTypeItem{ID: t.ID, Alias: t.Alias, Name: t.Name})
	}
	return items, nil
}

// GetListWithCoordinates возвращает объекты указанных типов со всеми активными полигонами.
// Результат кешируется; одновременные промахи по одному ключу собираются один раз.
func (uc *GeographyObjectUseCase) GetListWithCoordinates(ctx context.Context, typeIDs []int64) ([]dto.GeographyObjectWithCoordinatesItem, error) {
	key := ListCacheKey(typeIDs)

	if items, ok := uc.fromCache(ctx, key); ok {
		metrics.ListCacheHitsTotal.Inc()
		return items, nil
	}

	v, err, _ := uc.group.Do(key, func() (interface{}, error) {
		// повторная проверка: ключ мог заполнить предыдущий полёт
		if items, ok := uc.fromCache(ctx, key); ok {
			metrics.ListCacheHitsTotal.Inc()
			return items, nil
		}
		metrics.ListCacheMissesTotal.Inc()

		items, err := uc.buildListWithCoordinates(ctx, typeIDs)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(items)
		if err != nil {
			uc.logger.Warn("Failed to marshal geography objects list", zap.Error(err))
			return items, nil
		}
		if err := uc.cacheRepo.Set(ctx, key, data, uc.listCacheTTL); err != nil {
			uc.logger.Warn("Failed to cache geography objects list", zap.String("key", key), zap.Error(err))
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]dto.GeographyObjectWithCoordinatesItem), nil
}

func (uc *GeographyObjectUseCase) fromCache(ctx context.Context, key string) ([]dto.GeographyObjectWithCoordinatesItem, bool) {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to read geography objects list from cache", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var items []dto.GeographyObjectWithCoordinatesItem
	if err := json.Unmarshal(data, &items); err != nil {
		uc.logger.Warn("Corrupted geography objects list in cache", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return items, true
}

// buildListWithCoordinates группирует связи по объекту; связи приходят упорядоченными
// по объекту и убыванию площади, поэтому первая связь объекта задаёт центр и масштаб
func (uc *GeographyObjectUseCase) buildListWithCoordinates(ctx context.Context, typeIDs []int64) ([]dto.GeographyObjectWithCoordinatesItem, error) {
	links, err := uc.linkRepo.GetActiveByGeographyObjectTypes(ctx, typeIDs)
	if err != nil {
		return nil, err
	}

	items := make([]dto.GeographyObjectWithCoordinatesItem, 0)
	index := make(map[int64]int)
	for _, link := range links {
		i, ok := index[link.GeographyObjectID]
		if !ok {
			item := dto.GeographyObjectWithCoordinatesItem{
				ID:          link.GeographyObjectID,
				Center:      link.Center.Array(),
				Zoom:        link.Zoom,
				Coordinates: []dto.PolygonItem{},
			}
			if link.GeographyObject != nil {
				item.Name = link.GeographyObject.Name
			}
			items = append(items, item)
			i = len(items) - 1
			index[link.GeographyObjectID] = i
		}
		items[i].Coordinates = append(items[i].Coordinates, toPolygonItem(link))
	}
	return items, nil
}

// InvalidateListCache удаляет все ключи списка; ошибки кеша только логируются
func (uc *GeographyObjectUseCase) InvalidateListCache(ctx context.Context) {
	if err := uc.cacheRepo.DeleteByPrefix(ctx, ListCachePrefix); err != nil {
		uc.logger.Warn("Failed to invalidate geography objects list cache", zap.Error(err))
	}
}

func (uc *GeographyObjectUseCase) Close(ctx context.Context, id *int64, username string) error {
	return uc.changeLifecycle(ctx, id, username, "close", func(o domain.GeographyObject, at time.Time) (domain.GeographyObject, error) {
		return o.Close(at, username)
	})
}

func (uc *GeographyObjectUseCase) Restore(ctx context.Context, id *int64, username string) error {
	return uc.changeLifecycle(ctx, id, username, "restore", func(o domain.GeographyObject, at time.Time) (domain.GeographyObject, error) {
		return o.Restore(at, username)
	})
}

func (uc *GeographyObjectUseCase) changeLifecycle(
	ctx context.Context,
	id *int64,
	username, action string,
	transition func(domain.GeographyObject, time.Time) (domain.GeographyObject, error),
) error {
	if id == nil {
		return errors.ErrEmptyID
	}

	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context, uow repository.UnitOfWork) error {
		object, err := uow.GeographyObjects().GetByID(ctx, *id)
		if err != nil {
			return err
		}

		next, err := transition(*object, time.Now().UTC())
		if err != nil {
			return err
		}

		return uow.GeographyObjects().UpdateLifecycle(ctx, &next)
	})
	if err != nil {
		uc.logger.Warn("Failed to change geography object lifecycle",
			zap.String("action", action),
			zap.Int64("id", *id),
			zap.Error(err))
		return err
	}

	uc.InvalidateListCache(ctx)
	uc.logger.Info("Geography object lifecycle changed",
		zap.String("action", action),
		zap.Int64("id", *id),
		zap.String("username", username))
	return nil
}
