package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/domain/repository"
	"github.com/geography-microservice/internal/pkg/errors"
	"github.com/geography-microservice/internal/usecase/dto"
)

// GeographyObjectCoordinateUseCase - связи географических объектов с координатами
type GeographyObjectCoordinateUseCase struct {
	linkRepo  repository.GeographyObjectCoordinateRepository
	txManager repository.TxManager
	listCache ListCacheInvalidator
	logger    *zap.Logger
}

// NewGeographyObjectCoordinateUseCase создает новый экземпляр GeographyObjectCoordinateUseCase
func NewGeographyObjectCoordinateUseCase(
	linkRepo repository.GeographyObjectCoordinateRepository,
	txManager repository.TxManager,
	listCache ListCacheInvalidator,
	logger *zap.Logger,
) *GeographyObjectCoordinateUseCase {
	return &GeographyObjectCoordinateUseCase{
		linkRepo:  linkRepo,
		txManager: txManager,
		listCache: listCache,
		logger:    logger,
	}
}

func (uc *GeographyObjectCoordinateUseCase) GetByID(ctx context.Context, id *int64) (*dto.GeographyObjectCoordinateItem, error) {
	if id == nil {
		return nil, errors.ErrEmptyID
	}

	link, err := uc.linkRepo.GetByID(ctx, *id)
	if err != nil {
		return nil, err
	}

	item := toGeographyObjectCoordinateItem(*link)
	return &item, nil
}

func (uc *GeographyObjectCoordinateUseCase) GetList(ctx context.Context) ([]dto.GeographyObjectCoordinateItem, error) {
	links, err := uc.linkRepo.GetList(ctx)
	if err != nil {
		return nil, err
	}
	return toGeographyObjectCoordinateItems(links), nil
}

// GetListByGeographyObject возвращает активные связи одного объекта, крупные полигоны первыми
func (uc *GeographyObjectCoordinateUseCase) GetListByGeographyObject(ctx context.Context, objectID *int64) ([]dto.GeographyObjectCoordinateItem, error) {
	if objectID == nil || *objectID == 0 {
		return nil, errors.ErrEmptyGeographyObjectID
	}

	links, err := uc.linkRepo.GetListByGeographyObject(ctx, *objectID)
	if err != nil {
		return nil, err
	}
	return toGeographyObjectCoordinateItems(links), nil
}

// GetListByObject собирает карточку объекта: имя, центр и масштаб берутся из связи
// с наибольшей площадью, в элементах все активные полигоны объекта
func (uc *GeographyObjectCoordinateUseCase) GetListByObject(ctx context.Context, objectID *int64) (*dto.GeographyObjectCoordinatesResponse, error) {
	if objectID == nil || *objectID == 0 {
		return nil, errors.ErrEmptyGeographyObjectID
	}

	links, err := uc.linkRepo.GetListByGeographyObject(ctx, *objectID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, errors.ErrNotFoundGeographyObjectCoordinate
	}

	largest := links[0]
	response := &dto.GeographyObjectCoordinatesResponse{
		Success: true,
		Center:  largest.Center.Array(),
		Zoom:    largest.Zoom,
		Items:   make([]dto.PolygonItem, 0, len(links)),
	}
	if largest.GeographyObject != nil {
		response.Name = largest.GeographyObject.Name
	}
	for _, link := range links {
		response.Items = append(response.Items, toPolygonItem(link))
	}
	return response, nil
}

// Add привязывает активную координату к активному объекту
func (uc *GeographyObjectCoordinateUseCase) Add(ctx context.Context, req *dto.AddGeographyObjectCoordinateRequest, username string) (int64, error) {
	if req == nil {
		return 0, errors.ErrEmptyRequest
	}
	if req.GeographyObjectID == nil {
		return 0, errors.ErrEmptyGeographyObjectID
	}
	if req.CoordinateID == nil {
		return 0, errors.ErrEmptyCoordinateID
	}
	if err := domain.ValidateZoom(req.Zoom); err != nil {
		return 0, err
	}

	var id int64
	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context, uow repository.UnitOfWork) error {
		object, err := uow.GeographyObjects().GetByID(ctx, *req.GeographyObjectID)
		if err != nil {
			return err
		}

		coordinate, err := uow.Coordinates().GetByID(ctx, *req.CoordinateID)
		if err != nil {
			return err
		}

		id, err = addLink(ctx, uow, object, coordinate, req.Zoom, username, time.Now().UTC())
		return err
	})
	if err != nil {
		uc.logger.Warn("Failed to add geography object coordinate",
			zap.Int64("geography_object_id", *req.GeographyObjectID),
			zap.Int64("coordinate_id", *req.CoordinateID),
			zap.Error(err))
		return 0, err
	}

	uc.listCache.InvalidateListCache(ctx)
	uc.logger.Info("Geography object coordinate added", zap.Int64("id", id), zap.String("username", username))
	return id, nil
}

func (uc *GeographyObjectCoordinateUseCase) Close(ctx context.Context, id *int64, username string) error {
	return uc.changeLifecycle(ctx, id, username, "close", func(ctx context.Context, uow repository.UnitOfWork, link domain.GeographyObjectCoordinate, at time.Time) (domain.GeographyObjectCoordinate, error) {
		return link.Close(at, username)
	})
}

// Restore восстанавливает связь, если по той же паре нет другой активной связи
func (uc *GeographyObjectCoordinateUseCase) Restore(ctx context.Context, id *int64, username string) error {
	return uc.changeLifecycle(ctx, id, username, "restore", func(ctx context.Context, uow repository.UnitOfWork, link domain.GeographyObjectCoordinate, at time.Time) (domain.GeographyObjectCoordinate, error) {
		restored, err := link.Restore(at, username)
		if err != nil {
			return link, err
		}

		exists, err := uow.GeographyObjectCoordinates().ExistsActive(ctx, link.GeographyObjectID, link.CoordinateID, link.ID)
		if err != nil {
			return link, err
		}
		if exists {
			return link, errors.ErrExistsGeographyObjectCoordinate
		}
		return restored, nil
	})
}

func (uc *GeographyObjectCoordinateUseCase) changeLifecycle(
	ctx context.Context,
	id *int64,
	username, action string,
	transition func(context.Context, repository.UnitOfWork, domain.GeographyObjectCoordinate, time.Time) (domain.GeographyObjectCoordinate, error),
) error {
	if id == nil {
		return errors.ErrEmptyID
	}

	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context, uow repository.UnitOfWork) error {
		link, err := uow.GeographyObjectCoordinates().GetByID(ctx, *id)
		if err != nil {
			return err
		}

		next, err := transition(ctx, uow, *link, time.Now().UTC())
		if err != nil {
			return err
		}

		return uow.GeographyObjectCoordinates().UpdateLifecycle(ctx, &next)
	})
	if err != nil {
		uc.logger.Warn("Failed to change geography object coordinate lifecycle",
			zap.String("action", action),
			zap.Int64("id", *id),
			zap.Error(err))
		return err
	}

	uc.listCache.InvalidateListCache(ctx)
	uc.logger.Info("Geography object coordinate lifecycle changed",
		zap.String("action", action),
		zap.Int64("id", *id),
		zap.String("username", username))
	return nil
}

// addLink проверяет участников, отсутствие активного дубля и сохраняет связь в рамках uow
func addLink(
	ctx context.Context,
	uow repository.UnitOfWork,
	object *domain.GeographyObject,
	coordinate *domain.Coordinate,
	zoom *int,
	username string,
	at time.Time,
) (int64, error) {
	link, err := domain.NewGeographyObjectCoordinate(object, coordinate, zoom, username, at)
	if err != nil {
		return 0, err
	}

	exists, err := uow.GeographyObjectCoordinates().ExistsActive(ctx, object.ID, coordinate.ID, 0)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errors.ErrExistsGeographyObjectCoordinate
	}

	return uow.GeographyObjectCoordinates().Create(ctx, &link)
}

func toGeographyObjectCoordinateItems(links []domain.GeographyObjectCoordinate) []dto.GeographyObjectCoordinateItem {
	items := make([]dto.GeographyObjectCoordinateItem, 0, len(links))
	for _, l := range links {
		items = append(items, toGeographyObjectCoordinateItem(l))
	}
	return items
}
