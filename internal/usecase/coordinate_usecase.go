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

// CoordinateUseCase - версии полигонов: создание, правка, закрытие и восстановление
type CoordinateUseCase struct {
	coordinateRepo repository.CoordinateRepository
	txManager      repository.TxManager
	listCache      ListCacheInvalidator
	logger         *zap.Logger
}

// NewCoordinateUseCase создает новый экземпляр CoordinateUseCase
func NewCoordinateUseCase(
	coordinateRepo repository.CoordinateRepository,
	txManager repository.TxManager,
	listCache ListCacheInvalidator,
	logger *zap.Logger,
) *CoordinateUseCase {
	return &CoordinateUseCase{
		coordinateRepo: coordinateRepo,
		txManager:      txManager,
		listCache:      listCache,
		logger:         logger,
	}
}

func (uc *CoordinateUseCase) GetByID(ctx context.Context, id *int64) (*dto.CoordinateItem, error) {
	if id == nil {
		return nil, errors.ErrEmptyID
	}

	coordinate, err := uc.coordinateRepo.GetByID(ctx, *id)
	if err != nil {
		return nil, err
	}

	item := toCoordinateItem(*coordinate)
	return &item, nil
}

// GetList возвращает активные координаты
func (uc *CoordinateUseCase) GetList(ctx context.Context) ([]dto.CoordinateItem, error) {
	coordinates, err := uc.coordinateRepo.GetList(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CoordinateItem, 0, len(coordinates))
	for _, c := range coordinates {
		items = append(items, toCoordinateItem(c))
	}
	return items, nil
}

// Add создает координату; тип, если указан, должен существовать и быть активным
func (uc *CoordinateUseCase) Add(ctx context.Context, req *dto.AddCoordinateRequest, username string) (int64, error) {
	if req == nil {
		return 0, errors.ErrEmptyRequest
	}

	polygon, err := domain.ParsePolygon(req.Coordinates)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context, uow repository.UnitOfWork) error {
		var coordinateType *domain.CoordinateType
		if req.TypeID != nil {
			coordinateType, err = uow.CoordinateTypes().GetByID(ctx, *req.TypeID)
			if err != nil {
				return err
			}
		}

		coordinate, err := domain.NewCoordinate(polygon, coordinateType, username, time.Now().UTC())
		if err != nil {
			return err
		}

		id, err = uow.Coordinates().Create(ctx, &coordinate)
		return err
	})
	if err != nil {
		uc.logger.Warn("Failed to add coordinate", zap.Error(err))
		return 0, err
	}

	uc.logger.Info("Coordinate added", zap.Int64("id", id), zap.String("username", username))
	return id, nil
}

// Edit заменяет полигон координаты на месте. Совпадающий полигон - ошибка NoChange.
func (uc *CoordinateUseCase) Edit(ctx context.Context, req *dto.EditCoordinateRequest, username string) error {
	if req == nil {
		return errors.ErrEmptyRequest
	}
	if req.ID == nil {
		return errors.ErrEmptyID
	}

	polygon, err := domain.ParsePolygon(req.Coordinates)
	if err != nil {
		return err
	}

	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context, uow repository.UnitOfWork) error {
		coordinate, err := uow.Coordinates().GetByID(ctx, *req.ID)
		if err != nil {
			return err
		}

		edited, err := coordinate.WithPolygon(polygon, time.Now().UTC(), username)
		if err != nil {
			return err
		}

		return uow.Coordinates().UpdatePolygon(ctx, &edited)
	})
	if err != nil {
		uc.logger.Warn("Failed to edit coordinate", zap.Int64("id", *req.ID), zap.Error(err))
		return err
	}

	uc.listCache.InvalidateListCache(ctx)
	uc.logger.Info("Coordinate edited", zap.Int64("id", *req.ID), zap.String("username", username))
	return nil
}

func (uc *CoordinateUseCase) Close(ctx context.Context, id *int64, username string) error {
	return uc.changeLifecycle(ctx, id, username, "close", func(c domain.Coordinate, at time.Time) (domain.Coordinate, error) {
		return c.Close(at, username)
	})
}

func (uc *CoordinateUseCase) Restore(ctx context.Context, id *int64, username string) error {
	return uc.changeLifecycle(ctx, id, username, "restore", func(c domain.Coordinate, at time.Time) (domain.Coordinate, error) {
		return c.Restore(at, username)
	})
}

func (uc *CoordinateUseCase) changeLifecycle(
	ctx context.Context,
	id *int64,
	username, action string,
	transition func(domain.Coordinate, time.Time) (domain.Coordinate, error),
) error {
	if id == nil {
		return errors.ErrEmptyID
	}

	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context, uow repository.UnitOfWork) error {
		coordinate, err := uow.Coordinates().GetByID(ctx, *id)
		if err != nil {
			return err
		}

		next, err := transition(*coordinate, time.Now().UTC())
		if err != nil {
			return err
		}

		return uow.Coordinates().UpdateLifecycle(ctx, &next)
	})
	if err != nil {
		uc.logger.Warn("Failed to change coordinate lifecycle",
			zap.String("action", action),
			zap.Int64("id", *id),
			zap.Error(err))
		return err
	}

	uc.listCache.InvalidateListCache(ctx)
	uc.logger.Info("Coordinate lifecycle changed",
		zap.String("action", action),
		zap.Int64("id", *id),
		zap.String("username", username))
	return nil
}
