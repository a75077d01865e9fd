package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/domain/repository"
	"github.com/geography-microservice/internal/pkg/errors"
	"github.com/geography-microservice/internal/pkg/metrics"
	"github.com/geography-microservice/internal/usecase/dto"
)

// UpgradeUseCase заменяет полигон объекта новой версией координаты.
// Старая связь закрывается, старая координата остаётся в истории.
type UpgradeUseCase struct {
	txManager repository.TxManager
	listCache ListCacheInvalidator
	logger    *zap.Logger
}

// NewUpgradeUseCase создает новый экземпляр UpgradeUseCase
func NewUpgradeUseCase(txManager repository.TxManager, listCache ListCacheInvalidator, logger *zap.Logger) *UpgradeUseCase {
	return &UpgradeUseCase{
		txManager: txManager,
		listCache: listCache,
		logger:    logger,
	}
}

// Upgrade возвращает идентификатор новой связи
func (uc *UpgradeUseCase) Upgrade(ctx context.Context, req *dto.UpgradeGeographyObjectCoordinateRequest, username string) (int64, error) {
	id, err := uc.upgrade(ctx, req, username)
	if err != nil {
		code := "UNKNOWN"
		if appErr, ok := errors.As(err); ok {
			code = appErr.Code
		}
		metrics.UpgradesTotal.WithLabelValues(metrics.OutcomeError, code).Inc()
		uc.logger.Warn("Geography object coordinate upgrade failed", zap.Error(err))
		return 0, err
	}

	metrics.UpgradesTotal.WithLabelValues(metrics.OutcomeSuccess, "").Inc()
	uc.listCache.InvalidateListCache(ctx)
	uc.logger.Info("Geography object coordinate upgraded",
		zap.Int64("geography_object_id", *req.GeographyObjectID),
		zap.Int64("coordinate_id", *req.CoordinateID),
		zap.Int64("id", id),
		zap.String("username", username))
	return id, nil
}

func (uc *UpgradeUseCase) upgrade(ctx context.Context, req *dto.UpgradeGeographyObjectCoordinateRequest, username string) (int64, error) {
	if req == nil {
		return 0, errors.ErrEmptyRequest
	}
	if req.GeographyObjectID == nil {
		return 0, errors.ErrEmptyGeographyObjectID
	}
	if req.CoordinateID == nil {
		return 0, errors.ErrEmptyCoordinateID
	}
	polygon, err := domain.ParsePolygon(req.Coordinates)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context, uow repository.UnitOfWork) error {
		now := time.Now().UTC()

		object, err := uow.GeographyObjects().GetByID(ctx, *req.GeographyObjectID)
		if err != nil {
			return err
		}

		coordinate, err := uow.Coordinates().GetByID(ctx, *req.CoordinateID)
		if err != nil {
			return err
		}

		if object.Lifecycle.IsClosed() {
			return errors.ErrDeletedGeographyObject
		}

		successor, err := coordinate.Successor(polygon, username, now)
		if err != nil {
			return err
		}

		// блокировка строки связи упорядочивает одновременные замены
		link, err := uow.GeographyObjectCoordinates().LockByObjectAndCoordinate(ctx, object.ID, coordinate.ID)
		if err != nil {
			return err
		}

		closed, err := link.Close(now, username)
		if err != nil {
			return err
		}
		if err := uow.GeographyObjectCoordinates().UpdateLifecycle(ctx, &closed); err != nil {
			return err
		}

		newCoordinateID, err := uow.Coordinates().Create(ctx, &successor)
		if err != nil {
			return err
		}

		created, err := uow.Coordinates().GetByID(ctx, newCoordinateID)
		if err != nil {
			return err
		}

		zoom := link.Zoom
		id, err = addLink(ctx, uow, object, created, &zoom, username, now)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
