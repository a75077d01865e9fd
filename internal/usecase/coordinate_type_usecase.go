package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain/repository"
	"github.com/geography-microservice/internal/usecase/dto"
)

// CoordinateTypeUseCase - компендиум типов координат
type CoordinateTypeUseCase struct {
	coordinateTypeRepo repository.CoordinateTypeRepository
	logger             *zap.Logger
}

// NewCoordinateTypeUseCase создает новый экземпляр CoordinateTypeUseCase
func NewCoordinateTypeUseCase(coordinateTypeRepo repository.CoordinateTypeRepository, logger *zap.Logger) *CoordinateTypeUseCase {
	return &CoordinateTypeUseCase{
		coordinateTypeRepo: coordinateTypeRepo,
		logger:             logger,
	}
}

func (uc *CoordinateTypeUseCase) GetList(ctx context.Context) ([]dto.CoordinateTypeItem, error) {
	types, err := uc.coordinateTypeRepo.GetList(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CoordinateTypeItem, 0, len(types))
	for i := range types {
		items = append(items, *toCoordinateTypeItem(&types[i]))
	}
	return items, nil
}
