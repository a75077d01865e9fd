package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/pkg/errors"
	"github.com/geography-microservice/internal/usecase"
	"github.com/geography-microservice/internal/usecase/dto"
)

var createdAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func activeObject(id int64) *domain.GeographyObject {
	return &domain.GeographyObject{
		ID:        id,
		Alias:     "eurasia",
		Name:      "Евразия",
		TypeID:    1,
		Audit:     domain.NewAudit("seed", createdAt),
		Lifecycle: domain.Active(),
	}
}

func activeCoordinate(id int64, coordinates [][][]float64) *domain.Coordinate {
	typeID := int64(1)
	return &domain.Coordinate{
		ID:        id,
		Polygon:   mustPolygon(coordinates),
		TypeID:    &typeID,
		Type:      &domain.CoordinateType{ID: typeID, Alias: "country", Name: "Страна", Lifecycle: domain.Active()},
		IsSystem:  true,
		Audit:     domain.NewAudit("seed", createdAt),
		Lifecycle: domain.Active(),
	}
}

func activeLink(id, objectID, coordinateID int64, zoom int) *domain.GeographyObjectCoordinate {
	return &domain.GeographyObjectCoordinate{
		ID:                id,
		GeographyObjectID: objectID,
		CoordinateID:      coordinateID,
		Center:            domain.Point{X: 5, Y: 5},
		Area:              100,
		Zoom:              zoom,
		Audit:             domain.NewAudit("seed", createdAt),
		Lifecycle:         domain.Active(),
	}
}

type upgradeFixture struct {
	uc    *usecase.UpgradeUseCase
	tx    *fakeTxManager
	uow   *fakeUnitOfWork
	cache *spyInvalidator
}

func newUpgradeFixture() *upgradeFixture {
	uow := newFakeUnitOfWork()
	tx := &fakeTxManager{uow: uow}
	cache := &spyInvalidator{}
	return &upgradeFixture{
		uc:    usecase.NewUpgradeUseCase(tx, cache, zap.NewNop()),
		tx:    tx,
		uow:   uow,
		cache: cache,
	}
}

// assertNoWrites checks that nothing was persisted
func (f *upgradeFixture) assertNoWrites(t *testing.T) {
	t.Helper()
	f.uow.coordinates.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.uow.links.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.uow.links.AssertNotCalled(t, "UpdateLifecycle", mock.Anything, mock.Anything)
	assert.Equal(t, 0, f.cache.count())
}

func upgradeRequest(objectID, coordinateID int64, coordinates [][][]float64) *dto.UpgradeGeographyObjectCoordinateRequest {
	return &dto.UpgradeGeographyObjectCoordinateRequest{
		GeographyObjectID: int64Ptr(objectID),
		CoordinateID:      int64Ptr(coordinateID),
		Coordinates:       coordinates,
	}
}

func TestUpgradeUseCase_Upgrade_Success(t *testing.T) {
	ctx := context.Background()
	f := newUpgradeFixture()

	oldPolygon := square(0, 0, 10)
	newPolygon := square(0, 0, 12)
	oldLink := activeLink(7, 1, 2, 5)

	f.uow.objects.On("GetByID", mock.Anything, int64(1)).Return(activeObject(1), nil)
	f.uow.coordinates.On("GetByID", mock.Anything, int64(2)).Return(activeCoordinate(2, oldPolygon), nil)
	f.uow.links.On("LockByObjectAndCoordinate", mock.Anything, int64(1), int64(2)).Return(oldLink, nil)

	var closedLink *domain.GeographyObjectCoordinate
	f.uow.links.On("UpdateLifecycle", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { closedLink = args.Get(1).(*domain.GeographyObjectCoordinate) }).
		Return(nil)

	var successor *domain.Coordinate
	f.uow.coordinates.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { successor = args.Get(1).(*domain.Coordinate) }).
		Return(int64(101), nil)
	f.uow.coordinates.On("GetByID", mock.Anything, int64(101)).Return(activeCoordinate(101, newPolygon), nil)
	f.uow.links.On("ExistsActive", mock.Anything, int64(1), int64(101), int64(0)).Return(false, nil)

	var newLink *domain.GeographyObjectCoordinate
	f.uow.links.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { newLink = args.Get(1).(*domain.GeographyObjectCoordinate) }).
		Return(int64(55), nil)

	id, err := f.uc.Upgrade(ctx, upgradeRequest(1, 2, newPolygon), "editor")

	require.NoError(t, err)
	assert.Equal(t, int64(55), id)
	assert.Equal(t, 1, f.tx.commits)

	// old link is closed, not removed
	require.NotNil(t, closedLink)
	assert.Equal(t, int64(7), closedLink.ID)
	assert.True(t, closedLink.Lifecycle.IsClosed())
	assert.Equal(t, "editor", closedLink.Audit.UsernameUpdate)
	assert.True(t, oldLink.Lifecycle.IsActive(), "source value must not be mutated")

	// successor keeps the type and takes the new polygon
	require.NotNil(t, successor)
	assert.Equal(t, int64(0), successor.ID)
	require.NotNil(t, successor.TypeID)
	assert.Equal(t, int64(1), *successor.TypeID)
	assert.False(t, successor.IsSystem)
	assert.True(t, successor.Polygon.Equal(mustPolygon(newPolygon)))
	assert.True(t, successor.Lifecycle.IsActive())

	// new link points at the new coordinate with the old zoom
	require.NotNil(t, newLink)
	assert.Equal(t, int64(1), newLink.GeographyObjectID)
	assert.Equal(t, int64(101), newLink.CoordinateID)
	assert.NotEqual(t, int64(2), newLink.CoordinateID)
	assert.Equal(t, 5, newLink.Zoom)
	assert.True(t, newLink.Lifecycle.IsActive())

	assert.Equal(t, 1, f.cache.count())
	f.uow.objects.AssertExpectations(t)
	f.uow.coordinates.AssertExpectations(t)
	f.uow.links.AssertExpectations(t)
}

func TestUpgradeUseCase_Upgrade_RequestValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  *dto.UpgradeGeographyObjectCoordinateRequest
		want error
	}{
		{
			name: "nil request",
			req:  nil,
			want: errors.ErrEmptyRequest,
		},
		{
			name: "all fields missing",
			req:  &dto.UpgradeGeographyObjectCoordinateRequest{},
			want: errors.ErrEmptyGeographyObjectID,
		},
		{
			name: "missing coordinate id",
			req:  &dto.UpgradeGeographyObjectCoordinateRequest{GeographyObjectID: int64Ptr(1)},
			want: errors.ErrEmptyCoordinateID,
		},
		{
			name: "missing coordinates",
			req:  upgradeRequest(1, 2, nil),
			want: errors.ErrEmptyCoordinates,
		},
		{
			name: "open ring",
			req: upgradeRequest(1, 2, [][][]float64{{
				{0, 0}, {1, 0}, {1, 1}, {0, 1},
			}}),
			want: errors.ErrIncorrectCoordinates,
		},
		{
			name: "point with three numbers",
			req: upgradeRequest(1, 2, [][][]float64{{
				{0, 0, 0}, {1, 0}, {1, 1}, {0, 0},
			}}),
			want: errors.ErrIncorrectCoordinates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUpgradeFixture()

			id, err := f.uc.Upgrade(ctx, tt.req, "editor")

			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, id)
			assert.Equal(t, 0, f.tx.calls, "validation happens before the transaction")
			f.assertNoWrites(t)
		})
	}
}

func TestUpgradeUseCase_Upgrade_Preconditions(t *testing.T) {
	ctx := context.Background()
	polygon := square(0, 0, 10)
	newPolygon := square(1, 1, 10)

	t.Run("object not found", func(t *testing.T) {
		f := newUpgradeFixture()
		f.uow.objects.On("GetByID", mock.Anything, int64(9)).Return(nil, errors.ErrNotFoundGeographyObject)

		_, err := f.uc.Upgrade(ctx, upgradeRequest(9, 2, newPolygon), "editor")

		assert.ErrorIs(t, err, errors.ErrNotFoundGeographyObject)
		assert.Equal(t, 1, f.tx.rollbacks)
		f.assertNoWrites(t)
	})

	t.Run("coordinate not found", func(t *testing.T) {
		f := newUpgradeFixture()
		f.uow.objects.On("GetByID", mock.Anything, int64(1)).Return(activeObject(1), nil)
		f.uow.coordinates.On("GetByID", mock.Anything, int64(9)).Return(nil, errors.ErrNotFoundCoordinate)

		_, err := f.uc.Upgrade(ctx, upgradeRequest(1, 9, newPolygon), "editor")

		assert.ErrorIs(t, err, errors.ErrNotFoundCoordinate)
		f.assertNoWrites(t)
	})

	t.Run("object deleted", func(t *testing.T) {
		f := newUpgradeFixture()
		object := activeObject(1)
		closed, err := object.Close(createdAt, "admin")
		require.NoError(t, err)

		f.uow.objects.On("GetByID", mock.Anything, int64(1)).Return(&closed, nil)
		f.uow.coordinates.On("GetByID", mock.Anything, int64(2)).Return(activeCoordinate(2, polygon), nil)

		_, err = f.uc.Upgrade(ctx, upgradeRequest(1, 2, newPolygon), "editor")

		assert.ErrorIs(t, err, errors.ErrDeletedGeographyObject)
		assert.Equal(t, errors.KindAlreadyDeleted, errors.KindOf(err))
		f.uow.links.AssertNotCalled(t, "LockByObjectAndCoordinate", mock.Anything, mock.Anything, mock.Anything)
		f.assertNoWrites(t)
	})

	t.Run("coordinate deleted", func(t *testing.T) {
		f := newUpgradeFixture()
		coordinate := activeCoordinate(2, polygon)
		closed, err := coordinate.Close(createdAt, "admin")
		require.NoError(t, err)

		f.uow.objects.On("GetByID", mock.Anything, int64(1)).Return(activeObject(1), nil)
		f.uow.coordinates.On("GetByID", mock.Anything, int64(2)).Return(&closed, nil)

		_, err = f.uc.Upgrade(ctx, upgradeRequest(1, 2, newPolygon), "editor")

		assert.ErrorIs(t, err, errors.ErrDeletedCoordinate)
		f.assertNoWrites(t)
	})

	t.Run("same polygon", func(t *testing.T) {
		f := newUpgradeFixture()
		f.uow.objects.On("GetByID", mock.Anything, int64(1)).Return(activeObject(1), nil)
		f.uow.coordinates.On("GetByID", mock.Anything, int64(2)).Return(activeCoordinate(2, polygon), nil)

		_, err := f.uc.Upgrade(ctx, upgradeRequest(1, 2, square(0, 0, 10)), "editor")

		assert.ErrorIs(t, err, errors.ErrNotChangesCoordinate)
		assert.Equal(t, errors.KindNoChange, errors.KindOf(err))
		f.assertNoWrites(t)
	})

	t.Run("link not found", func(t *testing.T) {
		f := newUpgradeFixture()
		f.uow.objects.On("GetByID", mock.Anything, int64(1)).Return(activeObject(1), nil)
		f.uow.coordinates.On("GetByID", mock.Anything, int64(2)).Return(activeCoordinate(2, polygon), nil)
		f.uow.links.On("LockByObjectAndCoordinate", mock.Anything, int64(1), int64(2)).
			Return(nil, errors.ErrNotFoundGeographyObjectCoordinate)

		_, err := f.uc.Upgrade(ctx, upgradeRequest(1, 2, newPolygon), "editor")

		assert.ErrorIs(t, err, errors.ErrNotFoundGeographyObjectCoordinate)
		f.assertNoWrites(t)
	})

	t.Run("link already closed by a concurrent upgrade", func(t *testing.T) {
		f := newUpgradeFixture()
		link := activeLink(7, 1, 2, 5)
		closed, err := link.Close(createdAt, "other")
		require.NoError(t, err)

		f.uow.objects.On("GetByID", mock.Anything, int64(1)).Return(activeObject(1), nil)
		f.uow.coordinates.On("GetByID", mock.Anything, int64(2)).Return(activeCoordinate(2, polygon), nil)
		f.uow.links.On("LockByObjectAndCoordinate", mock.Anything, int64(1), int64(2)).Return(&closed, nil)

		_, err = f.uc.Upgrade(ctx, upgradeRequest(1, 2, newPolygon), "editor")

		assert.ErrorIs(t, err, errors.ErrDeletedGeographyObjectCoordinate)
		f.assertNoWrites(t)
	})
}

func TestUpgradeUseCase_Upgrade_FailureAfterWritesRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newUpgradeFixture()

	f.uow.objects.On("GetByID", mock.Anything, int64(1)).Return(activeObject(1), nil)
	f.uow.coordinates.On("GetByID", mock.Anything, int64(2)).Return(activeCoordinate(2, square(0, 0, 10)), nil)
	f.uow.links.On("LockByObjectAndCoordinate", mock.Anything, int64(1), int64(2)).Return(activeLink(7, 1, 2, 5), nil)
	f.uow.links.On("UpdateLifecycle", mock.Anything, mock.Anything).Return(nil)
	f.uow.coordinates.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.ErrDatabaseError)

	_, err := f.uc.Upgrade(ctx, upgradeRequest(1, 2, square(0, 0, 12)), "editor")

	assert.ErrorIs(t, err, errors.ErrDatabaseError)
	assert.Equal(t, 1, f.tx.rollbacks)
	assert.Equal(t, 0, f.tx.commits)
	assert.Equal(t, 0, f.cache.count())
	f.uow.links.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
