package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/pkg/errors"
	"github.com/geography-microservice/internal/usecase"
	"github.com/geography-microservice/internal/usecase/dto"
)

type linkFixture struct {
	uc       *usecase.GeographyObjectCoordinateUseCase
	linkRepo *MockGeographyObjectCoordinateRepository
	tx       *fakeTxManager
	uow      *fakeUnitOfWork
	cache    *spyInvalidator
}

func newLinkFixture() *linkFixture {
	uow := newFakeUnitOfWork()
	tx := &fakeTxManager{uow: uow}
	linkRepo := &MockGeographyObjectCoordinateRepository{}
	cache := &spyInvalidator{}
	return &linkFixture{
		uc:       usecase.NewGeographyObjectCoordinateUseCase(linkRepo, tx, cache, zap.NewNop()),
		linkRepo: linkRepo,
		tx:       tx,
		uow:      uow,
		cache:    cache,
	}
}

func addRequest(objectID, coordinateID int64, zoom int) *dto.AddGeographyObjectCoordinateRequest {
	return &dto.AddGeographyObjectCoordinateRequest{
		GeographyObjectID: int64Ptr(objectID),
		CoordinateID:      int64Ptr(coordinateID),
		Zoom:              intPtr(zoom),
	}
}

func TestGeographyObjectCoordinateUseCase_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newLinkFixture()
		f.uow.objects.On("GetByID", mock.Anything, int64(1)).Return(activeObject(1), nil)
		f.uow.coordinates.On("GetByID", mock.Anything, int64(2)).Return(activeCoordinate(2, square(0, 0, 10)), nil)
		f.uow.links.On("ExistsActive", mock.Anything, int64(1), int64(2), int64(0)).Return(false, nil)
		f.uow.links.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.GeographyObjectCoordinate) bool {
			return l.GeographyObjectID == 1 && l.CoordinateID == 2 && l.Zoom == 5 && l.Lifecycle.IsActive()
		})).Return(int64(10), nil)

		id, err := f.uc.Add(ctx, addRequest(1, 2, 5), "editor")

		require.NoError(t, err)
		assert.Equal(t, int64(10), id)
		assert.Equal(t, 1, f.cache.count())
		f.uow.links.AssertExpectations(t)
	})

	t.Run("duplicate active link is a conflict", func(t *testing.T) {
		f := newLinkFixture()
		f.uow.objects.On("GetByID", mock.Anything, int64(1)).Return(activeObject(1), nil)
		f.uow.coordinates.On("GetByID", mock.Anything, int64(2)).Return(activeCoordinate(2, square(0, 0, 10)), nil)
		f.uow.links.On("ExistsActive", mock.Anything, int64(1), int64(2), int64(0)).Return(false, nil).Once()
		f.uow.links.On("Create", mock.Anything, mock.Anything).Return(int64(10), nil).Once()
		f.uow.links.On("ExistsActive", mock.Anything, int64(1), int64(2), int64(0)).Return(true, nil).Once()

		first, err := f.uc.Add(ctx, addRequest(1, 2, 5), "editor")
		require.NoError(t, err)
		assert.Equal(t, int64(10), first)

		_, err = f.uc.Add(ctx, addRequest(1, 2, 5), "editor")
		assert.ErrorIs(t, err, errors.ErrExistsGeographyObjectCoordinate)
		assert.Equal(t, errors.KindConflict, errors.KindOf(err))
		f.uow.links.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("zoom boundaries", func(t *testing.T) {
		tests := []struct {
			zoom int
			ok   bool
		}{
			{zoom: 2, ok: false},
			{zoom: 3, ok: true},
			{zoom: 24, ok: true},
			{zoom: 25, ok: false},
		}

		for _, tt := range tests {
			f := newLinkFixture()
			f.uow.objects.On("GetByID", mock.Anything, int64(1)).Return(activeObject(1), nil)
			f.uow.coordinates.On("GetByID", mock.Anything, int64(2)).Return(activeCoordinate(2, square(0, 0, 10)), nil)
			f.uow.links.On("ExistsActive", mock.Anything, int64(1), int64(2), int64(0)).Return(false, nil)
			f.uow.links.On("Create", mock.Anything, mock.Anything).Return(int64(10), nil)

			_, err := f.uc.Add(ctx, addRequest(1, 2, tt.zoom), "editor")

			if tt.ok {
				assert.NoError(t, err, "zoom %d", tt.zoom)
			} else {
				assert.ErrorIs(t, err, errors.ErrIncorrectZoom, "zoom %d", tt.zoom)
				assert.Equal(t, errors.KindValidation, errors.KindOf(err))
				assert.Equal(t, 0, f.tx.calls)
			}
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newLinkFixture()

		_, err := f.uc.Add(ctx, nil, "editor")
		assert.ErrorIs(t, err, errors.ErrEmptyRequest)

		_, err = f.uc.Add(ctx, &dto.AddGeographyObjectCoordinateRequest{CoordinateID: int64Ptr(2), Zoom: intPtr(5)}, "editor")
		assert.ErrorIs(t, err, errors.ErrEmptyGeographyObjectID)

		_, err = f.uc.Add(ctx, &dto.AddGeographyObjectCoordinateRequest{GeographyObjectID: int64Ptr(1), Zoom: intPtr(5)}, "editor")
		assert.ErrorIs(t, err, errors.ErrEmptyCoordinateID)

		_, err = f.uc.Add(ctx, &dto.AddGeographyObjectCoordinateRequest{GeographyObjectID: int64Ptr(1), CoordinateID: int64Ptr(2)}, "editor")
		assert.ErrorIs(t, err, errors.ErrEmptyZoom)

		assert.Equal(t, 0, f.tx.calls)
	})

	t.Run("closed coordinate", func(t *testing.T) {
		f := newLinkFixture()
		closed, err := activeCoordinate(2, square(0, 0, 10)).Close(createdAt, "admin")
		require.NoError(t, err)
		f.uow.objects.On("GetByID", mock.Anything, int64(1)).Return(activeObject(1), nil)
		f.uow.coordinates.On("GetByID", mock.Anything, int64(2)).Return(&closed, nil)

		_, err = f.uc.Add(ctx, addRequest(1, 2, 5), "editor")

		assert.ErrorIs(t, err, errors.ErrDeletedCoordinate)
		f.uow.links.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Equal(t, 0, f.cache.count())
	})
}

func TestGeographyObjectCoordinateUseCase_CloseRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("close active link", func(t *testing.T) {
		f := newLinkFixture()
		f.uow.links.On("GetByID", mock.Anything, int64(7)).Return(activeLink(7, 1, 2, 5), nil)
		f.uow.links.On("UpdateLifecycle", mock.Anything, mock.MatchedBy(func(l *domain.GeographyObjectCoordinate) bool {
			return l.ID == 7 && l.Lifecycle.IsClosed()
		})).Return(nil)

		err := f.uc.Close(ctx, int64Ptr(7), "editor")

		require.NoError(t, err)
		assert.Equal(t, 1, f.cache.count())
		f.uow.links.AssertExpectations(t)
	})

	t.Run("close closed link", func(t *testing.T) {
		f := newLinkFixture()
		closed, err := activeLink(7, 1, 2, 5).Close(createdAt, "admin")
		require.NoError(t, err)
		f.uow.links.On("GetByID", mock.Anything, int64(7)).Return(&closed, nil)

		err = f.uc.Close(ctx, int64Ptr(7), "editor")

		assert.ErrorIs(t, err, errors.ErrDeletedGeographyObjectCoordinate)
		f.uow.links.AssertNotCalled(t, "UpdateLifecycle", mock.Anything, mock.Anything)
	})

	t.Run("restore active link", func(t *testing.T) {
		f := newLinkFixture()
		f.uow.links.On("GetByID", mock.Anything, int64(7)).Return(activeLink(7, 1, 2, 5), nil)

		err := f.uc.Restore(ctx, int64Ptr(7), "editor")

		assert.ErrorIs(t, err, errors.ErrNotDeletedGeographyObjectCoordinate)
	})

	t.Run("restore while another active link exists", func(t *testing.T) {
		f := newLinkFixture()
		closed, err := activeLink(7, 1, 2, 5).Close(createdAt, "admin")
		require.NoError(t, err)
		f.uow.links.On("GetByID", mock.Anything, int64(7)).Return(&closed, nil)
		f.uow.links.On("ExistsActive", mock.Anything, int64(1), int64(2), int64(7)).Return(true, nil)

		err = f.uc.Restore(ctx, int64Ptr(7), "editor")

		assert.ErrorIs(t, err, errors.ErrExistsGeographyObjectCoordinate)
		f.uow.links.AssertNotCalled(t, "UpdateLifecycle", mock.Anything, mock.Anything)
	})

	t.Run("restore closed link", func(t *testing.T) {
		f := newLinkFixture()
		closed, err := activeLink(7, 1, 2, 5).Close(createdAt, "admin")
		require.NoError(t, err)
		f.uow.links.On("GetByID", mock.Anything, int64(7)).Return(&closed, nil)
		f.uow.links.On("ExistsActive", mock.Anything, int64(1), int64(2), int64(7)).Return(false, nil)
		f.uow.links.On("UpdateLifecycle", mock.Anything, mock.MatchedBy(func(l *domain.GeographyObjectCoordinate) bool {
			return l.ID == 7 && l.Lifecycle.IsActive()
		})).Return(nil)

		err = f.uc.Restore(ctx, int64Ptr(7), "editor")

		require.NoError(t, err)
		f.uow.links.AssertExpectations(t)
	})

	t.Run("missing id", func(t *testing.T) {
		f := newLinkFixture()
		assert.ErrorIs(t, f.uc.Close(ctx, nil, "editor"), errors.ErrEmptyID)
		assert.ErrorIs(t, f.uc.Restore(ctx, nil, "editor"), errors.ErrEmptyID)
	})
}

func TestGeographyObjectCoordinateUseCase_GetListByObject(t *testing.T) {
	ctx := context.Background()

	t.Run("largest link sets center and zoom", func(t *testing.T) {
		f := newLinkFixture()
		object := activeObject(1)
		coordinate := activeCoordinate(2, square(0, 0, 10))
		coordinate.Type.BackgroundColor = "#ffffff"
		coordinate.Type.BorderColor = "#000000"

		large := activeLink(7, 1, 2, 5)
		large.Center = domain.Point{X: 5, Y: 5}
		large.GeographyObject = object
		large.Coordinate = coordinate

		small := activeLink(8, 1, 3, 9)
		small.Area = 1
		small.Center = domain.Point{X: 20.5, Y: 20.5}
		small.GeographyObject = object
		small.Coordinate = activeCoordinate(3, square(20, 20, 1))

		f.linkRepo.On("GetListByGeographyObject", ctx, int64(1)).
			Return([]domain.GeographyObjectCoordinate{*large, *small}, nil)

		resp, err := f.uc.GetListByObject(ctx, int64Ptr(1))

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "Евразия", resp.Name)
		assert.Equal(t, []float64{5, 5}, resp.Center)
		assert.Equal(t, 5, resp.Zoom)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, int64(7), resp.Items[0].ID)
		assert.Equal(t, int64(2), resp.Items[0].CoordinateID)
		assert.Equal(t, square(0, 0, 10), resp.Items[0].Coordinates)
		assert.Equal(t, "#ffffff", resp.Items[0].BackgroundColor)
		assert.Equal(t, "#000000", resp.Items[0].BorderColor)
	})

	t.Run("no links", func(t *testing.T) {
		f := newLinkFixture()
		f.linkRepo.On("GetListByGeographyObject", ctx, int64(4)).Return([]domain.GeographyObjectCoordinate{}, nil)

		_, err := f.uc.GetListByObject(ctx, int64Ptr(4))

		assert.ErrorIs(t, err, errors.ErrNotFoundGeographyObjectCoordinate)
	})

	t.Run("zero object id", func(t *testing.T) {
		f := newLinkFixture()

		_, err := f.uc.GetListByObject(ctx, int64Ptr(0))
		assert.ErrorIs(t, err, errors.ErrEmptyGeographyObjectID)

		_, err = f.uc.GetListByGeographyObject(ctx, nil)
		assert.ErrorIs(t, err, errors.ErrEmptyGeographyObjectID)
		f.linkRepo.AssertNotCalled(t, "GetListByGeographyObject", mock.Anything, mock.Anything)
	})
}

func TestGeographyObjectCoordinateUseCase_GetListByGeographyObject(t *testing.T) {
	ctx := context.Background()
	f := newLinkFixture()

	f.linkRepo.On("GetListByGeographyObject", ctx, int64(1)).
		Return([]domain.GeographyObjectCoordinate{*activeLink(7, 1, 2, 5)}, nil)

	items, err := f.uc.GetListByGeographyObject(ctx, int64Ptr(1))

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, dto.GeographyObjectCoordinateItem{
		ID:                7,
		GeographyObjectID: 1,
		CoordinateID:      2,
		Center:            []float64{5, 5},
		Area:              100,
		Zoom:              5,
	}, items[0])
}
