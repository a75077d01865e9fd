package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/domain/repository"
)

// MockCoordinateRepository is a mock implementation of repository.CoordinateRepository
type MockCoordinateRepository struct {
	mock.Mock
}

func (m *MockCoordinateRepository) GetByID(ctx context.Context, id int64) (*domain.Coordinate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coordinate), args.Error(1)
}

func (m *MockCoordinateRepository) GetList(ctx context.Context) ([]domain.Coordinate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Coordinate), args.Error(1)
}

func (m *MockCoordinateRepository) Create(ctx context.Context, coordinate *domain.Coordinate) (int64, error) {
	args := m.Called(ctx, coordinate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCoordinateRepository) UpdatePolygon(ctx context.Context, coordinate *domain.Coordinate) error {
	args := m.Called(ctx, coordinate)
	return args.Error(0)
}

func (m *MockCoordinateRepository) UpdateLifecycle(ctx context.Context, coordinate *domain.Coordinate) error {
	args := m.Called(ctx, coordinate)
	return args.Error(0)
}

// MockCoordinateTypeRepository is a mock implementation of repository.CoordinateTypeRepository
type MockCoordinateTypeRepository struct {
	mock.Mock
}

func (m *MockCoordinateTypeRepository) GetByID(ctx context.Context, id int64) (*domain.CoordinateType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoordinateType), args.Error(1)
}

func (m *MockCoordinateTypeRepository) GetList(ctx context.Context) ([]domain.CoordinateType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CoordinateType), args.Error(1)
}

// MockGeographyObjectRepository is a mock implementation of repository.GeographyObjectRepository
type MockGeographyObjectRepository struct {
	mock.Mock
}

func (m *MockGeographyObjectRepository) GetByID(ctx context.Context, id int64) (*domain.GeographyObject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeographyObject), args.Error(1)
}

func (m *MockGeographyObjectRepository) GetList(ctx context.Context, filter domain.GeographyObjectFilter) ([]domain.GeographyObject, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeographyObject), args.Error(1)
}

func (m *MockGeographyObjectRepository) UpdateLifecycle(ctx context.Context, object *domain.GeographyObject) error {
	args := m.Called(ctx, object)
	return args.Error(0)
}

// MockGeographyObjectTypeRepository is a mock implementation of repository.GeographyObjectTypeRepository
type MockGeographyObjectTypeRepository struct {
	mock.Mock
}

func (m *MockGeographyObjectTypeRepository) GetByID(ctx context.Context, id int64) (*domain.GeographyObjectType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeographyObjectType), args.Error(1)
}

func (m *MockGeographyObjectTypeRepository) GetList(ctx context.Context) ([]domain.GeographyObjectType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeographyObjectType), args.Error(1)
}

// MockGeographyObjectCoordinateRepository is a mock implementation of repository.GeographyObjectCoordinateRepository
type MockGeographyObjectCoordinateRepository struct {
	mock.Mock
}

func (m *MockGeographyObjectCoordinateRepository) GetByID(ctx context.Context, id int64) (*domain.GeographyObjectCoordinate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeographyObjectCoordinate), args.Error(1)
}

func (m *MockGeographyObjectCoordinateRepository) GetByObjectAndCoordinate(ctx context.Context, objectID, coordinateID int64) (*domain.GeographyObjectCoordinate, error) {
	args := m.Called(ctx, objectID, coordinateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeographyObjectCoordinate), args.Error(1)
}

func (m *MockGeographyObjectCoordinateRepository) LockByObjectAndCoordinate(ctx context.Context, objectID, coordinateID int64) (*domain.GeographyObjectCoordinate, error) {
	args := m.Called(ctx, objectID, coordinateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeographyObjectCoordinate), args.Error(1)
}

func (m *MockGeographyObjectCoordinateRepository) ExistsActive(ctx context.Context, objectID, coordinateID, excludeID int64) (bool, error) {
	args := m.Called(ctx, objectID, coordinateID, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGeographyObjectCoordinateRepository) GetList(ctx context.Context) ([]domain.GeographyObjectCoordinate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeographyObjectCoordinate), args.Error(1)
}

func (m *MockGeographyObjectCoordinateRepository) GetListByGeographyObject(ctx context.Context, objectID int64) ([]domain.GeographyObjectCoordinate, error) {
	args := m.Called(ctx, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeographyObjectCoordinate), args.Error(1)
}

func (m *MockGeographyObjectCoordinateRepository) GetActiveByGeographyObjectTypes(ctx context.Context, typeIDs []int64) ([]domain.GeographyObjectCoordinate, error) {
	args := m.Called(ctx, typeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeographyObjectCoordinate), args.Error(1)
}

func (m *MockGeographyObjectCoordinateRepository) Create(ctx context.Context, link *domain.GeographyObjectCoordinate) (int64, error) {
	args := m.Called(ctx, link)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGeographyObjectCoordinateRepository) UpdateLifecycle(ctx context.Context, link *domain.GeographyObjectCoordinate) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

// MockCacheRepository is a mock implementation of repository.CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) DeleteByPrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

// fakeUnitOfWork hands out the mocked repositories
type fakeUnitOfWork struct {
	coordinates     *MockCoordinateRepository
	coordinateTypes *MockCoordinateTypeRepository
	objects         *MockGeographyObjectRepository
	objectTypes     *MockGeographyObjectTypeRepository
	links           *MockGeographyObjectCoordinateRepository
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		coordinates:     &MockCoordinateRepository{},
		coordinateTypes: &MockCoordinateTypeRepository{},
		objects:         &MockGeographyObjectRepository{},
		objectTypes:     &MockGeographyObjectTypeRepository{},
		links:           &MockGeographyObjectCoordinateRepository{},
	}
}

func (u *fakeUnitOfWork) Coordinates() repository.CoordinateRepository { return u.coordinates }
func (u *fakeUnitOfWork) CoordinateTypes() repository.CoordinateTypeRepository {
	return u.coordinateTypes
}
func (u *fakeUnitOfWork) GeographyObjects() repository.GeographyObjectRepository { return u.objects }
func (u *fakeUnitOfWork) GeographyObjectTypes() repository.GeographyObjectTypeRepository {
	return u.objectTypes
}
func (u *fakeUnitOfWork) GeographyObjectCoordinates() repository.GeographyObjectCoordinateRepository {
	return u.links
}

// fakeTxManager runs the closure inline and records the outcome
type fakeTxManager struct {
	uow       *fakeUnitOfWork
	calls     int
	commits   int
	rollbacks int
}

func (f *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, uow repository.UnitOfWork) error) error {
	f.calls++
	if err := fn(ctx, f.uow); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

// spyInvalidator counts list cache invalidations
type spyInvalidator struct {
	mu    sync.Mutex
	calls int
}

func (s *spyInvalidator) InvalidateListCache(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
}

func (s *spyInvalidator) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// square builds a closed square ring from (x0,y0) with side size
func square(x0, y0, size float64) [][][]float64 {
	return [][][]float64{{
		{x0, y0},
		{x0 + size, y0},
		{x0 + size, y0 + size},
		{x0, y0 + size},
		{x0, y0},
	}}
}

func mustPolygon(coordinates [][][]float64) domain.Polygon {
	p, err := domain.ParsePolygon(coordinates)
	if err != nil {
		panic(err)
	}
	return p
}

func int64Ptr(v int64) *int64 { return &v }

func intPtr(v int) *int { return &v }
