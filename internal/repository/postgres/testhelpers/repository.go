package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain/repository"
	"github.com/geography-microservice/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewCoordinateRepositoryForTest creates a coordinate repository with test database and logger
func NewCoordinateRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CoordinateRepository {
	return postgres.NewCoordinateRepository(NewDBForTest(db, logger))
}

// NewGeographyObjectRepositoryForTest creates a geography object repository with test database and logger
func NewGeographyObjectRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.GeographyObjectRepository {
	return postgres.NewGeographyObjectRepository(NewDBForTest(db, logger))
}

// NewGeographyObjectCoordinateRepositoryForTest creates a link repository with test database and logger
func NewGeographyObjectCoordinateRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.GeographyObjectCoordinateRepository {
	return postgres.NewGeographyObjectCoordinateRepository(NewDBForTest(db, logger))
}

// NewTxManagerForTest creates a transaction manager with test database and logger
func NewTxManagerForTest(db *sqlx.DB, logger *zap.Logger) repository.TxManager {
	return postgres.NewTxManager(NewDBForTest(db, logger))
}
