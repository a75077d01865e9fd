package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain/repository"
)

// store - набор репозиториев поверх одного соединения или транзакции
type store struct {
	db     sqlx.ExtContext
	logger *zap.Logger
}

func (s *store) Coordinates() repository.CoordinateRepository {
	return newCoordinateRepository(s.db, s.logger)
}

func (s *store) CoordinateTypes() repository.CoordinateTypeRepository {
	return newCoordinateTypeRepository(s.db, s.logger)
}

func (s *store) GeographyObjects() repository.GeographyObjectRepository {
	return newGeographyObjectRepository(s.db, s.logger)
}

func (s *store) GeographyObjectTypes() repository.GeographyObjectTypeRepository {
	return newGeographyObjectTypeRepository(s.db, s.logger)
}

func (s *store) GeographyObjectCoordinates() repository.GeographyObjectCoordinateRepository {
	return newGeographyObjectCoordinateRepository(s.db, s.logger)
}

type txManager struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewTxManager создает менеджер транзакций READ COMMITTED
func NewTxManager(db *DB) repository.TxManager {
	return &txManager{
		db:     db.DB,
		logger: db.logger,
	}
}

// WithinTransaction выполняет fn в транзакции. Отмена контекста запроса не прерывает транзакцию:
// она либо фиксируется, либо откатывается целиком.
func (m *txManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, uow repository.UnitOfWork) error) error {
	ctx = context.WithoutCancel(ctx)

	tx, err := m.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		m.logger.Error("failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, &store{db: tx, logger: m.logger}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			m.logger.Error("failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		m.logger.Error("failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
