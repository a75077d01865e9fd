package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/domain/repository"
)

type apiLogRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewAPILogRepository создает репозиторий журнала запросов
func NewAPILogRepository(db *DB) repository.APILogRepository {
	return &apiLogRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *apiLogRepository) Create(ctx context.Context, log *domain.APILog) error {
	query := `
		INSERT INTO ` + tableAPILogs + ` (
			request_id, method, path, username, status_code, is_success, message,
			duration_ms, date_start, date_end, date_create, username_create
		)
		VALUES (
			:request_id, :method, :path, :username, :status_code, :is_success, :message,
			:duration_ms, :date_start, :date_end, now(), :username
		)`

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"request_id":  log.RequestID,
		"method":      log.Method,
		"path":        log.Path,
		"username":    log.Username,
		"status_code": log.StatusCode,
		"is_success":  log.Success,
		"message":     log.Message,
		"duration_ms": log.DurationMS,
		"date_start":  log.DateStart,
		"date_end":    log.DateEnd,
	})
	if err != nil {
		r.logger.Error("failed to create api log", zap.String("request_id", log.RequestID), zap.Error(err))
		return fmt.Errorf("create api log: %w", err)
	}
	return nil
}
