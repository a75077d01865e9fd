package postgres

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type queryStartKey struct{}

// QueryHooks логирует время выполнения запросов: все на DEBUG, медленные на WARN
type QueryHooks struct {
	logger        *zap.Logger
	slowThreshold time.Duration
}

// NewQueryHooks создает хуки для sqlhooks.Wrap
func NewQueryHooks(logger *zap.Logger, slowThreshold time.Duration) *QueryHooks {
	if slowThreshold <= 0 {
		slowThreshold = 500 * time.Millisecond
	}
	return &QueryHooks{
		logger:        logger,
		slowThreshold: slowThreshold,
	}
}

func (h *QueryHooks) Before(ctx context.Context, query string, args ...interface{}) (context.Context, error) {
	return context.WithValue(ctx, queryStartKey{}, time.Now()), nil
}

func (h *QueryHooks) After(ctx context.Context, query string, args ...interface{}) (context.Context, error) {
	begin, ok := ctx.Value(queryStartKey{}).(time.Time)
	if !ok {
		return ctx, nil
	}

	took := time.Since(begin)
	if took > h.slowThreshold {
		h.logger.Warn("Slow SQL query",
			zap.String("query", query),
			zap.Int("args", len(args)),
			zap.Duration("took", took))
		return ctx, nil
	}

	h.logger.Debug("SQL query",
		zap.String("query", query),
		zap.Duration("took", took))
	return ctx, nil
}

// OnError логирует ошибки выполнения запросов
func (h *QueryHooks) OnError(ctx context.Context, err error, query string, args ...interface{}) error {
	h.logger.Debug("SQL query failed",
		zap.String("query", query),
		zap.Error(err))
	return err
}
