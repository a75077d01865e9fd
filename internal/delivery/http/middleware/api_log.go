package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/domain"
	"github.com/geography-microservice/internal/domain/repository"
	"github.com/geography-microservice/internal/pkg/utils"
)

const apiLogPublishTimeout = 2 * time.Second

// APILog - middleware журнала запросов: после ответа публикует запись в поток Redis.
// Публикация асинхронная, ошибки только логируются.
func APILog(publisher repository.StreamRepository, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now().UTC()
		err := c.Next()
		end := time.Now().UTC()

		status := c.Response().StatusCode()
		entry := &domain.APILog{
			RequestID:  GetRequestID(c),
			Method:     fiberutils.CopyString(c.Method()),
			Path:       fiberutils.CopyString(c.Path()),
			Username:   fiberutils.CopyString(c.Get(HeaderUsername)),
			StatusCode: status,
			Success:    err == nil && status < fiber.StatusBadRequest,
			DurationMS: end.Sub(start).Milliseconds(),
			DateStart:  start,
			DateEnd:    end,
		}
		if message, ok := c.Locals(utils.LocalsErrorMessage).(string); ok {
			entry.Message = message
		}

		// fiber переиспользует контекст запроса, поэтому запись собрана до запуска горутины
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), apiLogPublishTimeout)
			defer cancel()

			if pubErr := publisher.PublishToStream(ctx, domain.StreamAPILogs, entry); pubErr != nil {
				logger.Warn("Failed to publish API log",
					zap.String("request_id", entry.RequestID),
					zap.Error(pubErr))
			}
		}()

		return err
	}
}
