package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 3 * time.Second

// HealthChecker - зависимость, проверяемая в /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler проверяет доступность зависимостей сервиса
type HealthHandler struct {
	checkers map[string]HealthChecker
	logger   *zap.Logger
}

// NewHealthHandler создает новый экземпляр HealthHandler
func NewHealthHandler(checkers map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		logger:   logger,
	}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthCheckTimeout)
	defer cancel()

	status := fiber.StatusOK
	components := make(fiber.Map, len(h.checkers))
	for name, checker := range h.checkers {
		if err := checker.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("component", name), zap.Error(err))
			components[name] = "unhealthy"
			status = fiber.StatusServiceUnavailable
			continue
		}
		components[name] = "healthy"
	}

	result := "healthy"
	if status != fiber.StatusOK {
		result = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":     result,
		"components": components,
		"time":       time.Now().UTC(),
	})
}
