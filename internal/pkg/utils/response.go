package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/geography-microservice/internal/pkg/errors"
)

// LocalsErrorMessage - ключ locals с текстом ошибки ответа (читает журнал запросов)
const LocalsErrorMessage = "error_message"

// ErrorResponse - ответ с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// SendError отвечает статусом AppError; прочие ошибки скрываются за общим сообщением 500
func SendError(c *fiber.Ctx, err error) error {
	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.ErrInternalServer
	}

	c.Locals(LocalsErrorMessage, appErr.Message)
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Success: false,
		Message: appErr.Message,
	})
}
