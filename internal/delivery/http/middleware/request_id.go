package middleware

import (
	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID - заголовок идентификатора запроса
	HeaderRequestID = "X-Request-ID"
	// LocalsRequestID - ключ locals с идентификатором запроса
	LocalsRequestID = "request_id"
)

// RequestID - middleware, присваивающий запросу идентификатор (входящий заголовок или новый uuid)
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := fiberutils.CopyString(c.Get(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(LocalsRequestID, requestID)
		c.Set(HeaderRequestID, requestID)
		return c.Next()
	}
}

// GetRequestID возвращает идентификатор текущего запроса
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalsRequestID).(string); ok {
		return id
	}
	return ""
}
