package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"

	"github.com/geography-microservice/internal/pkg/errors"
	"github.com/geography-microservice/internal/pkg/utils"
)

const (
	// HeaderUsername - заголовок с логином пользователя, проставляется шлюзом
	HeaderUsername = "X-Username"
	// LocalsUsername - ключ locals с логином пользователя
	LocalsUsername = "username"
)

// Username - middleware для изменяющих запросов: без логина пользователя ответ 401
func Username() fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := strings.TrimSpace(fiberutils.CopyString(c.Get(HeaderUsername)))
		if username == "" {
			return utils.SendError(c, errors.ErrNotFoundCurrentUser)
		}
		c.Locals(LocalsUsername, username)
		return c.Next()
	}
}

// GetUsername возвращает логин пользователя текущего запроса
func GetUsername(c *fiber.Ctx) string {
	if username, ok := c.Locals(LocalsUsername).(string); ok {
		return username
	}
	return c.Get(HeaderUsername)
}
