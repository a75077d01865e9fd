package handler

import (
	"bytes"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/geography-microservice/internal/pkg/errors"
	"github.com/geography-microservice/internal/pkg/validator"
)

var jsonNull = []byte("null")

// parseBody разбирает и валидирует JSON тела; пустое тело и null дают nil без ошибки
func parseBody[T any](c *fiber.Ctx) (*T, error) {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || bytes.Equal(body, jsonNull) {
		return nil, nil
	}

	var req T
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.ErrInvalidRequest
	}
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// queryInt64 читает необязательный числовой параметр строки запроса
func queryInt64(c *fiber.Ctx, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"param": name})
	}
	return &value, nil
}
