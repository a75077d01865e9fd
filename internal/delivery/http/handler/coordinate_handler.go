package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/delivery/http/middleware"
	"github.com/geography-microservice/internal/pkg/errors"
	"github.com/geography-microservice/internal/pkg/utils"
	"github.com/geography-microservice/internal/usecase"
	"github.com/geography-microservice/internal/usecase/dto"
)

// CoordinateHandler обрабатывает запросы к координатам и их типам
type CoordinateHandler struct {
	coordinateUC     *usecase.CoordinateUseCase
	coordinateTypeUC *usecase.CoordinateTypeUseCase
	logger           *zap.Logger
}

// NewCoordinateHandler создает новый экземпляр CoordinateHandler
func NewCoordinateHandler(
	coordinateUC *usecase.CoordinateUseCase,
	coordinateTypeUC *usecase.CoordinateTypeUseCase,
	logger *zap.Logger,
) *CoordinateHandler {
	return &CoordinateHandler{
		coordinateUC:     coordinateUC,
		coordinateTypeUC: coordinateTypeUC,
		logger:           logger,
	}
}

// GetList godoc
// @Summary List coordinates
// @Description Возвращает активные координаты с полигонами
// @Tags Coordinates
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.CoordinateItem]
// @Failure 500 {object} utils.ErrorResponse
// @Router /coordinates/list [get]
func (h *CoordinateHandler) GetList(c *fiber.Ctx) error {
	items, err := h.coordinateUC.GetList(c.Context())
	if err != nil {
		h.logger.Error("Failed to get coordinates", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ListResponse[dto.CoordinateItem]{Success: true, Items: items})
}

// GetTypes godoc
// @Summary List coordinate types
// @Description Возвращает активные типы координат
// @Tags Coordinates
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.CoordinateTypeItem]
// @Failure 500 {object} utils.ErrorResponse
// @Router /coordinates_types/list [get]
func (h *CoordinateHandler) GetTypes(c *fiber.Ctx) error {
	items, err := h.coordinateTypeUC.GetList(c.Context())
	if err != nil {
		h.logger.Error("Failed to get coordinate types", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ListResponse[dto.CoordinateTypeItem]{Success: true, Items: items})
}

// Add godoc
// @Summary Add coordinate
// @Description Создает координату с полигоном и необязательным типом
// @Tags Coordinates
// @Accept json
// @Produce json
// @Param X-Username header string true "Логин пользователя"
// @Param request body dto.AddCoordinateRequest true "Координата"
// @Success 200 {object} dto.BaseResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /coordinates/add [post]
func (h *CoordinateHandler) Add(c *fiber.Ctx) error {
	req, err := parseBody[dto.AddCoordinateRequest](c)
	if err != nil {
		return utils.SendError(c, err)
	}

	id, err := h.coordinateUC.Add(c.Context(), req, middleware.GetUsername(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.BaseResponse{Success: true, ID: &id})
}

// Edit godoc
// @Summary Edit coordinate polygon
// @Description Заменяет полигон координаты; совпадающий полигон - ошибка
// @Tags Coordinates
// @Accept json
// @Produce json
// @Param X-Username header string true "Логин пользователя"
// @Param request body dto.EditCoordinateRequest true "Новый полигон"
// @Success 200 {object} dto.BaseResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /coordinates/edit [post]
func (h *CoordinateHandler) Edit(c *fiber.Ctx) error {
	req, err := parseBody[dto.EditCoordinateRequest](c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.coordinateUC.Edit(c.Context(), req, middleware.GetUsername(c)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.BaseResponse{Success: true, ID: req.ID})
}

// Close godoc
// @Summary Close coordinate
// @Tags Coordinates
// @Accept json
// @Produce json
// @Param X-Username header string true "Логин пользователя"
// @Param request body dto.IDRequest true "Идентификатор"
// @Success 200 {object} dto.BaseResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /coordinates/close [post]
func (h *CoordinateHandler) Close(c *fiber.Ctx) error {
	return handleIDCommand(c, h.coordinateUC.Close)
}

// Restore godoc
// @Summary Restore coordinate
// @Tags Coordinates
// @Accept json
// @Produce json
// @Param X-Username header string true "Логин пользователя"
// @Param request body dto.IDRequest true "Идентификатор"
// @Success 200 {object} dto.BaseResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /coordinates/restore [post]
func (h *CoordinateHandler) Restore(c *fiber.Ctx) error {
	return handleIDCommand(c, h.coordinateUC.Restore)
}

// idCommand - закрытие или восстановление сущности по идентификатору
type idCommand func(ctx context.Context, id *int64, username string) error

func handleIDCommand(c *fiber.Ctx, command idCommand) error {
	req, err := parseBody[dto.IDRequest](c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if req == nil {
		return utils.SendError(c, errors.ErrEmptyRequest)
	}

	if err := command(c.Context(), req.ID, middleware.GetUsername(c)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.BaseResponse{Success: true, ID: req.ID})
}
