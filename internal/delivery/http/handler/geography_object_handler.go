package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/pkg/errors"
	"github.com/geography-microservice/internal/pkg/utils"
	"github.com/geography-microservice/internal/pkg/validator"
	"github.com/geography-microservice/internal/usecase"
	"github.com/geography-microservice/internal/usecase/dto"
)

// GeographyObjectHandler обрабатывает запросы к географическим объектам
type GeographyObjectHandler struct {
	objectUC *usecase.GeographyObjectUseCase
	logger   *zap.Logger
}

// NewGeographyObjectHandler создает новый экземпляр GeographyObjectHandler
func NewGeographyObjectHandler(objectUC *usecase.GeographyObjectUseCase, logger *zap.Logger) *GeographyObjectHandler {
	return &GeographyObjectHandler{
		objectUC: objectUC,
		logger:   logger,
	}
}

// GetList godoc
// @Summary List geography objects
// @Description Возвращает активные географические объекты с фильтрами
// @Tags GeographyObjects
// @Produce json
// @Param has_coordinates query bool false "Только объекты с активными координатами (true) или без них (false)"
// @Param type_id query int false "Тип объекта"
// @Param type_ids query string false "Типы объектов через запятую"
// @Success 200 {object} dto.ListResponse[dto.GeographyObjectItem]
// @Failure 400 {object} utils.ErrorResponse
// @Router /geography_objects/list [get]
func (h *GeographyObjectHandler) GetList(c *fiber.Ctx) error {
	var query dto.GeographyObjectListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&query); err != nil {
		return utils.SendError(c, err)
	}

	items, err := h.objectUC.GetList(c.Context(), query)
	if err != nil {
		h.logger.Error("Failed to get geography objects", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ListResponse[dto.GeographyObjectItem]{Success: true, Items: items})
}

// GetListWithCoordinates godoc
// @Summary List geography objects with polygons
// @Description Объекты указанных типов со всеми активными полигонами; ответ кешируется
// @Tags GeographyObjects
// @Produce json
// @Param type_ids query string false "Типы объектов через запятую"
// @Success 200 {object} dto.ListResponse[dto.GeographyObjectWithCoordinatesItem]
// @Failure 400 {object} utils.ErrorResponse
// @Router /geography_objects/list_with_coordinates [get]
func (h *GeographyObjectHandler) GetListWithCoordinates(c *fiber.Ctx) error {
	var query dto.GeographyObjectListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&query); err != nil {
		return utils.SendError(c, err)
	}

	items, err := h.objectUC.GetListWithCoordinates(c.Context(), query.TypeIDs)
	if err != nil {
		h.logger.Error("Failed to get geography objects with coordinates", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ListResponse[dto.GeographyObjectWithCoordinatesItem]{Success: true, Items: items})
}

// GetTypes godoc
// @Summary List geography object types
// @Tags GeographyObjects
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.GeographyObjectTypeItem]
// @Failure 500 {object} utils.ErrorResponse
// @Router /geography_objects_types/list [get]
func (h *GeographyObjectHandler) GetTypes(c *fiber.Ctx) error {
	items, err := h.objectUC.GetTypes(c.Context())
	if err != nil {
		h.logger.Error("Failed to get geography object types", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ListResponse[dto.GeographyObjectTypeItem]{Success: true, Items: items})
}

// Close godoc
// @Summary Close geography object
// @Tags GeographyObjects
// @Accept json
// @Produce json
// @Param X-Username header string true "Логин пользователя"
// @Param request body dto.IDRequest true "Идентификатор"
// @Success 200 {object} dto.BaseResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /geography_objects/close [post]
func (h *GeographyObjectHandler) Close(c *fiber.Ctx) error {
	return handleIDCommand(c, h.objectUC.Close)
}

// Restore godoc
// @Summary Restore geography object
// @Tags GeographyObjects
// @Accept json
// @Produce json
// @Param X-Username header string true "Логин пользователя"
// @Param request body dto.IDRequest true "Идентификатор"
// @Success 200 {object} dto.BaseResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /geography_objects/restore [post]
func (h *GeographyObjectHandler) Restore(c *fiber.Ctx) error {
	return handleIDCommand(c, h.objectUC.Restore)
}
