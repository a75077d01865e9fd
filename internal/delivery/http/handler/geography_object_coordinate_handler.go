package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geography-microservice/internal/delivery/http/middleware"
	"github.com/geography-microservice/internal/pkg/utils"
	"github.com/geography-microservice/internal/usecase"
	"github.com/geography-microservice/internal/usecase/dto"
)

const queryGeographyObjectID = "geography_object_id"

// GeographyObjectCoordinateHandler обрабатывает запросы к связям объектов с координатами
type GeographyObjectCoordinateHandler struct {
	linkUC    *usecase.GeographyObjectCoordinateUseCase
	upgradeUC *usecase.UpgradeUseCase
	logger    *zap.Logger
}

// NewGeographyObjectCoordinateHandler создает новый экземпляр GeographyObjectCoordinateHandler
func NewGeographyObjectCoordinateHandler(
	linkUC *usecase.GeographyObjectCoordinateUseCase,
	upgradeUC *usecase.UpgradeUseCase,
	logger *zap.Logger,
) *GeographyObjectCoordinateHandler {
	return &GeographyObjectCoordinateHandler{
		linkUC:    linkUC,
		upgradeUC: upgradeUC,
		logger:    logger,
	}
}

// Upgrade godoc
// @Summary Upgrade geography object polygon
// @Description Закрывает текущую связь объекта с координатой, создает новую версию координаты
// @Description с переданным полигоном и привязывает ее к объекту с прежним масштабом
// @Tags GeographyObjectsCoordinates
// @Accept json
// @Produce json
// @Param X-Username header string true "Логин пользователя"
// @Param request body dto.UpgradeGeographyObjectCoordinateRequest true "Объект, координата и новый полигон"
// @Success 200 {object} dto.BaseResponse "Идентификатор новой связи"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /geography_objects_coordinates/upgrade [post]
func (h *GeographyObjectCoordinateHandler) Upgrade(c *fiber.Ctx) error {
	req, err := parseBody[dto.UpgradeGeographyObjectCoordinateRequest](c)
	if err != nil {
		return utils.SendError(c, err)
	}

	id, err := h.upgradeUC.Upgrade(c.Context(), req, middleware.GetUsername(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.BaseResponse{Success: true, ID: &id})
}

// GetListByObject godoc
// @Summary Geography object polygons
// @Description Имя объекта, центр и масштаб наибольшего полигона, все активные полигоны объекта
// @Tags GeographyObjectsCoordinates
// @Produce json
// @Param geography_object_id query int true "Идентификатор объекта"
// @Success 200 {object} dto.GeographyObjectCoordinatesResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /geography_objects_coordinates/list [get]
func (h *GeographyObjectCoordinateHandler) GetListByObject(c *fiber.Ctx) error {
	objectID, err := queryInt64(c, queryGeographyObjectID)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.linkUC.GetListByObject(c.Context(), objectID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp)
}

// GetListByGeographyObjectID godoc
// @Summary Geography object links
// @Description Активные связи объекта, крупные полигоны первыми
// @Tags GeographyObjectsCoordinates
// @Produce json
// @Param geography_object_id query int true "Идентификатор объекта"
// @Success 200 {object} dto.ListResponse[dto.GeographyObjectCoordinateItem]
// @Failure 400 {object} utils.ErrorResponse
// @Router /geography_objects_coordinates/by_geography_object_id [get]
func (h *GeographyObjectCoordinateHandler) GetListByGeographyObjectID(c *fiber.Ctx) error {
	objectID, err := queryInt64(c, queryGeographyObjectID)
	if err != nil {
		return utils.SendError(c, err)
	}

	items, err := h.linkUC.GetListByGeographyObject(c.Context(), objectID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ListResponse[dto.GeographyObjectCoordinateItem]{Success: true, Items: items})
}

// Add godoc
// @Summary Add geography object link
// @Tags GeographyObjectsCoordinates
// @Accept json
// @Produce json
// @Param X-Username header string true "Логин пользователя"
// @Param request body dto.AddGeographyObjectCoordinateRequest true "Объект, координата и масштаб"
// @Success 200 {object} dto.BaseResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /geography_objects_coordinates/add [post]
func (h *GeographyObjectCoordinateHandler) Add(c *fiber.Ctx) error {
	req, err := parseBody[dto.AddGeographyObjectCoordinateRequest](c)
	if err != nil {
		return utils.SendError(c, err)
	}

	id, err := h.linkUC.Add(c.Context(), req, middleware.GetUsername(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.BaseResponse{Success: true, ID: &id})
}

// Close godoc
// @Summary Close geography object link
// @Tags GeographyObjectsCoordinates
// @Accept json
// @Produce json
// @Param X-Username header string true "Логин пользователя"
// @Param request body dto.IDRequest true "Идентификатор связи"
// @Success 200 {object} dto.BaseResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /geography_objects_coordinates/close [post]
func (h *GeographyObjectCoordinateHandler) Close(c *fiber.Ctx) error {
	return handleIDCommand(c, h.linkUC.Close)
}

// Restore godoc
// @Summary Restore geography object link
// @Description Восстанавливает связь, если по той же паре нет другой активной связи
// @Tags GeographyObjectsCoordinates
// @Accept json
// @Produce json
// @Param X-Username header string true "Логин пользователя"
// @Param request body dto.IDRequest true "Идентификатор связи"
// @Success 200 {object} dto.BaseResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /geography_objects_coordinates/restore [post]
func (h *GeographyObjectCoordinateHandler) Restore(c *fiber.Ctx) error {
	return handleIDCommand(c, h.linkUC.Restore)
}
