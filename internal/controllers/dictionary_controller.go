package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair/internal/services"
	"climate-repair/pkg/utils"
)

type DictionaryController struct {
	dictService services.DictionaryServiceInterface
	logger      *zap.Logger
}

func NewDictionaryController(dictService services.DictionaryServiceInterface, logger *zap.Logger) *DictionaryController {
	return &DictionaryController{dictService: dictService, logger: logger}
}

func (c *DictionaryController) GetEquipmentTypes(ctx echo.Context) error {
	types, err := c.dictService.GetEquipmentTypes(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, types, "Типы оборудования", http.StatusOK)
}

func (c *DictionaryController) GetEquipmentModels(ctx echo.Context) error {
	// type_id не обязателен: без него отдаются все модели.
	typeID, _ := strconv.ParseUint(ctx.QueryParam("type_id"), 10, 64)

	models, err := c.dictService.GetEquipmentModels(ctx.Request().Context(), typeID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, models, "Модели оборудования", http.StatusOK)
}

func (c *DictionaryController) GetStatuses(ctx echo.Context) error {
	statuses, err := c.dictService.GetStatuses(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, statuses, "Статусы заявок", http.StatusOK)
}
