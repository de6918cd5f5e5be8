package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair/internal/controllers"
	"climate-repair/internal/services"
	"climate-repair/pkg/middleware"
)

func runDictionaryRouter(api *echo.Group, dictService services.DictionaryServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	dictCtrl := controllers.NewDictionaryController(dictService, logger)

	dictGroup := api.Group("/dictionaries", authMW.Auth)
	{
		dictGroup.GET("/equipment-types", dictCtrl.GetEquipmentTypes)
		dictGroup.GET("/equipment-models", dictCtrl.GetEquipmentModels)
		dictGroup.GET("/statuses", dictCtrl.GetStatuses)
	}
}
