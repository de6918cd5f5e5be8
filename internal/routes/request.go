package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair/internal/controllers"
	"climate-repair/internal/services"
	"climate-repair/pkg/middleware"
)

func runRequestRouter(api *echo.Group, requestService services.RequestServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	requestCtrl := controllers.NewRequestController(requestService, logger)

	requestGroup := api.Group("/requests", authMW.Auth)
	{
		requestGroup.GET("", requestCtrl.GetRequests)
		requestGroup.POST("", requestCtrl.CreateRequest)
		requestGroup.GET("/:id", requestCtrl.GetRequest)
		requestGroup.PUT("/assign", requestCtrl.AssignMaster)
		requestGroup.PUT("/status", requestCtrl.UpdateStatus)
		requestGroup.POST("/comments", requestCtrl.AddComment)
	}
}
