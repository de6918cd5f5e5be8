package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair/internal/controllers"
	"climate-repair/internal/services"
	"climate-repair/pkg/middleware"
)

func runAuthRouter(api *echo.Group, authService services.AuthServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	authCtrl := controllers.NewAuthController(authService, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}
