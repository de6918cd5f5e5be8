package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair/internal/controllers"
	"climate-repair/internal/services"
	"climate-repair/pkg/middleware"
)

func runReportRouter(api *echo.Group, reportService services.ReportServiceInterface, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	reportCtrl := controllers.NewReportController(reportService, logger)

	reportGroup := api.Group("/report", authMW.Auth)
	{
		reportGroup.GET("", reportCtrl.GetReport)
		reportGroup.GET("/html", reportCtrl.GetReportPage)
		reportGroup.GET("/export-pdf", reportCtrl.ExportPDF)
	}
}
