package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair/internal/services"
	"climate-repair/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetReport отдаёт отчёт в JSON; ?format=xlsx переключает на выгрузку в Excel.
func (c *ReportController) GetReport(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	reqCtx := ctx.Request().Context()

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		filename, file, err := c.reportService.ExportXLSX(reqCtx, userID, role)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
		ctx.Response().WriteHeader(http.StatusOK)
		return file.Write(ctx.Response().Writer)
	}

	report, err := c.reportService.BuildReport(reqCtx, userID, role)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, report, "Отчет успешно сформирован", http.StatusOK)
}

// GetReportPage рендерит HTML-страницу отчёта.
func (c *ReportController) GetReportPage(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	html, err := c.reportService.RenderReportPage(ctx.Request().Context(), userID, role)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.HTML(http.StatusOK, html)
}

// ExportPDF отдаёт тот же отчёт файлом PDF.
func (c *ReportController) ExportPDF(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filename, pdf, err := c.reportService.ExportPDF(ctx.Request().Context(), userID, role)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
	return ctx.Blob(http.StatusOK, "application/pdf", pdf)
}
