package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"climate-repair/internal/authz"
	"climate-repair/internal/dto"
	"climate-repair/internal/render"
	apperrors "climate-repair/pkg/errors"
)

type ReportServiceInterface interface {
	BuildReport(ctx context.Context, userID uint64, role string) (dto.ReportDisplayDTO, error)
	RenderReportPage(ctx context.Context, userID uint64, role string) (string, error)
	ExportPDF(ctx context.Context, userID uint64, role string) (filename string, pdf []byte, err error)
	ExportXLSX(ctx context.Context, userID uint64, role string) (filename string, file *excelize.File, err error)
}

type reportService struct {
	statsService StatisticsServiceInterface
	pdfService   PDFServiceInterface
	renderer     *render.Renderer
	logger       *zap.Logger
}

func NewReportService(
	statsService StatisticsServiceInterface,
	pdfService PDFServiceInterface,
	renderer *render.Renderer,
	logger *zap.Logger,
) ReportServiceInterface {
	return &reportService{
		statsService: statsService,
		pdfService:   pdfService,
		renderer:     renderer,
		logger:       logger,
	}
}

// reportCategory определяет, через какой раздел матрицы доступа роль
// попадает в отчёты: заказчики и специалисты ходят через personal,
// остальные через general.
func reportCategory(role string) authz.ReportCategory {
	switch authz.ParseRole(role) {
	case authz.RoleClient, authz.RoleSpecialist:
		return authz.CategoryPersonal
	default:
		return authz.CategoryGeneral
	}
}

func pageTitle(role string) string {
	switch authz.ParseRole(role) {
	case authz.RoleClient:
		return "Статистика по моим заявкам"
	case authz.RoleSpecialist:
		return "Статистика по моим работам"
	default:
		return "Отчеты и статистика"
	}
}

func pdfTitle(role string) string {
	switch authz.ParseRole(role) {
	case authz.RoleClient:
		return "Отчет по моим заявкам"
	case authz.RoleSpecialist:
		return "Отчет по моим работам"
	default:
		return "Отчет системы управления заявками"
	}
}

func (s *reportService) buildModel(ctx context.Context, userID uint64, role, title string) (dto.ReportDisplayDTO, error) {
	category := reportCategory(role)
	if !authz.CheckReportAccess(role, category) {
		s.logger.Warn("Отказ в доступе к отчётам",
			zap.Uint64("user_id", userID),
			zap.String("role", role),
			zap.String("category", string(category)))
		return dto.ReportDisplayDTO{}, apperrors.NewAccessDeniedError(role, string(category))
	}

	report, err := s.statsService.BuildAggregateReport(ctx, userID, role)
	if err != nil {
		return dto.ReportDisplayDTO{}, err
	}
	return render.BuildDisplayModel(title, report, time.Now()), nil
}

func (s *reportService) BuildReport(ctx context.Context, userID uint64, role string) (dto.ReportDisplayDTO, error) {
	return s.buildModel(ctx, userID, role, pageTitle(role))
}

func (s *reportService) RenderReportPage(ctx context.Context, userID uint64, role string) (string, error) {
	model, err := s.buildModel(ctx, userID, role, pageTitle(role))
	if err != nil {
		return "", err
	}
	return s.renderer.RenderPageHTML(model)
}

// ExportPDF рендерит тот же отчёт в PDF. Разметка строится из той же
// display-модели, что и HTML-страница, меняется только заголовок.
func (s *reportService) ExportPDF(ctx context.Context, userID uint64, role string) (string, []byte, error) {
	model, err := s.buildModel(ctx, userID, role, pdfTitle(role))
	if err != nil {
		return "", nil, err
	}

	html, err := s.renderer.RenderPDFHTML(model)
	if err != nil {
		return "", nil, apperrors.NewRenderError(err)
	}
	pdf, err := s.pdfService.GeneratePDF(ctx, html)
	if err != nil {
		s.logger.Error("Сбой генерации PDF", zap.Uint64("user_id", userID), zap.Error(err))
		return "", nil, apperrors.NewRenderError(err)
	}

	filename := fmt.Sprintf("report_%s_%s.pdf", authz.ParseRole(role), time.Now().Format("2006-01-02"))
	return filename, pdf, nil
}

// ExportXLSX выгружает отчёт в Excel: сводка и три раздела на одном листе.
func (s *reportService) ExportXLSX(ctx context.Context, userID uint64, role string) (string, *excelize.File, error) {
	model, err := s.buildModel(ctx, userID, role, pageTitle(role))
	if err != nil {
		return "", nil, err
	}

	f := excelize.NewFile()
	sheet := "Отчет"
	f.SetSheetName("Sheet1", sheet)

	row := 1
	setRow := func(values ...interface{}) {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		_ = f.SetSheetRow(sheet, cell, &values)
		row++
	}

	setRow(model.Title)
	setRow("Сгенерировано", model.GeneratedAt)
	row++
	setRow("Всего заявок", model.TotalRequests)
	setRow("В работе", model.ActiveRequests)
	setRow("Завершено", model.CompletedRequests)
	setRow("Среднее время (дни)", model.AvgCompletionDays)

	if len(model.EquipmentStats) > 0 {
		row++
		setRow("Статистика по типам оборудования")
		setRow("Тип оборудования", "Количество заявок", "Процент")
		for _, r := range model.EquipmentStats {
			setRow(r.Name, r.Count, fmt.Sprintf("%d%%", r.Percent))
		}
	}
	if len(model.StatusStats) > 0 {
		row++
		setRow("Статистика по статусам заявок")
		setRow("Статус", "Количество", "Процент")
		for _, r := range model.StatusStats {
			setRow(r.Name, r.Count, fmt.Sprintf("%d%%", r.Percent))
		}
	}
	if len(model.WorkshopStats) > 0 {
		row++
		setRow("Статистика по мастерским")
		setRow("Мастерская", "Назначено", "Завершено", "Процент выполнения", "Среднее время (дни)")
		for _, r := range model.WorkshopStats {
			setRow(r.SpecialistName, r.AssignedCount, r.CompletedCount, fmt.Sprintf("%.1f%%", r.CompletionRate), r.AvgDays)
		}
	}

	filename := fmt.Sprintf("report_%s_%s.xlsx", authz.ParseRole(role), time.Now().Format("2006-01-02"))
	return filename, f, nil
}
