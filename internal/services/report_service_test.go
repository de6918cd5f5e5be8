package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"climate-repair/internal/entities"
	"climate-repair/internal/render"
	apperrors "climate-repair/pkg/errors"
)

type fakeStatsService struct {
	report *entities.AggregateReport
	err    error
}

func (f *fakeStatsService) BuildAggregateReport(context.Context, uint64, string) (*entities.AggregateReport, error) {
	return f.report, f.err
}

type fakePDFService struct {
	html string
	err  error
}

func (f *fakePDFService) GeneratePDF(_ context.Context, html string) ([]byte, error) {
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func (f *fakePDFService) Close() {}

func newTestReportService(t *testing.T, stats *fakeStatsService, pdf *fakePDFService) ReportServiceInterface {
	t.Helper()
	renderer, err := render.NewRenderer()
	require.NoError(t, err)
	return NewReportService(stats, pdf, renderer, zap.NewNop())
}

func fullReport() *entities.AggregateReport {
	return &entities.AggregateReport{
		General: entities.GeneralStats{TotalRequests: 2, ActiveRequests: 1, CompletedRequests: 1, AvgCompletionDays: 3.5},
		StatusStats: []entities.StatusStat{
			{StatusName: "Завершена", StatusColor: "#28a745", Count: 1},
		},
	}
}

func TestBuildReport_TitlesPerRole(t *testing.T) {
	svc := newTestReportService(t, &fakeStatsService{report: fullReport()}, &fakePDFService{})

	cases := map[string]string{
		"Администратор": "Отчеты и статистика",
		"Заказчик":      "Статистика по моим заявкам",
		"Специалист":    "Статистика по моим работам",
	}
	for role, title := range cases {
		model, err := svc.BuildReport(context.Background(), 1, role)
		require.NoError(t, err, "роль %q", role)
		assert.Equal(t, title, model.Title)
	}
}

func TestBuildReport_UnknownRoleDenied(t *testing.T) {
	svc := newTestReportService(t, &fakeStatsService{report: fullReport()}, &fakePDFService{})

	_, err := svc.BuildReport(context.Background(), 1, "Ревизор")
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Code)
}

func TestExportPDF_FilenameAndContent(t *testing.T) {
	pdf := &fakePDFService{}
	svc := newTestReportService(t, &fakeStatsService{report: fullReport()}, pdf)

	filename, data, err := svc.ExportPDF(context.Background(), 1, "Заказчик")
	require.NoError(t, err)

	want := fmt.Sprintf("report_Заказчик_%s.pdf", time.Now().Format("2006-01-02"))
	assert.Equal(t, want, filename)
	assert.NotEmpty(t, data)

	// В печать ушла разметка с PDF-заголовком для роли.
	assert.Contains(t, pdf.html, "Отчет по моим заявкам")
	assert.Contains(t, pdf.html, "#28a745")
}

func TestExportPDF_RenderFailureWrapped(t *testing.T) {
	pdf := &fakePDFService{err: fmt.Errorf("браузер не поднялся")}
	svc := newTestReportService(t, &fakeStatsService{report: fullReport()}, pdf)

	_, _, err := svc.ExportPDF(context.Background(), 1, "Менеджер")
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "ошибка генерации PDF-отчёта", httpErr.Message)
}

func TestExportXLSX(t *testing.T) {
	svc := newTestReportService(t, &fakeStatsService{report: fullReport()}, &fakePDFService{})

	filename, file, err := svc.ExportXLSX(context.Background(), 1, "Оператор")
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Contains(t, filename, ".xlsx")

	rows, err := file.GetRows("Отчет")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "Отчеты и статистика", rows[0][0])
}
