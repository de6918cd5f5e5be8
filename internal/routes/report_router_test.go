package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"climate-repair/internal/dto"
	"climate-repair/internal/services"
	"climate-repair/pkg/middleware"
	"climate-repair/pkg/service"
)

type stubReportService struct{}

func (s *stubReportService) BuildReport(_ context.Context, _ uint64, role string) (dto.ReportDisplayDTO, error) {
	return dto.ReportDisplayDTO{Title: "Отчеты и статистика", TotalRequests: 3}, nil
}

func (s *stubReportService) RenderReportPage(context.Context, uint64, string) (string, error) {
	return "<html><body>Отчеты и статистика</body></html>", nil
}

func (s *stubReportService) ExportPDF(context.Context, uint64, string) (string, []byte, error) {
	return "report_Менеджер_2024-03-08.pdf", []byte("%PDF-1.4"), nil
}

func (s *stubReportService) ExportXLSX(context.Context, uint64, string) (string, *excelize.File, error) {
	return "report_Менеджер_2024-03-08.xlsx", excelize.NewFile(), nil
}

// ReportRouterTestSuite проверяет маршруты отчётов вместе с JWT-middleware.
type ReportRouterTestSuite struct {
	suite.Suite
	Echo   *echo.Echo
	JWTSvc service.JWTService
}

func (s *ReportRouterTestSuite) SetupSuite() {
	logger := zap.NewNop()
	s.Echo = echo.New()
	s.JWTSvc = service.NewJWTService("test-secret", time.Hour, time.Hour, logger)

	api := s.Echo.Group("/api")
	authMW := middleware.NewAuthMiddleware(s.JWTSvc, logger)
	runReportRouter(api, &stubReportService{}, logger, authMW)
}

func (s *ReportRouterTestSuite) token(userID uint64, role string) string {
	access, _, err := s.JWTSvc.GenerateTokens(userID, role, 0, 0)
	s.Require().NoError(err)
	return access
}

func (s *ReportRouterTestSuite) TestReportRequiresAuth() {
	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ReportRouterTestSuite) TestReportJSON() {
	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	req.Header.Set("Authorization", "Bearer "+s.token(1, "Менеджер"))
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Отчеты и статистика")
}

func (s *ReportRouterTestSuite) TestReportHTMLPage() {
	req := httptest.NewRequest(http.MethodGet, "/api/report/html", nil)
	req.Header.Set("Authorization", "Bearer "+s.token(1, "Менеджер"))
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), "text/html")
	s.Contains(rec.Body.String(), "Отчеты и статистика")
}

func (s *ReportRouterTestSuite) TestReportPDFHeaders() {
	req := httptest.NewRequest(http.MethodGet, "/api/report/export-pdf", nil)
	req.Header.Set("Authorization", "Bearer "+s.token(1, "Менеджер"))
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/pdf", rec.Header().Get(echo.HeaderContentType))
	s.Contains(rec.Header().Get("Content-Disposition"), "attachment; filename=report_")
	s.Equal("%PDF-1.4", rec.Body.String())
}

func (s *ReportRouterTestSuite) TestRefreshTokenRejected() {
	_, refresh, err := s.JWTSvc.GenerateTokens(1, "Менеджер", 0, 0)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func TestReportRouterTestSuite(t *testing.T) {
	suite.Run(t, new(ReportRouterTestSuite))
}

var _ services.ReportServiceInterface = (*stubReportService)(nil)
