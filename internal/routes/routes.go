package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair/internal/render"
	"climate-repair/internal/repositories"
	"climate-repair/internal/services"
	"climate-repair/pkg/config"
	"climate-repair/pkg/middleware"
	"climate-repair/pkg/service"
)

// InitRouter собирает весь граф зависимостей и вешает маршруты.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	pdfSvc services.PDFServiceInterface,
	logger *zap.Logger,
	cfg *config.Config,
) error {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	renderer, err := render.NewRenderer()
	if err != nil {
		return err
	}

	// Репозитории
	userRepo := repositories.NewUserRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn)
	commentRepo := repositories.NewCommentRepository(dbConn)
	ratingRepo := repositories.NewRatingRepository(dbConn)
	dictRepo := repositories.NewDictionaryRepository(dbConn)
	cacheRepo := repositories.NewCacheRepository(redisClient)
	statsRepo := repositories.NewStatisticsRepository(dbConn)

	// Сервисы
	authService := services.NewAuthService(userRepo, jwtSvc, cfg.JWT, logger)
	dictService := services.NewDictionaryService(dictRepo, cacheRepo, logger)
	requestService := services.NewRequestService(requestRepo, commentRepo, userRepo, dictService, cfg.Server.BaseURL, logger)
	ratingService := services.NewRatingService(ratingRepo, requestRepo, logger)
	statsService := services.NewStatisticsService(statsRepo, logger)
	reportService := services.NewReportService(statsService, pdfSvc, renderer, logger)

	// Маршруты
	runAuthRouter(api, authService, logger, authMW)
	runRequestRouter(api, requestService, logger, authMW)
	runRatingRouter(api, ratingService, logger)
	runDictionaryRouter(api, dictService, logger, authMW)
	runReportRouter(api, reportService, logger, authMW)

	logger.Info("InitRouter: Маршруты созданы")
	return nil
}
