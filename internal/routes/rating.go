package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair/internal/controllers"
	"climate-repair/internal/services"
)

// Оценка качества доступна без авторизации: на страницу попадают по QR-коду
// из завершённой заявки.
func runRatingRouter(api *echo.Group, ratingService services.RatingServiceInterface, logger *zap.Logger) {
	ratingCtrl := controllers.NewRatingController(ratingService, logger)

	ratingGroup := api.Group("/feedback")
	{
		ratingGroup.GET("/:id", ratingCtrl.GetRating)
		ratingGroup.POST("/:id", ratingCtrl.RateRequest)
	}
}
