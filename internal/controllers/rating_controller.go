package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair/internal/dto"
	"climate-repair/internal/services"
	"climate-repair/pkg/utils"
)

// RatingController обслуживает страницу оценки качества: по QR-коду на неё
// попадают без авторизации.
type RatingController struct {
	ratingService services.RatingServiceInterface
	logger        *zap.Logger
}

func NewRatingController(ratingService services.RatingServiceInterface, logger *zap.Logger) *RatingController {
	return &RatingController{ratingService: ratingService, logger: logger}
}

func (c *RatingController) GetRating(ctx echo.Context) error {
	requestID, err := pathID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	rating, err := c.ratingService.GetRating(ctx.Request().Context(), requestID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, rating, "Оценка качества", http.StatusOK)
}

func (c *RatingController) RateRequest(ctx echo.Context) error {
	requestID, err := pathID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.RateQualityDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.ratingService.RateRequest(ctx.Request().Context(), requestID, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Спасибо за оценку", http.StatusCreated)
}
