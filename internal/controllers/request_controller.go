package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-repair/internal/dto"
	"climate-repair/internal/services"
	apperrors "climate-repair/pkg/errors"
	"climate-repair/pkg/utils"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(requestService services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{requestService: requestService, logger: logger}
}

func identity(ctx echo.Context) (uint64, string, error) {
	reqCtx := ctx.Request().Context()
	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return 0, "", err
	}
	role, err := utils.GetUserRoleFromCtx(reqCtx)
	if err != nil {
		return 0, "", err
	}
	return userID, role, nil
}

func pathID(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewInvalidInputError("некорректный идентификатор %q", ctx.Param(name))
	}
	return id, nil
}

func (c *RequestController) GetRequests(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var listFilter dto.RequestListFilterDTO
	if err := ctx.Bind(&listFilter); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	requests, err := c.requestService.GetRequests(ctx.Request().Context(), userID, role, listFilter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, requests, "Список заявок", http.StatusOK)
}

func (c *RequestController) GetRequest(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	requestID, err := pathID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	view, err := c.requestService.GetRequestView(ctx.Request().Context(), userID, role, requestID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, view, "Карточка заявки", http.StatusOK)
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	request, err := c.requestService.CreateRequest(ctx.Request().Context(), userID, role, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Заявка создана", http.StatusCreated)
}

func (c *RequestController) AssignMaster(ctx echo.Context) error {
	_, role, err := identity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.AssignMasterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.requestService.AssignMaster(ctx.Request().Context(), role, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Специалист назначен", http.StatusOK)
}

func (c *RequestController) UpdateStatus(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.requestService.UpdateStatus(ctx.Request().Context(), userID, role, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Статус заявки обновлён", http.StatusOK)
}

func (c *RequestController) AddComment(ctx echo.Context) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.AddCommentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.requestService.AddComment(ctx.Request().Context(), userID, role, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Комментарий добавлен", http.StatusCreated)
}
