// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlite/backend/internal/application/usecase/activity"
	"github.com/spendlite/backend/internal/domain/entity"
	domainerror "github.com/spendlite/backend/internal/domain/error"
	"github.com/spendlite/backend/internal/integration/entrypoint/dto"
	"github.com/spendlite/backend/internal/integration/entrypoint/middleware"
)

// ActivityController handles activity endpoints.
type ActivityController struct {
	listUseCase   *activity.ListActivitiesUseCase
	createUseCase *activity.CreateActivityUseCase
	updateUseCase *activity.UpdateActivityUseCase
	deleteUseCase *activity.DeleteActivityUseCase
}

// NewActivityController creates a new activity controller instance.
func NewActivityController(
	listUseCase *activity.ListActivitiesUseCase,
	createUseCase *activity.CreateActivityUseCase,
	updateUseCase *activity.UpdateActivityUseCase,
	deleteUseCase *activity.DeleteActivityUseCase,
) *ActivityController {
	return &ActivityController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /activities requests. Supports q (name substring),
// category and date query filters.
func (c *ActivityController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := activity.ListActivitiesInput{
		UserID: userID,
		Query:  ctx.Query("q"),
	}

	if categoryStr := ctx.Query("category"); categoryStr != "" {
		input.Category = entity.Category(categoryStr)
	}

	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidReferenceDate),
			})
			return
		}
		input.Day = &date
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Failed to retrieve activities",
			Code:  string(domainerror.ErrCodeActivityStoreUnavailable),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActivityListResponse(output))
}

// Create handles POST /activities requests.
func (c *ActivityController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyActivityName),
		})
		return
	}

	input := activity.CreateActivityInput{
		UserID:   userID,
		Name:     req.Name,
		Amount:   decimal.NewFromFloat(req.Amount),
		Category: entity.Category(req.Category),
	}

	if req.SpentAt != nil && *req.SpentAt != "" {
		spentAt, err := time.Parse("2006-01-02", *req.SpentAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid spent_at format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidSpentAt),
			})
			return
		}
		input.SpentAt = &spentAt
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToActivityResponse(output.Activity))
}

// Update handles PATCH /activities/:id requests.
func (c *ActivityController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	activityID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid activity ID format",
		})
		return
	}

	var req dto.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := activity.UpdateActivityInput{
		ActivityID: activityID,
		UserID:     userID,
		Name:       req.Name,
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	if req.Category != nil {
		category := entity.Category(*req.Category)
		input.Category = &category
	}

	if req.SpentAt != nil && *req.SpentAt != "" {
		spentAt, err := time.Parse("2006-01-02", *req.SpentAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid spent_at format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidSpentAt),
			})
			return
		}
		input.SpentAt = &spentAt
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActivityResponse(output.Activity))
}

// Delete handles DELETE /activities/:id requests.
func (c *ActivityController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	activityID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid activity ID format",
		})
		return
	}

	input := activity.DeleteActivityInput{
		ActivityID: activityID,
		UserID:     userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleActivityError maps activity errors to HTTP responses.
func (c *ActivityController) handleActivityError(ctx *gin.Context, err error) {
	var activityErr *domainerror.ActivityError
	if errors.As(err, &activityErr) {
		ctx.JSON(c.getStatusCodeForActivityError(activityErr.Code), dto.ErrorResponse{
			Error: activityErr.Message,
			Code:  string(activityErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrActivityNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Activity not found",
			Code:  string(domainerror.ErrCodeActivityNotFound),
		})
	case errors.Is(err, domainerror.ErrUnauthorizedActivityAccess):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error: "Not authorized to access this activity",
			Code:  string(domainerror.ErrCodeUnauthorizedActivity),
		})
	default:
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Failed to process activity",
			Code:  string(domainerror.ErrCodeActivityStoreUnavailable),
		})
	}
}

// getStatusCodeForActivityError maps activity error codes to HTTP status codes.
func (c *ActivityController) getStatusCodeForActivityError(code domainerror.ActivityErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyActivityName,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeInvalidCategory,
		domainerror.ErrCodeNameTooLong,
		domainerror.ErrCodeInvalidSpentAt:
		return http.StatusBadRequest
	case domainerror.ErrCodeActivityNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedActivity:
		return http.StatusForbidden
	default:
		return http.StatusServiceUnavailable
	}
}
