// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spendlite/backend/internal/application/usecase/analytics"
	domainerror "github.com/spendlite/backend/internal/domain/error"
	"github.com/spendlite/backend/internal/integration/entrypoint/dto"
	"github.com/spendlite/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles the derived-view endpoints. Every endpoint
// accepts an optional date query parameter so the client can browse past
// days; absence means today.
type AnalyticsController struct {
	overviewUseCase   *analytics.GetOverviewUseCase
	breakdownUseCase  *analytics.GetBreakdownUseCase
	weekSeriesUseCase *analytics.GetWeekSeriesUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	overviewUseCase *analytics.GetOverviewUseCase,
	breakdownUseCase *analytics.GetBreakdownUseCase,
	weekSeriesUseCase *analytics.GetWeekSeriesUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		overviewUseCase:   overviewUseCase,
		breakdownUseCase:  breakdownUseCase,
		weekSeriesUseCase: weekSeriesUseCase,
	}
}

// Overview handles GET /analytics/overview requests.
func (c *AnalyticsController) Overview(ctx *gin.Context) {
	userID, date, ok := c.parseCommon(ctx)
	if !ok {
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), analytics.GetOverviewInput{
		UserID: userID,
		Date:   date,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// Breakdown handles GET /analytics/breakdown requests.
func (c *AnalyticsController) Breakdown(ctx *gin.Context) {
	userID, date, ok := c.parseCommon(ctx)
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), analytics.GetBreakdownInput{
		UserID: userID,
		Date:   date,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(output))
}

// Week handles GET /analytics/week requests.
func (c *AnalyticsController) Week(ctx *gin.Context) {
	userID, date, ok := c.parseCommon(ctx)
	if !ok {
		return
	}

	output, err := c.weekSeriesUseCase.Execute(ctx.Request.Context(), analytics.GetWeekSeriesInput{
		UserID: userID,
		Date:   date,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeekSeriesResponse(output))
}

// parseCommon extracts the authenticated user and the viewed date. The
// boolean result is false when a response has already been written.
func (c *AnalyticsController) parseCommon(ctx *gin.Context) (uuid.UUID, time.Time, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, time.Time{}, false
	}

	date := time.Now().UTC()
	if dateStr := ctx.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidReferenceDate),
			})
			return uuid.Nil, time.Time{}, false
		}
		date = parsed
	}

	return userID, date, true
}

// handleAnalyticsError maps analytics errors to HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	slog.Error("Analytics computation failed", "error", err, "path", ctx.FullPath())
	ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
		Error: "Failed to compute analytics",
		Code:  string(domainerror.ErrCodeAnalyticsStoreUnavailable),
	})
}
