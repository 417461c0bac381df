// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/spendlite/backend/internal/integration/entrypoint/controller"
	"github.com/spendlite/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	activityController  *controller.ActivityController
	budgetController    *controller.BudgetController
	analyticsController *controller.AnalyticsController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
	approvalMiddleware  *middleware.ApprovalMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	activityController *controller.ActivityController,
	budgetController *controller.BudgetController,
	analyticsController *controller.AnalyticsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	approvalMiddleware *middleware.ApprovalMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		activityController:  activityController,
		budgetController:    budgetController,
		analyticsController: analyticsController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
		approvalMiddleware:  approvalMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Auth endpoints are open;
// everything else requires a valid token and an approved account.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.activityController != nil && r.authMiddleware != nil {
			activities := v1.Group("/activities")
			activities.Use(r.authMiddleware.Authenticate(), r.approvalMiddleware.RequireApproved())
			{
				activities.GET("", r.activityController.List)
				activities.POST("", r.activityController.Create)
				activities.PATCH("/:id", r.activityController.Update)
				activities.DELETE("/:id", r.activityController.Delete)
			}
		}

		if r.budgetController != nil && r.authMiddleware != nil {
			budget := v1.Group("/budget")
			budget.Use(r.authMiddleware.Authenticate(), r.approvalMiddleware.RequireApproved())
			{
				budget.GET("", r.budgetController.Get)
				budget.PUT("", r.budgetController.Set)
			}
		}

		if r.analyticsController != nil && r.authMiddleware != nil {
			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate(), r.approvalMiddleware.RequireApproved())
			{
				analytics.GET("/overview", r.analyticsController.Overview)
				analytics.GET("/breakdown", r.analyticsController.Breakdown)
				analytics.GET("/week", r.analyticsController.Week)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
