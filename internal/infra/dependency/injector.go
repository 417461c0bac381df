// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/spendlite/backend/config"
	"github.com/spendlite/backend/internal/application/usecase/activity"
	"github.com/spendlite/backend/internal/application/usecase/analytics"
	"github.com/spendlite/backend/internal/application/usecase/auth"
	"github.com/spendlite/backend/internal/application/usecase/budget"
	"github.com/spendlite/backend/internal/infra/server/router"
	"github.com/spendlite/backend/internal/integration/adapters"
	"github.com/spendlite/backend/internal/integration/email"
	"github.com/spendlite/backend/internal/integration/email/templates"
	"github.com/spendlite/backend/internal/integration/entrypoint/controller"
	"github.com/spendlite/backend/internal/integration/entrypoint/middleware"
	"github.com/spendlite/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	activityRepo := persistence.NewActivityRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)
	snapshotCache := adapters.NewSnapshotCache(redisClient, cfg.Redis.TTL)
	emailService := email.NewService(emailQueueRepo)

	// Email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Activity use cases
	listActivitiesUseCase := activity.NewListActivitiesUseCase(activityRepo)
	createActivityUseCase := activity.NewCreateActivityUseCase(activityRepo, budgetRepo, userRepo, emailService, snapshotCache)
	updateActivityUseCase := activity.NewUpdateActivityUseCase(activityRepo, snapshotCache)
	deleteActivityUseCase := activity.NewDeleteActivityUseCase(activityRepo, snapshotCache)

	// Budget use cases
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
	setBudgetUseCase := budget.NewSetBudgetUseCase(budgetRepo, snapshotCache)

	// Analytics use cases
	getOverviewUseCase := analytics.NewGetOverviewUseCase(activityRepo, budgetRepo, snapshotCache)
	getBreakdownUseCase := analytics.NewGetBreakdownUseCase(activityRepo)
	getWeekSeriesUseCase := analytics.NewGetWeekSeriesUseCase(activityRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	activityController := controller.NewActivityController(
		listActivitiesUseCase,
		createActivityUseCase,
		updateActivityUseCase,
		deleteActivityUseCase,
	)

	budgetController := controller.NewBudgetController(getBudgetUseCase, setBudgetUseCase)

	analyticsController := controller.NewAnalyticsController(
		getOverviewUseCase,
		getBreakdownUseCase,
		getWeekSeriesUseCase,
	)

	// Middleware
	// Use higher rate limits in test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	approvalMiddleware := middleware.NewApprovalMiddleware(userRepo)

	r := router.NewRouter(
		healthController,
		authController,
		activityController,
		budgetController,
		analyticsController,
		loginRateLimiter,
		authMiddleware,
		approvalMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
