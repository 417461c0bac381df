// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

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
	"github.com/spendlite/backend/internal/integration/persistence/model"
	"github.com/spendlite/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds per-scenario state plus the shared in-process server.
type testContext struct {
	server       *httptest.Server
	client       *http.Client
	db           *mock.Db
	emailSender  *email.MockEmailSender
	emailWorker  *email.Worker
	response     *http.Response
	responseBody []byte

	accessToken    string
	refreshToken   string
	users          map[string]uuid.UUID // email -> id
	lastActivityID string
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario wires the application against the in-memory stores and
// registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"activities":     &model.ActivityModel{},
			"budgets":        &model.BudgetModel{},
			"email_queue":    &model.EmailQueueModel{},
		}),
		users: make(map[string]uuid.UUID),
	}

	dbConn := test.db.DbConn
	redisClient := mock.NewRedis()

	userRepo := persistence.NewUserRepository(dbConn)
	tokenRepo := persistence.NewTokenRepository(dbConn)
	activityRepo := persistence.NewActivityRepository(dbConn)
	budgetRepo := persistence.NewBudgetRepository(dbConn)
	emailQueueRepo := persistence.NewEmailQueueRepository(dbConn)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour, tokenRepo)
	snapshotCache := adapters.NewSnapshotCache(redisClient, 10*time.Minute)
	emailService := email.NewService(emailQueueRepo)

	renderer, err := templates.NewRenderer()
	if err != nil {
		panic(err)
	}
	test.emailSender = email.NewMockEmailSender()
	test.emailWorker = email.NewWorker(emailQueueRepo, test.emailSender, renderer, email.DefaultWorkerConfig())

	healthController := controller.NewHealthController(func() bool { return true })
	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewRefreshTokenUseCase(tokenService),
		auth.NewLogoutUserUseCase(tokenService),
	)
	activityController := controller.NewActivityController(
		activity.NewListActivitiesUseCase(activityRepo),
		activity.NewCreateActivityUseCase(activityRepo, budgetRepo, userRepo, emailService, snapshotCache),
		activity.NewUpdateActivityUseCase(activityRepo, snapshotCache),
		activity.NewDeleteActivityUseCase(activityRepo, snapshotCache),
	)
	budgetController := controller.NewBudgetController(
		budget.NewGetBudgetUseCase(budgetRepo),
		budget.NewSetBudgetUseCase(budgetRepo, snapshotCache),
	)
	analyticsController := controller.NewAnalyticsController(
		analytics.NewGetOverviewUseCase(activityRepo, budgetRepo, snapshotCache),
		analytics.NewGetBreakdownUseCase(activityRepo),
		analytics.NewGetWeekSeriesUseCase(activityRepo),
	)

	r := router.NewRouter(
		healthController,
		authController,
		activityController,
		budgetController,
		analyticsController,
		middleware.NewRateLimiterWithConfig(1000, 1*time.Minute),
		middleware.NewAuthMiddleware(tokenService),
		middleware.NewApprovalMiddleware(userRepo),
	)
	engine := r.Setup("test")

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := test.db.Reset(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}
		test.emailSender.SentEmails = nil
		test.emailSender.ShouldFail = false
		test.accessToken = ""
		test.refreshToken = ""
		test.users = make(map[string]uuid.UUID)
		test.lastActivityID = ""
		test.server = httptest.NewServer(engine)
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
		}
		return ctx, nil
	})

	// Background
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)

	// Seeding
	ctx.Step(`^an approved user exists with email "([^"]*)" and password "([^"]*)"$`, test.anApprovedUserExists)
	ctx.Step(`^an unapproved user exists with email "([^"]*)" and password "([^"]*)"$`, test.anUnapprovedUserExists)
	ctx.Step(`^"([^"]*)" has an activity "([^"]*)" of ([0-9.]+) in category "([^"]*)" on "([^"]*)"$`, test.userHasActivity)
	ctx.Step(`^"([^"]*)" has a monthly budget of ([0-9.]+)$`, test.userHasBudget)

	// Auth
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedIn)

	// Requests
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^I send a "([^"]*)" request to the last created activity$`, test.iSendARequestToLastActivity)
	ctx.Step(`^I send a "([^"]*)" request to the last created activity with body:$`, test.iSendARequestToLastActivityWithBody)
	ctx.Step(`^the email worker processes pending jobs$`, test.emailWorkerProcesses)

	// Assertions
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) elements$`, test.theResponseFieldShouldHaveElements)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^(\d+) emails? should have been sent to "([^"]*)"$`, test.emailsShouldHaveBeenSent)
	ctx.Step(`^no emails should have been sent$`, test.noEmailsShouldHaveBeenSent)
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) seedUser(email, password string, approved bool) error {
	hash, err := adapters.NewPasswordService().HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	userModel := &model.UserModel{
		ID:           uuid.New(),
		Email:        strings.ToLower(email),
		Name:         "Test User",
		PasswordHash: hash,
		Approved:     approved,
		BudgetAlerts: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := t.db.DbConn.Create(userModel).Error; err != nil {
		return err
	}
	t.users[strings.ToLower(email)] = userModel.ID
	return nil
}

func (t *testContext) anApprovedUserExists(email, password string) error {
	return t.seedUser(email, password, true)
}

func (t *testContext) anUnapprovedUserExists(email, password string) error {
	return t.seedUser(email, password, false)
}

func (t *testContext) userHasActivity(email, name string, amount float64, category, date string) error {
	userID, ok := t.users[strings.ToLower(email)]
	if !ok {
		return fmt.Errorf("unknown user %q, seed it first", email)
	}

	spentAt, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	activityModel := &model.ActivityModel{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    decimal.NewFromFloat(amount),
		Category:  category,
		SpentAt:   spentAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(activityModel).Error
}

func (t *testContext) userHasBudget(email string, limit float64) error {
	userID, ok := t.users[strings.ToLower(email)]
	if !ok {
		return fmt.Errorf("unknown user %q, seed it first", email)
	}

	now := time.Now().UTC()
	budgetModel := &model.BudgetModel{
		ID:           uuid.New(),
		UserID:       userID,
		MonthlyLimit: decimal.NewFromFloat(limit),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.DbConn.Create(budgetModel).Error
}

func (t *testContext) iAmLoggedIn(email, password string) error {
	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, password)
	if err := t.doRequest("POST", "/api/v1/auth/login", strings.NewReader(body)); err != nil {
		return err
	}
	if t.response.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %s", t.response.StatusCode, t.responseBody)
	}

	var parsed struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(t.responseBody, &parsed); err != nil {
		return err
	}
	t.accessToken = parsed.AccessToken
	t.refreshToken = parsed.RefreshToken
	return nil
}

func (t *testContext) iSendARequestTo(method, endpoint string) error {
	return t.doRequest(method, endpoint, nil)
}

func (t *testContext) iSendARequestToWithBody(method, endpoint string, body *godog.DocString) error {
	content := t.expandPlaceholders(body.Content)
	return t.doRequest(method, endpoint, strings.NewReader(content))
}

func (t *testContext) iSendARequestToLastActivity(method string) error {
	if t.lastActivityID == "" {
		return fmt.Errorf("no activity has been created yet")
	}
	return t.doRequest(method, "/api/v1/activities/"+t.lastActivityID, nil)
}

func (t *testContext) iSendARequestToLastActivityWithBody(method string, body *godog.DocString) error {
	if t.lastActivityID == "" {
		return fmt.Errorf("no activity has been created yet")
	}
	return t.doRequest(method, "/api/v1/activities/"+t.lastActivityID, strings.NewReader(body.Content))
}

func (t *testContext) emailWorkerProcesses() error {
	t.emailWorker.ProcessNow(context.Background())
	return nil
}

// expandPlaceholders substitutes {refresh_token} in request bodies.
func (t *testContext) expandPlaceholders(content string) string {
	return strings.ReplaceAll(content, "{refresh_token}", t.refreshToken)
}

func (t *testContext) doRequest(method, endpoint string, body io.Reader) error {
	req, err := http.NewRequest(method, t.server.URL+endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}

	t.response = resp
	t.responseBody, err = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return err
	}

	// Remember created activity IDs for follow-up requests
	if method == "POST" && strings.HasSuffix(endpoint, "/activities") && resp.StatusCode == http.StatusCreated {
		var parsed struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(t.responseBody, &parsed); err == nil && parsed.ID != "" {
			t.lastActivityID = parsed.ID
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, t.response.StatusCode, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q. Body: %s", field, expected, actual, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookupField(field)
	return err
}

func (t *testContext) theResponseFieldShouldHaveElements(field string, count int) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}
	list, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field %q is not an array. Body: %s", field, t.responseBody)
	}
	if len(list) != count {
		return fmt.Errorf("field %q expected %d elements, got %d. Body: %s", field, count, len(list), t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, t.responseBody)
	}
	return nil
}

func (t *testContext) emailsShouldHaveBeenSent(count int, recipient string) error {
	sent := 0
	for _, e := range t.emailSender.SentEmails {
		if strings.EqualFold(e.To, recipient) {
			sent++
		}
	}
	if sent != count {
		return fmt.Errorf("expected %d emails to %q, got %d", count, recipient, sent)
	}
	return nil
}

func (t *testContext) noEmailsShouldHaveBeenSent() error {
	if len(t.emailSender.SentEmails) != 0 {
		return fmt.Errorf("expected no emails, got %d", len(t.emailSender.SentEmails))
	}
	return nil
}

// lookupField resolves dotted paths with numeric array indexes, for example
// "items.0.label" or "user.approved".
func (t *testContext) lookupField(path string) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(t.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w. Body: %s", err, t.responseBody)
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, t.responseBody)
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q", part, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at %q", path, part)
		}
	}
	return current, nil
}
