// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/infra/db"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/lock"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
	"github.com/finance-tracker/ledger/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Named ids created during the scenario, referenced as {{name}} in steps.
	ids map[string]string

	// Ledger
	cfg      *config.Config
	db       *mock.Db
	redis    *redis.Client
	clock    *mock.Time
	injector *dependency.Injector
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

var placeholder = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

func testConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Environment: "test"},
		Database: config.DatabaseConfig{Driver: db.DriverSQLite},
		Lock: config.LockConfig{
			Backend: "redis",
			Key:     "ledger:mutation",
			TTL:     5 * time.Second,
			Retry:   5 * time.Millisecond,
		},
		Ledger: config.LedgerConfig{
			DefaultCurrency: "EUR",
			Timezone:        "UTC",
			PeriodFromYear:  2024,
			PeriodToYear:    2025,
		},
		Import: config.ImportConfig{LookbackDays: 7},
	}
}

func tableModels() map[string]any {
	models := make(map[string]any)
	for _, m := range model.AllModels() {
		if named, ok := m.(interface{ TableName() string }); ok {
			models[named.TableName()] = m
		}
	}
	return models
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		mock.NewDb(tableModels())
		mock.NewRedis()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			ids:            make(map[string]string),
			cfg:            testConfig(),
			db:             mock.NewDb(tableModels()),
			redis:          mock.NewRedis(),
			clock:          mock.NewTime(),
		}

		if err := tc.db.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}
		if err := mock.ClearRedis(tc.redis); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		mutationLock := lock.NewRedisLock(tc.redis, tc.cfg.Lock.Key, tc.cfg.Lock.TTL, tc.cfg.Lock.Retry)
		tc.injector = dependency.NewInjector(tc.cfg, tc.db.DbConn, mutationLock, tc.clock)

		if _, err := tc.injector.GeneratePeriods.Execute(ctx, period.GeneratePeriodsInput{
			FromYear: tc.cfg.Ledger.PeriodFromYear,
			ToYear:   tc.cfg.Ledger.PeriodToYear,
		}); err != nil {
			return ctx, fmt.Errorf("failed to generate periods: %w", err)
		}
		periods, err := tc.injector.Store.Periods().FindAll(ctx)
		if err != nil {
			return ctx, fmt.Errorf("failed to list periods: %w", err)
		}
		for _, p := range periods {
			tc.ids[fmt.Sprintf("period:%04d-%02d", p.Year, p.Month)] = p.ID.String()
		}

		tc.engine = tc.injector.Router.Setup(tc.cfg.Server.Environment)
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerLedgerSteps(ctx)
	registerResponseSteps(ctx)
}

// expand replaces {{name}} placeholders with the ids saved under that name.
// Unknown names are left untouched so the failure shows up in the request.
func (tc *TestContext) expand(s string) string {
	return placeholder.ReplaceAllStringFunc(s, func(match string) string {
		name := placeholder.FindStringSubmatch(match)[1]
		if id, ok := tc.ids[name]; ok {
			return id
		}
		return match
	})
}
