// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	periodController      *controller.PeriodController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	payeeController       *controller.PayeeController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	fxRateController      *controller.FxRateController
	orderingController    *controller.OrderingController
	exchangeController    *controller.ExchangeController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	periodController *controller.PeriodController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	payeeController *controller.PayeeController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	fxRateController *controller.FxRateController,
	orderingController *controller.OrderingController,
	exchangeController *controller.ExchangeController,
) *Router {
	return &Router{
		healthController:      healthController,
		periodController:      periodController,
		accountController:     accountController,
		categoryController:    categoryController,
		payeeController:       payeeController,
		transactionController: transactionController,
		budgetController:      budgetController,
		fxRateController:      fxRateController,
		orderingController:    orderingController,
		exchangeController:    exchangeController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	periods := v1.Group("/periods")
	{
		periods.GET("", r.periodController.List)
		periods.GET("/resolve", r.periodController.Resolve)
		periods.DELETE("/:id", r.periodController.Delete)
		periods.GET("/:id/actuals", r.periodController.Actuals)
		periods.GET("/:id/budgets", r.periodController.Budgets)
		periods.GET("/:id/summary", r.periodController.Summary)
	}

	accounts := v1.Group("/accounts")
	{
		accounts.GET("", r.accountController.List)
		accounts.POST("", r.accountController.Create)
		accounts.GET("/:id", r.accountController.Get)
		accounts.PATCH("/:id", r.accountController.Update)
		accounts.DELETE("/:id", r.accountController.Delete)
		accounts.GET("/:id/balance", r.accountController.Balance)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PATCH("/:id", r.categoryController.Update)
		categories.DELETE("/:id", r.categoryController.Delete)
		categories.GET("/:id/balance", r.categoryController.Balance)
		categories.GET("/:id/budget", r.categoryController.Budget)
	}

	groups := v1.Group("/category-groups")
	{
		groups.POST("", r.categoryController.CreateGroup)
		groups.PATCH("/:id", r.categoryController.UpdateGroup)
		groups.DELETE("/:id", r.categoryController.DeleteGroup)
	}

	payees := v1.Group("/payees")
	{
		payees.GET("", r.payeeController.List)
		payees.POST("", r.payeeController.Create)
		payees.PUT("/:id", r.payeeController.Update)
		payees.DELETE("/:id", r.payeeController.Delete)
		payees.GET("/:id/debt", r.payeeController.Debt)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.GET("/:id", r.transactionController.Get)
		transactions.PUT("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	budgets := v1.Group("/budgets")
	{
		budgets.POST("", r.budgetController.Create)
		budgets.DELETE("/:id", r.budgetController.Delete)
	}

	rates := v1.Group("/fx-rates")
	{
		rates.GET("", r.fxRateController.List)
		rates.POST("", r.fxRateController.Create)
		rates.GET("/rate", r.fxRateController.Rate)
		rates.DELETE("/:id", r.fxRateController.Delete)
	}

	v1.PATCH("/reorder", r.orderingController.Reorder)

	v1.GET("/export/transactions", r.exchangeController.ExportTransactions)
	v1.GET("/export/fx-rates", r.exchangeController.ExportFxRates)
	v1.POST("/import/transactions", r.exchangeController.ImportTransactions)
	v1.POST("/import/fx-rates", r.exchangeController.ImportFxRates)
	v1.POST("/import/bank", r.exchangeController.BankImport)
}
