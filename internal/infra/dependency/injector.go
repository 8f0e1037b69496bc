// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/application/usecase/balance"
	"github.com/finance-tracker/ledger/internal/application/usecase/bankimport"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	"github.com/finance-tracker/ledger/internal/application/usecase/exchange"
	"github.com/finance-tracker/ledger/internal/application/usecase/fxrate"
	"github.com/finance-tracker/ledger/internal/application/usecase/ordering"
	"github.com/finance-tracker/ledger/internal/application/usecase/payee"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config          *config.Config
	DB              *gorm.DB
	Store           adapter.Store
	Settings        ledger.Settings
	Router          *router.Router
	GeneratePeriods *period.GeneratePeriodsUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The mutation lock and clock are supplied by the caller so that tests and
// multi-replica deployments can choose their own.
func NewInjector(cfg *config.Config, db *gorm.DB, lock adapter.MutationLock, clock adapter.Clock) *Injector {
	settings := ledger.Settings{
		DefaultCurrency: cfg.Ledger.DefaultCurrency,
		Location:        cfg.Ledger.Location(),
	}
	loc := settings.Loc()

	// Create store and balance engine
	store := persistence.NewStore(db)
	calc := balance.NewCalculator(settings)
	updater := balance.NewUpdater(calc)
	cache := balance.NewCache(store, lock, calc)

	// Create period use cases
	generatePeriodsUseCase := period.NewGeneratePeriodsUseCase(store, lock, settings)
	listPeriodsUseCase := period.NewListPeriodsUseCase(store.Periods())
	resolvePeriodUseCase := period.NewResolvePeriodUseCase(store.Periods(), settings)
	deletePeriodUseCase := period.NewDeletePeriodUseCase(store, lock)

	// Create account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(store, lock)
	listAccountsUseCase := account.NewListAccountsUseCase(store.Accounts())
	getAccountUseCase := account.NewGetAccountUseCase(store.Accounts())
	updateAccountUseCase := account.NewUpdateAccountUseCase(store, lock)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(store, lock)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(store, lock)
	listCategoriesUseCase := category.NewListCategoriesUseCase(store)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(store, lock)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(store, lock)
	createGroupUseCase := category.NewCreateGroupUseCase(store, lock)
	updateGroupUseCase := category.NewUpdateGroupUseCase(store, lock)
	deleteGroupUseCase := category.NewDeleteGroupUseCase(store, lock)

	// Create payee use cases
	createPayeeUseCase := payee.NewCreatePayeeUseCase(store, lock)
	listPayeesUseCase := payee.NewListPayeesUseCase(store.Payees())
	updatePayeeUseCase := payee.NewUpdatePayeeUseCase(store, lock)
	deletePayeeUseCase := payee.NewDeletePayeeUseCase(store, lock)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(store, lock, updater, settings)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(store)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(store)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(store, lock, updater, settings)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(store, lock, updater, settings)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(store, lock, settings)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(store, lock)
	categoryBudgetUseCase := budget.NewGetCategoryBudgetUseCase(store, cache, settings)
	periodBudgetsUseCase := budget.NewGetPeriodBudgetsUseCase(store, settings)

	// Create fx rate use cases
	createFxRateUseCase := fxrate.NewCreateFxRateUseCase(store, lock, updater, settings)
	listFxRatesUseCase := fxrate.NewListFxRatesUseCase(store.FxRates())
	deleteFxRateUseCase := fxrate.NewDeleteFxRateUseCase(store, lock, updater, settings)
	getRateUseCase := fxrate.NewGetRateUseCase(store.FxRates())

	// Create balance use cases
	accountBalanceUseCase := balance.NewGetAccountBalanceUseCase(store, calc)
	accountPeriodBalanceUseCase := balance.NewGetAccountPeriodBalanceUseCase(store, cache, calc)
	categoryBalanceUseCase := balance.NewGetCategoryBalanceUseCase(store, cache, calc)
	periodActualsUseCase := balance.NewGetPeriodActualsUseCase(store, cache, calc)
	periodSummaryUseCase := balance.NewGetPeriodSummaryUseCase(store, calc)
	debtBalanceUseCase := balance.NewGetDebtBalanceUseCase(store, calc)

	// Create ordering, import and export use cases
	reorderUseCase := ordering.NewReorderUseCase(store, lock)
	exportTransactionsUseCase := exchange.NewExportTransactionsUseCase(store, settings)
	importTransactionsUseCase := exchange.NewImportTransactionsUseCase(store, createTransactionUseCase, settings)
	exportFxRatesUseCase := exchange.NewExportFxRatesUseCase(store, settings)
	importFxRatesUseCase := exchange.NewImportFxRatesUseCase(store, createFxRateUseCase, settings)
	bankImportUseCase := bankimport.NewImportRecordsUseCase(
		store,
		lock,
		clock,
		createTransactionUseCase,
		settings,
		cfg.Import.LookbackDays,
	)

	// Create controllers
	checks := map[string]controller.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if pinger, ok := lock.(interface{ Ping(context.Context) error }); ok {
		checks["lock"] = pinger.Ping
	}
	healthController := controller.NewHealthController(checks, clock)

	periodController := controller.NewPeriodController(
		listPeriodsUseCase,
		resolvePeriodUseCase,
		deletePeriodUseCase,
		periodActualsUseCase,
		periodBudgetsUseCase,
		periodSummaryUseCase,
		loc,
	)

	accountController := controller.NewAccountController(
		createAccountUseCase,
		listAccountsUseCase,
		getAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
		accountBalanceUseCase,
		accountPeriodBalanceUseCase,
		loc,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		createGroupUseCase,
		updateGroupUseCase,
		deleteGroupUseCase,
		categoryBalanceUseCase,
		categoryBudgetUseCase,
	)

	payeeController := controller.NewPayeeController(
		createPayeeUseCase,
		listPayeesUseCase,
		updatePayeeUseCase,
		deletePayeeUseCase,
		debtBalanceUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		getTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		loc,
	)

	budgetController := controller.NewBudgetController(createBudgetUseCase, deleteBudgetUseCase)

	fxRateController := controller.NewFxRateController(
		createFxRateUseCase,
		listFxRatesUseCase,
		deleteFxRateUseCase,
		getRateUseCase,
		loc,
	)

	orderingController := controller.NewOrderingController(reorderUseCase)

	exchangeController := controller.NewExchangeController(
		exportTransactionsUseCase,
		importTransactionsUseCase,
		exportFxRatesUseCase,
		importFxRatesUseCase,
		bankImportUseCase,
		loc,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		periodController,
		accountController,
		categoryController,
		payeeController,
		transactionController,
		budgetController,
		fxRateController,
		orderingController,
		exchangeController,
	)

	return &Injector{
		Config:          cfg,
		DB:              db,
		Store:           store,
		Settings:        settings,
		Router:          r,
		GeneratePeriods: generatePeriodsUseCase,
	}
}
