package balance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GetAccountBalanceInput represents the input for an as-of account balance.
type GetAccountBalanceInput struct {
	AccountID uuid.UUID
	AsOf      time.Time
}

// GetAccountBalanceOutput represents an account balance in the account currency.
type GetAccountBalanceOutput struct {
	AccountID uuid.UUID
	Currency  string
	Amount    int64
}

// GetAccountBalanceUseCase computes an account balance as of any date.
type GetAccountBalanceUseCase struct {
	store adapter.Store
	calc  *Calculator
}

// NewGetAccountBalanceUseCase creates a new GetAccountBalanceUseCase instance.
func NewGetAccountBalanceUseCase(store adapter.Store, calc *Calculator) *GetAccountBalanceUseCase {
	return &GetAccountBalanceUseCase{
		store: store,
		calc:  calc,
	}
}

// Execute computes the balance.
func (uc *GetAccountBalanceUseCase) Execute(ctx context.Context, input GetAccountBalanceInput) (*GetAccountBalanceOutput, error) {
	account, err := lookup.Account(ctx, uc.store.Accounts(), input.AccountID)
	if err != nil {
		return nil, err
	}
	amount, err := uc.calc.Account(ctx, uc.store, account.ID, input.AsOf)
	if err != nil {
		return nil, err
	}
	return &GetAccountBalanceOutput{
		AccountID: account.ID,
		Currency:  account.Currency,
		Amount:    amount,
	}, nil
}

// GetAccountPeriodBalanceInput represents the input for a cached period-end balance.
type GetAccountPeriodBalanceInput struct {
	AccountID uuid.UUID
	PeriodID  uuid.UUID
}

// GetAccountPeriodBalanceUseCase reads the account balance as of the last day of
// a period through the balance cache.
type GetAccountPeriodBalanceUseCase struct {
	store adapter.Store
	cache *Cache
	calc  *Calculator
}

// NewGetAccountPeriodBalanceUseCase creates a new GetAccountPeriodBalanceUseCase instance.
func NewGetAccountPeriodBalanceUseCase(store adapter.Store, cache *Cache, calc *Calculator) *GetAccountPeriodBalanceUseCase {
	return &GetAccountPeriodBalanceUseCase{
		store: store,
		cache: cache,
		calc:  calc,
	}
}

// Execute reads the balance.
func (uc *GetAccountPeriodBalanceUseCase) Execute(ctx context.Context, input GetAccountPeriodBalanceInput) (*GetAccountBalanceOutput, error) {
	account, err := lookup.Account(ctx, uc.store.Accounts(), input.AccountID)
	if err != nil {
		return nil, err
	}
	idx, err := period.LoadIndex(ctx, uc.store.Periods(), uc.calc.Settings().Loc())
	if err != nil {
		return nil, err
	}
	p, err := lookup.Period(idx, input.PeriodID)
	if err != nil {
		return nil, err
	}
	row, err := uc.cache.Get(ctx, p, entity.AccountScope(account.ID))
	if err != nil {
		return nil, err
	}
	return &GetAccountBalanceOutput{
		AccountID: account.ID,
		Currency:  account.Currency,
		Amount:    amountOf(row.Value),
	}, nil
}
