package balance

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/application/usecase/period"
)

// GetDebtBalanceInput represents the input for a debtor's balance.
type GetDebtBalanceInput struct {
	PayeeID  uuid.UUID
	PeriodID uuid.UUID
}

// GetDebtBalanceOutput represents what a payee owes at the end of a period.
type GetDebtBalanceOutput struct {
	PayeeID  uuid.UUID
	PeriodID uuid.UUID
	Amount   int64
}

// GetDebtBalanceUseCase computes the outstanding debt of a payee.
type GetDebtBalanceUseCase struct {
	store adapter.Store
	calc  *Calculator
}

// NewGetDebtBalanceUseCase creates a new GetDebtBalanceUseCase instance.
func NewGetDebtBalanceUseCase(store adapter.Store, calc *Calculator) *GetDebtBalanceUseCase {
	return &GetDebtBalanceUseCase{
		store: store,
		calc:  calc,
	}
}

// Execute computes the debt.
func (uc *GetDebtBalanceUseCase) Execute(ctx context.Context, input GetDebtBalanceInput) (*GetDebtBalanceOutput, error) {
	payee, err := lookup.Payee(ctx, uc.store.Payees(), input.PayeeID)
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
	amount, err := uc.calc.Debt(ctx, uc.store, payee.ID, p)
	if err != nil {
		return nil, err
	}
	return &GetDebtBalanceOutput{
		PayeeID:  payee.ID,
		PeriodID: p.ID,
		Amount:   amount,
	}, nil
}
