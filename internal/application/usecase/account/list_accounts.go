package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListAccountsOutput represents the listed accounts in manual order.
type ListAccountsOutput struct {
	Accounts []*entity.Account
}

// ListAccountsUseCase lists accounts.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{accountRepo: accountRepo}
}

// Execute lists the accounts.
func (uc *ListAccountsUseCase) Execute(ctx context.Context) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return &ListAccountsOutput{Accounts: accounts}, nil
}

// GetAccountUseCase reads one account.
type GetAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(accountRepo adapter.AccountRepository) *GetAccountUseCase {
	return &GetAccountUseCase{accountRepo: accountRepo}
}

// Execute reads the account.
func (uc *GetAccountUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return lookup.Account(ctx, uc.accountRepo, id)
}
