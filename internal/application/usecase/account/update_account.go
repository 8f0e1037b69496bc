package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpdateAccountInput represents the input for an account update.
// Nil fields are left unchanged. The currency cannot be changed.
type UpdateAccountInput struct {
	ID                uuid.UUID
	Name              *string
	Type              *entity.AccountType
	ExternalID        *string
	ReconciledBalance *int64
}

// UpdateAccountOutput represents the output of an account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(store adapter.Store, lock adapter.MutationLock) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute performs the update. The type of an account with transactions is fixed,
// since it decides how those transactions count towards the budget.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	account, err := lookup.Account(ctx, uc.store.Accounts(), input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}
		account.Name = name
	}
	if input.Type != nil && *input.Type != account.Type {
		if !input.Type.IsValid() {
			return nil, domainerror.NewValidationError(
				domainerror.ErrCodeInvalidAccountType,
				"account type must be 'budget' or 'external'",
				domainerror.ErrInvalidAccountType,
			)
		}
		count, err := uc.store.Transactions().Count(ctx, adapter.TransactionFilter{AccountID: &account.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to count account transactions: %w", err)
		}
		if count > 0 {
			return nil, domainerror.NewValidationError(
				domainerror.ErrCodeAccountTypeLocked,
				"the type of an account with transactions cannot change",
				domainerror.ErrAccountTypeLocked,
			)
		}
		account.Type = *input.Type
	}
	if input.ExternalID != nil {
		account.ExternalID = *input.ExternalID
	}
	if input.ReconciledBalance != nil {
		v := *input.ReconciledBalance
		account.ReconciledBalance = &v
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.store.Accounts().Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return &UpdateAccountOutput{Account: account}, nil
}
