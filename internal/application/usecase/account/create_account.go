// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/currency"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 100

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Name       string
	Currency   string
	Type       entity.AccountType
	ExternalID string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(store adapter.Store, lock adapter.MutationLock) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute performs the account creation. The account is appended after the
// existing ones in manual order.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	code, err := ParseCurrency(input.Currency)
	if err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be 'budget' or 'external'",
			domainerror.ErrInvalidAccountType,
		)
	}

	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := uc.store.Accounts().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	keys := make([]int, len(existing))
	for i, a := range existing {
		keys[i] = a.Order
	}

	account := entity.NewAccount(name, code, input.Type, ledger.NextOrderKey(keys))
	account.ExternalID = input.ExternalID
	if err := uc.store.Accounts().Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}

// ParseCurrency normalises and validates an ISO 4217 currency code.
func ParseCurrency(code string) (string, error) {
	normalised := strings.ToUpper(strings.TrimSpace(code))
	if _, err := currency.ParseISO(normalised); err != nil || len(normalised) != 3 {
		return "", domainerror.NewValidationError(
			domainerror.ErrCodeInvalidCurrency,
			fmt.Sprintf("%q is not an ISO 4217 currency", code),
			domainerror.ErrInvalidCurrency,
		)
	}
	return normalised, nil
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(trimmed) > MaxAccountNameLength {
		return "", domainerror.NewValidationError(
			domainerror.ErrCodeAccountNameRequired,
			fmt.Sprintf("account name must be 1 to %d characters", MaxAccountNameLength),
			domainerror.ErrAccountNameRequired,
		)
	}
	return trimmed, nil
}
