// Package payee contains payee-related use cases.
package payee

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// MaxPayeeNameLength is the maximum allowed length for payee names.
const MaxPayeeNameLength = 255

// CreatePayeeInput represents the input for payee creation.
type CreatePayeeInput struct {
	Name              string
	DefaultCategoryID *uuid.UUID
	DefaultAccountID  *uuid.UUID
}

// CreatePayeeOutput represents the output of payee creation.
type CreatePayeeOutput struct {
	Payee *entity.Payee
}

// CreatePayeeUseCase handles payee creation logic.
type CreatePayeeUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewCreatePayeeUseCase creates a new CreatePayeeUseCase instance.
func NewCreatePayeeUseCase(store adapter.Store, lock adapter.MutationLock) *CreatePayeeUseCase {
	return &CreatePayeeUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute performs the payee creation.
func (uc *CreatePayeeUseCase) Execute(ctx context.Context, input CreatePayeeInput) (*CreatePayeeOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := checkDefaults(ctx, uc.store, input.DefaultCategoryID, input.DefaultAccountID); err != nil {
		return nil, err
	}

	payee := entity.NewPayee(name, 0)
	payee.DefaultCategoryID = input.DefaultCategoryID
	payee.DefaultAccountID = input.DefaultAccountID
	if err := Insert(ctx, uc.store, payee); err != nil {
		return nil, err
	}

	return &CreatePayeeOutput{Payee: payee}, nil
}

// Pending builds an unsaved payee for a name, for callers that store it
// together with other changes through Insert.
func Pending(name string) (*entity.Payee, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	return entity.NewPayee(name, 0), nil
}

// Insert stores payees ordered after the existing ones. Callers hold the mutation lock.
func Insert(ctx context.Context, s adapter.Store, payees ...*entity.Payee) error {
	existing, err := s.Payees().FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load payees: %w", err)
	}
	keys := make([]int, len(existing), len(existing)+len(payees))
	for i, p := range existing {
		keys[i] = p.Order
	}
	for _, p := range payees {
		p.Order = ledger.NextOrderKey(keys)
		keys = append(keys, p.Order)
		if err := s.Payees().Create(ctx, p); err != nil {
			return fmt.Errorf("failed to create payee: %w", err)
		}
	}
	return nil
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(trimmed) > MaxPayeeNameLength {
		return "", domainerror.NewValidationError(
			domainerror.ErrCodePayeeNameRequired,
			fmt.Sprintf("payee name must be 1 to %d characters", MaxPayeeNameLength),
			domainerror.ErrPayeeNameRequired,
		)
	}
	return trimmed, nil
}

func checkDefaults(ctx context.Context, s adapter.Store, categoryID, accountID *uuid.UUID) error {
	if categoryID != nil {
		if _, err := lookup.Category(ctx, s.Categories(), *categoryID); err != nil {
			return err
		}
	}
	if accountID != nil {
		if _, err := lookup.Account(ctx, s.Accounts(), *accountID); err != nil {
			return err
		}
	}
	return nil
}
