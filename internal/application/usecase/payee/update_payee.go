package payee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/lookup"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// UpdatePayeeInput represents the input for a payee update. Nil fields are left
// unchanged; the defaults are always replaced.
type UpdatePayeeInput struct {
	ID                uuid.UUID
	Name              *string
	DefaultCategoryID *uuid.UUID
	DefaultAccountID  *uuid.UUID
}

// UpdatePayeeUseCase handles payee update logic.
type UpdatePayeeUseCase struct {
	store adapter.Store
	lock  adapter.MutationLock
}

// NewUpdatePayeeUseCase creates a new UpdatePayeeUseCase instance.
func NewUpdatePayeeUseCase(store adapter.Store, lock adapter.MutationLock) *UpdatePayeeUseCase {
	return &UpdatePayeeUseCase{
		store: store,
		lock:  lock,
	}
}

// Execute performs the update.
func (uc *UpdatePayeeUseCase) Execute(ctx context.Context, input UpdatePayeeInput) (*entity.Payee, error) {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	payee, err := lookup.Payee(ctx, uc.store.Payees(), input.ID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}
		payee.Name = name
	}
	if err := checkDefaults(ctx, uc.store, input.DefaultCategoryID, input.DefaultAccountID); err != nil {
		return nil, err
	}
	payee.DefaultCategoryID = input.DefaultCategoryID
	payee.DefaultAccountID = input.DefaultAccountID
	payee.UpdatedAt = time.Now().UTC()

	if err := uc.store.Payees().Update(ctx, payee); err != nil {
		return nil, fmt.Errorf("failed to update payee: %w", err)
	}
	return payee, nil
}
