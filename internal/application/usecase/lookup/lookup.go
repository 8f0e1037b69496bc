// Package lookup resolves referenced entities for use cases, turning missing
// references into not-found ledger errors.
package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// Account finds an account by id.
func Account(ctx context.Context, repo adapter.AccountRepository, id uuid.UUID) (*entity.Account, error) {
	account, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewNotFoundError(domainerror.ErrCodeAccountNotFound, fmt.Sprintf("account %s not found", id), err)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}

// Category finds a category by id.
func Category(ctx context.Context, repo adapter.CategoryRepository, id uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewNotFoundError(domainerror.ErrCodeCategoryNotFound, fmt.Sprintf("category %s not found", id), err)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// CategoryGroup finds a category group by id.
func CategoryGroup(ctx context.Context, repo adapter.CategoryGroupRepository, id uuid.UUID) (*entity.CategoryGroup, error) {
	group, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryGroupNotFound) {
			return nil, domainerror.NewNotFoundError(domainerror.ErrCodeCategoryGroupNotFound, fmt.Sprintf("category group %s not found", id), err)
		}
		return nil, fmt.Errorf("failed to find category group: %w", err)
	}
	return group, nil
}

// Payee finds a payee by id.
func Payee(ctx context.Context, repo adapter.PayeeRepository, id uuid.UUID) (*entity.Payee, error) {
	payee, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrPayeeNotFound) {
			return nil, domainerror.NewNotFoundError(domainerror.ErrCodePayeeNotFound, fmt.Sprintf("payee %s not found", id), err)
		}
		return nil, fmt.Errorf("failed to find payee: %w", err)
	}
	return payee, nil
}

// Debtor finds the payee referenced as a transaction's debtor.
func Debtor(ctx context.Context, repo adapter.PayeeRepository, id uuid.UUID) (*entity.Payee, error) {
	payee, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrPayeeNotFound) {
			return nil, domainerror.NewNotFoundError(domainerror.ErrCodeDebtorNotFound, fmt.Sprintf("debtor %s not found", id), domainerror.ErrDebtorNotFound)
		}
		return nil, fmt.Errorf("failed to find debtor: %w", err)
	}
	return payee, nil
}

// Period finds an indexed period by id.
func Period(idx *ledger.PeriodIndex, id uuid.UUID) (*entity.Period, error) {
	p, ok := idx.ByID(id)
	if !ok {
		return nil, domainerror.NewNotFoundError(domainerror.ErrCodePeriodNotFound, fmt.Sprintf("period %s not found", id), domainerror.ErrPeriodNotFound)
	}
	return p, nil
}
