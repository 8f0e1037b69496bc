package payee

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListPayeesUseCase lists payees in manual order.
type ListPayeesUseCase struct {
	payeeRepo adapter.PayeeRepository
}

// NewListPayeesUseCase creates a new ListPayeesUseCase instance.
func NewListPayeesUseCase(payeeRepo adapter.PayeeRepository) *ListPayeesUseCase {
	return &ListPayeesUseCase{payeeRepo: payeeRepo}
}

// Execute lists the payees.
func (uc *ListPayeesUseCase) Execute(ctx context.Context) ([]*entity.Payee, error) {
	payees, err := uc.payeeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payees: %w", err)
	}
	return payees, nil
}
