package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/application/usecase/usecasetest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	create := account.NewCreateAccountUseCase(env.Store, env.Lock)

	tests := []struct {
		name  string
		input account.CreateAccountInput
		kind  domainerror.ErrorKind
	}{
		{"valid", account.CreateAccountInput{Name: " Cash ", Currency: "eur", Type: entity.AccountTypeBudget}, ""},
		{"blank name", account.CreateAccountInput{Name: "  ", Currency: "EUR", Type: entity.AccountTypeBudget}, domainerror.KindValidation},
		{"unknown currency", account.CreateAccountInput{Name: "Cash", Currency: "EURO", Type: entity.AccountTypeBudget}, domainerror.KindValidation},
		{"unknown type", account.CreateAccountInput{Name: "Cash", Currency: "EUR", Type: "savings"}, domainerror.KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := create.Execute(ctx, tt.input)
			if tt.kind != "" {
				assert.True(t, domainerror.IsKind(err, tt.kind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Cash", out.Account.Name)
			assert.Equal(t, "EUR", out.Account.Currency)
		})
	}
}

func TestUpdateAccount_TypeLockedOnceUsed(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	cash := env.Account(t, "Cash", "EUR", entity.AccountTypeBudget)
	update := account.NewUpdateAccountUseCase(env.Store, env.Lock)
	external := entity.AccountTypeExternal
	budget := entity.AccountTypeBudget

	out, err := update.Execute(ctx, account.UpdateAccountInput{ID: cash.ID, Type: &external})
	require.NoError(t, err)
	assert.Equal(t, entity.AccountTypeExternal, out.Account.Type)

	_, err = transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings).
		Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
			AccountID: cash.ID,
			Date:      usecasetest.Date(2024, time.March, 1),
			Amount:    100,
		}})
	require.NoError(t, err)

	_, err = update.Execute(ctx, account.UpdateAccountInput{ID: cash.ID, Type: &budget})
	assert.True(t, domainerror.IsKind(err, domainerror.KindValidation))

	name := "Wallet"
	out, err = update.Execute(ctx, account.UpdateAccountInput{ID: cash.ID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Wallet", out.Account.Name)
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	env := usecasetest.New(t)
	cash := env.Account(t, "Cash", "EUR", entity.AccountTypeExternal)
	spare := env.Account(t, "Spare", "EUR", entity.AccountTypeExternal)
	march := env.Period(t, 2024, 3)
	_, err := env.Cache.Get(ctx, march, entity.AccountScope(spare.ID))
	require.NoError(t, err)

	_, err = transaction.NewCreateTransactionUseCase(env.Store, env.Lock, env.Updater, env.Settings).
		Execute(ctx, transaction.CreateTransactionInput{Fields: transaction.Fields{
			AccountID:   spare.ID,
			Date:        usecasetest.Date(2024, time.March, 1),
			Amount:      100,
			Transfer:    true,
			ToAccountID: &cash.ID,
		}})
	require.NoError(t, err)

	remove := account.NewDeleteAccountUseCase(env.Store, env.Lock)
	// Referenced as the destination of a transfer.
	err = remove.Execute(ctx, account.DeleteAccountInput{ID: cash.ID})
	assert.True(t, domainerror.IsKind(err, domainerror.KindIntegrityViolation))

	empty := env.Account(t, "Empty", "EUR", entity.AccountTypeBudget)
	_, err = env.Cache.Get(ctx, march, entity.AccountScope(empty.ID))
	require.NoError(t, err)
	require.NoError(t, remove.Execute(ctx, account.DeleteAccountInput{ID: empty.ID}))
	assert.Nil(t, env.Cached(t, march, entity.AccountScope(empty.ID)))

	err = remove.Execute(ctx, account.DeleteAccountInput{ID: empty.ID})
	assert.True(t, domainerror.IsKind(err, domainerror.KindNotFound))
}
