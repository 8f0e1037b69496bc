package exchange

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/payee"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// ExportTransactionsUseCase renders transactions as rows, header first.
type ExportTransactionsUseCase struct {
	store    adapter.Store
	settings ledger.Settings
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(store adapter.Store, settings ledger.Settings) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{store: store, settings: settings}
}

// Execute exports the transactions of one period, or all of them when periodID is nil.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, periodID *uuid.UUID) ([][]string, error) {
	txs, err := uc.store.Transactions().FindByFilter(ctx, adapter.TransactionFilter{PeriodID: periodID})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	names, err := loadNames(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	loc := uc.settings.Loc()
	rows := make([][]string, 0, len(txs)+1)
	rows = append(rows, TransactionHeader)
	for _, tx := range txs {
		rows = append(rows, []string{
			names.accounts[tx.AccountID],
			tx.Date.In(loc).Format(DateLayout),
			names.payee(tx.PayeeID),
			names.category(tx.CategoryID),
			tx.Memo,
			formatMinor(tx.Amount),
			tx.Currency,
			formatBool(tx.Income),
			formatBool(tx.Transfer),
			names.account(tx.ToAccountID),
			formatBool(tx.Expense),
			names.payee(tx.DebtorID),
			formatBool(tx.Recurring),
			string(tx.RecurrenceUnit),
		})
	}
	return rows, nil
}

// ImportTransactionsOutput summarises a transaction import.
type ImportTransactionsOutput struct {
	Imported      int
	PayeesCreated int
}

// ImportTransactionsUseCase creates transactions from rows. Accounts, categories
// and the destination account are resolved by exact name and must exist; payees
// and debtors are created when missing, in the commit of their row. Rows are
// created one at a time in order, so a failing row leaves the rows before it in
// place and nothing of its own.
//
// Rows carry no received amount, so a transfer between accounts of different
// currencies does not re-import.
type ImportTransactionsUseCase struct {
	store    adapter.Store
	createTx *transaction.CreateTransactionUseCase
	settings ledger.Settings
}

// NewImportTransactionsUseCase creates a new ImportTransactionsUseCase instance.
func NewImportTransactionsUseCase(
	store adapter.Store,
	createTx *transaction.CreateTransactionUseCase,
	settings ledger.Settings,
) *ImportTransactionsUseCase {
	return &ImportTransactionsUseCase{
		store:    store,
		createTx: createTx,
		settings: settings,
	}
}

// Execute imports the rows.
func (uc *ImportTransactionsUseCase) Execute(ctx context.Context, rows [][]string) (*ImportTransactionsOutput, error) {
	rows, err := dataRows(rows, TransactionHeader)
	if err != nil {
		return nil, err
	}

	output := &ImportTransactionsOutput{}
	for i, row := range rows {
		input, err := uc.parse(ctx, i, row)
		if err != nil {
			return output, err
		}
		if _, err := uc.createTx.Execute(ctx, input); err != nil {
			return output, fmt.Errorf("row %d: %w", i+1, err)
		}
		output.Imported++
		output.PayeesCreated += len(input.NewPayees)
	}
	return output, nil
}

func (uc *ImportTransactionsUseCase) parse(ctx context.Context, i int, row []string) (transaction.CreateTransactionInput, error) {
	var input transaction.CreateTransactionInput
	f := &input.Fields
	pending := make(map[string]*entity.Payee)
	payeeByName := func(name string) (*uuid.UUID, error) {
		if p, ok := pending[name]; ok {
			return &p.ID, nil
		}
		p, err := uc.store.Payees().FindByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to find payee: %w", err)
		}
		if p == nil {
			if p, err = payee.Pending(name); err != nil {
				return nil, err
			}
			pending[name] = p
			input.NewPayees = append(input.NewPayees, p)
		}
		return &p.ID, nil
	}

	account, err := uc.accountByName(ctx, i, row[0])
	if err != nil {
		return input, err
	}
	f.AccountID = account.ID

	f.Date, err = time.ParseInLocation(DateLayout, strings.TrimSpace(row[1]), uc.settings.Loc())
	if err != nil {
		return input, rowError(i, fmt.Sprintf("date %q is not yyyy-MM-dd", row[1]))
	}

	if name := strings.TrimSpace(row[2]); name != "" {
		if f.PayeeID, err = payeeByName(name); err != nil {
			return input, err
		}
	}

	if name := strings.TrimSpace(row[3]); name != "" {
		c, err := uc.store.Categories().FindByName(ctx, name)
		if err != nil {
			return input, fmt.Errorf("failed to find category: %w", err)
		}
		if c == nil {
			return input, domainerror.NewNotFoundError(
				domainerror.ErrCodeCategoryNotFound,
				fmt.Sprintf("row %d: category %q not found", i+1, name),
				domainerror.ErrCategoryNotFound,
			)
		}
		f.CategoryID = &c.ID
	}

	f.Memo = row[4]
	if f.Amount, err = parseMinor(row[5]); err != nil {
		return input, rowError(i, fmt.Sprintf("amount %q is not a number", row[5]))
	}
	if f.Amount < 0 {
		return input, rowError(i, "amount must not be negative")
	}
	f.Currency = strings.TrimSpace(row[6])

	flags := []struct {
		col int
		dst *bool
	}{{7, &f.Income}, {8, &f.Transfer}, {10, &f.Expense}, {12, &f.Recurring}}
	for _, flag := range flags {
		if *flag.dst, err = parseBool(row[flag.col]); err != nil {
			return input, rowError(i, fmt.Sprintf("%s %q is not a boolean", TransactionHeader[flag.col], row[flag.col]))
		}
	}

	if name := strings.TrimSpace(row[9]); name != "" {
		to, err := uc.accountByName(ctx, i, name)
		if err != nil {
			return input, err
		}
		f.ToAccountID = &to.ID
	}

	if name := strings.TrimSpace(row[11]); name != "" {
		if f.DebtorID, err = payeeByName(name); err != nil {
			return input, err
		}
	}

	f.RecurrenceUnit = entity.RecurrenceUnit(strings.TrimSpace(row[13]))
	f.Imported = true
	return input, nil
}

func (uc *ImportTransactionsUseCase) accountByName(ctx context.Context, i int, name string) (*entity.Account, error) {
	account, err := uc.store.Accounts().FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if account == nil {
		return nil, domainerror.NewNotFoundError(
			domainerror.ErrCodeAccountNotFound,
			fmt.Sprintf("row %d: account %q not found", i+1, name),
			domainerror.ErrAccountNotFound,
		)
	}
	return account, nil
}

type nameIndex struct {
	accounts   map[uuid.UUID]string
	categories map[uuid.UUID]string
	payees     map[uuid.UUID]string
}

func loadNames(ctx context.Context, s adapter.Store) (*nameIndex, error) {
	idx := &nameIndex{
		accounts:   make(map[uuid.UUID]string),
		categories: make(map[uuid.UUID]string),
		payees:     make(map[uuid.UUID]string),
	}
	accounts, err := s.Accounts().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, a := range accounts {
		idx.accounts[a.ID] = a.Name
	}
	categories, err := s.Categories().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	for _, c := range categories {
		idx.categories[c.ID] = c.Name
	}
	payees, err := s.Payees().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payees: %w", err)
	}
	for _, p := range payees {
		idx.payees[p.ID] = p.Name
	}
	return idx, nil
}

func (n *nameIndex) account(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return n.accounts[*id]
}

func (n *nameIndex) category(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return n.categories[*id]
}

func (n *nameIndex) payee(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return n.payees[*id]
}
