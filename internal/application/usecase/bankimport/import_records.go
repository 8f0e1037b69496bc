// Package bankimport maps records fetched from a bank connection into ledger
// transactions.
package bankimport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/payee"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/ledger"
)

// BookedDateLayout is the layout of Record.BookedDate.
const BookedDateLayout = "2006-01-02"

// StatusBooked marks a record the bank has settled.
const StatusBooked = "booked"

// Record is one transaction as reported by the bank connection.
// Amount is signed in major units: negative for money leaving the account.
type Record struct {
	AccountExternalID   string
	BookedDate          string
	Amount              decimal.Decimal
	Currency            string
	DisplayDescription  string
	OriginalDescription string
	ProviderID          string
	Status              string
}

// ImportInput represents the input for a bank import run.
type ImportInput struct {
	Records []Record
}

// ImportOutput summarises an import run.
type ImportOutput struct {
	Imported     int
	Duplicates   int
	OutOfWindow  int
	Rejected     int
	Transactions []*entity.Transaction
}

// ImportRecordsUseCase creates transactions for new bank records.
// Each record goes through CreateTransactionUseCase, so cached balances are kept
// in step exactly as for manual entry.
type ImportRecordsUseCase struct {
	store        adapter.Store
	lock         adapter.MutationLock
	clock        adapter.Clock
	createTx     *transaction.CreateTransactionUseCase
	settings     ledger.Settings
	lookbackDays int
}

// NewImportRecordsUseCase creates a new ImportRecordsUseCase instance.
func NewImportRecordsUseCase(
	store adapter.Store,
	lock adapter.MutationLock,
	clock adapter.Clock,
	createTx *transaction.CreateTransactionUseCase,
	settings ledger.Settings,
	lookbackDays int,
) *ImportRecordsUseCase {
	return &ImportRecordsUseCase{
		store:        store,
		lock:         lock,
		clock:        clock,
		createTx:     createTx,
		settings:     settings,
		lookbackDays: lookbackDays,
	}
}

// fingerprint identifies a transaction independently of the bank's ids.
type fingerprint struct {
	accountID uuid.UUID
	day       string
	payeeID   uuid.UUID
	amount    int64
	income    bool
}

// accountRun holds the per-account state of one import run.
type accountRun struct {
	account     *entity.Account
	windowStart time.Time
	seen        map[fingerprint]bool
}

// Execute imports the records. Records are handled in order; records older than
// the account's lookback window or already present are skipped. Records the
// ledger rejects (for example a date without a period) are logged and counted.
func (uc *ImportRecordsUseCase) Execute(ctx context.Context, input ImportInput) (*ImportOutput, error) {
	output := &ImportOutput{}
	runs := make(map[string]*accountRun)
	loc := uc.settings.Loc()

	for i, rec := range input.Records {
		run, ok := runs[rec.AccountExternalID]
		if !ok {
			var err error
			run, err = uc.startAccount(ctx, rec.AccountExternalID)
			if err != nil {
				return nil, err
			}
			runs[rec.AccountExternalID] = run
		}

		date, err := time.ParseInLocation(BookedDateLayout, rec.BookedDate, loc)
		if err != nil {
			return nil, domainerror.NewValidationError(
				domainerror.ErrCodeInvalidImportRecord,
				fmt.Sprintf("record %d: booked date %q is not yyyy-MM-dd", i, rec.BookedDate),
				domainerror.ErrInvalidImportRecord,
			)
		}
		if date.Before(run.windowStart) {
			output.OutOfWindow++
			continue
		}

		minor := rec.Amount.Shift(2).Round(0).IntPart()
		if minor == 0 {
			output.Rejected++
			continue
		}

		if rec.ProviderID != "" {
			n, err := uc.store.Transactions().Count(ctx, adapter.TransactionFilter{ExternalID: rec.ProviderID})
			if err != nil {
				return nil, fmt.Errorf("failed to check provider id: %w", err)
			}
			if n > 0 {
				output.Duplicates++
				continue
			}
		}

		p, isNew, err := uc.resolvePayee(ctx, rec)
		if err != nil {
			return nil, err
		}

		amount := minor
		if amount < 0 {
			amount = -amount
		}
		fp := fingerprint{
			accountID: run.account.ID,
			day:       date.Format(BookedDateLayout),
			amount:    amount,
			income:    minor > 0,
		}
		if p != nil {
			fp.payeeID = p.ID
		}
		if run.seen[fp] {
			output.Duplicates++
			continue
		}

		fields := transaction.Fields{
			AccountID:  run.account.ID,
			Date:       date,
			Amount:     amount,
			Currency:   rec.Currency,
			Income:     minor > 0,
			Memo:       memoFor(rec),
			ExternalID: rec.ProviderID,
			Imported:   true,
		}
		posted := strings.EqualFold(rec.Status, StatusBooked)
		fields.Posted = &posted
		if p != nil {
			fields.PayeeID = &p.ID
			fields.CategoryID = p.DefaultCategoryID
		}

		input := transaction.CreateTransactionInput{Fields: fields}
		if isNew {
			input.NewPayees = []*entity.Payee{p}
		}
		created, err := uc.createTx.Execute(ctx, input)
		if err != nil {
			if domainerror.KindOf(err) != "" {
				slog.Warn("Bank record rejected",
					"account", rec.AccountExternalID,
					"provider_id", rec.ProviderID,
					"error", err,
				)
				output.Rejected++
				continue
			}
			return nil, err
		}
		if isNew {
			slog.Debug("Payee created from bank record", "payee_id", p.ID, "name", p.Name)
		}
		output.Imported++
		output.Transactions = append(output.Transactions, created.Transaction)
	}

	for _, run := range runs {
		if err := uc.markRefreshed(ctx, run.account.ID); err != nil {
			return nil, err
		}
	}

	slog.Info("Bank import finished",
		"imported", output.Imported,
		"duplicates", output.Duplicates,
		"out_of_window", output.OutOfWindow,
		"rejected", output.Rejected,
	)
	return output, nil
}

// startAccount resolves the account and fingerprints the transactions already
// stored inside its lookback window. Transactions created by this run are not
// added, so two identical purchases on one day both import when the bank gives
// them distinct ids.
func (uc *ImportRecordsUseCase) startAccount(ctx context.Context, externalID string) (*accountRun, error) {
	account, err := uc.store.Accounts().FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewNotFoundError(
				domainerror.ErrCodeAccountNotFound,
				fmt.Sprintf("no account is linked to %q", externalID),
				err,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	from := uc.clock.Now()
	if account.LastRefresh != nil {
		from = *account.LastRefresh
	}
	from = from.In(uc.settings.Loc()).AddDate(0, 0, -uc.lookbackDays)
	windowStart := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, uc.settings.Loc())

	startUTC := windowStart.UTC()
	existing, err := uc.store.Transactions().FindByFilter(ctx, adapter.TransactionFilter{
		AccountID: &account.ID,
		StartDate: &startUTC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	seen := make(map[fingerprint]bool, len(existing))
	for _, tx := range existing {
		if tx.AccountID != account.ID || tx.Transfer {
			continue
		}
		fp := fingerprint{
			accountID: tx.AccountID,
			day:       tx.Date.In(uc.settings.Loc()).Format(BookedDateLayout),
			amount:    tx.Amount,
			income:    tx.Income,
		}
		if tx.PayeeID != nil {
			fp.payeeID = *tx.PayeeID
		}
		seen[fp] = true
	}

	return &accountRun{account: account, windowStart: windowStart, seen: seen}, nil
}

// resolvePayee matches the display description, then the original description,
// against payee names exactly. Names longer than a payee name may be are also
// tried in their truncated form, which is how an earlier import stored them.
// When nothing matches it returns an unsaved payee named after the first
// non-empty description, to be stored with the record's transaction.
func (uc *ImportRecordsUseCase) resolvePayee(ctx context.Context, rec Record) (*entity.Payee, bool, error) {
	display := strings.TrimSpace(rec.DisplayDescription)
	original := strings.TrimSpace(rec.OriginalDescription)

	candidates := make([]string, 0, 4)
	for _, name := range []string{display, original} {
		if name == "" {
			continue
		}
		candidates = append(candidates, name)
		if short := truncate(name, payee.MaxPayeeNameLength); short != name {
			candidates = append(candidates, short)
		}
	}
	for _, name := range candidates {
		p, err := uc.store.Payees().FindByName(ctx, name)
		if err != nil {
			return nil, false, fmt.Errorf("failed to find payee: %w", err)
		}
		if p != nil {
			return p, false, nil
		}
	}

	name := display
	if name == "" {
		name = original
	}
	if name == "" {
		return nil, false, nil
	}
	p, err := payee.Pending(truncate(name, payee.MaxPayeeNameLength))
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

func (uc *ImportRecordsUseCase) markRefreshed(ctx context.Context, accountID uuid.UUID) error {
	unlock, err := uc.lock.Lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	account, err := uc.store.Accounts().FindByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to reload account: %w", err)
	}
	now := uc.clock.Now().UTC()
	account.LastRefresh = &now
	account.UpdatedAt = now
	if err := uc.store.Accounts().Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update last refresh: %w", err)
	}
	return nil
}

func memoFor(rec Record) string {
	memo := strings.TrimSpace(rec.OriginalDescription)
	if memo == strings.TrimSpace(rec.DisplayDescription) {
		return ""
	}
	return truncate(memo, transaction.MaxMemoLength)
}

// truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut])
}
