package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

var testLoc = time.UTC

func generatePeriods(fromYear, toYear int) []*entity.Period {
	var periods []*entity.Period
	for y := fromYear; y <= toYear; y++ {
		for m := 1; m <= 12; m++ {
			periods = append(periods, entity.NewPeriod(y, m, testLoc))
		}
	}
	return periods
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, testLoc)
}

func newTx(account *entity.Account, period *entity.Period, amount int64, income bool) *entity.Transaction {
	tx := entity.NewTransaction(account.ID, period.Start.AddDate(0, 0, 4), amount, account.Currency)
	tx.PeriodID = period.ID
	tx.Income = income
	return tx
}

func idPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
