package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

func TestCategoryBalance(t *testing.T) {
	periods := generatePeriods(2024, 2024)
	march := periods[2]
	cash := entity.NewAccount("Cash", "EUR", entity.AccountTypeBudget, 0)
	groceries := entity.NewCategory("Groceries", entity.CategoryTypeExpense, nil, 0)
	other := entity.NewCategory("Other", entity.CategoryTypeExpense, nil, 1)
	v := NewValuation("EUR", []*entity.Account{cash}, nil)

	buy := newTx(cash, march, 2500, false)
	buy.CategoryID = idPtr(groceries.ID)
	elsewhere := newTx(cash, march, 700, false)
	elsewhere.CategoryID = idPtr(other.ID)
	txs := []*entity.Transaction{buy, elsewhere}

	first := v.CategoryBalance(groceries.ID, txs)
	if first.Minor() != -2500 {
		t.Errorf("expected -2500, got %d", first.Minor())
	}

	second := v.CategoryBalance(groceries.ID, txs)
	if !first.Sum.Equal(second.Sum) {
		t.Errorf("expected identical recompute, got %s then %s", first.Sum, second.Sum)
	}

	remaining := Remaining(BudgetTotal(groceries.ID, []*entity.Budget{
		entity.NewBudget(march.ID, groceries.ID, 10000),
	}), first.Minor())
	if remaining != 7500 {
		t.Errorf("expected remaining 7500, got %d", remaining)
	}
}

func TestCategoryBalance_RoundsAfterSummation(t *testing.T) {
	periods := generatePeriods(2024, 2024)
	march := periods[2]
	savings := entity.NewAccount("Savings", "SEK", entity.AccountTypeBudget, 0)
	food := entity.NewCategory("Food", entity.CategoryTypeExpense, nil, 0)
	rates := NewFxTable([]*entity.FxRate{entity.NewFxRate(march, "EUR", "SEK", 1100)})
	v := NewValuation("EUR", []*entity.Account{savings}, rates)

	// Each 5 ore is 0.4545 cents: rounding per transaction would give 0 each.
	var txs []*entity.Transaction
	for i := 0; i < 3; i++ {
		tx := newTx(savings, march, 5, false)
		tx.CategoryID = idPtr(food.ID)
		txs = append(txs, tx)
	}

	if got := v.CategoryBalance(food.ID, txs).Minor(); got != -1 {
		t.Errorf("expected -1 after summation, got %d", got)
	}
}

func TestPeriodActuals(t *testing.T) {
	periods := generatePeriods(2024, 2024)
	march := periods[2]
	cash := entity.NewAccount("Cash", "EUR", entity.AccountTypeBudget, 0)
	dollars := entity.NewAccount("Dollars", "USD", entity.AccountTypeBudget, 1)
	salary := entity.NewCategory("Salary", entity.CategoryTypeIncome, nil, 0)
	rent := entity.NewCategory("Rent", entity.CategoryTypeExpense, nil, 1)
	stocks := entity.NewCategory("Stocks", entity.CategoryTypeInvestment, nil, 2)
	categories := map[uuid.UUID]*entity.Category{salary.ID: salary, rent.ID: rent, stocks.ID: stocks}
	v := NewValuation("EUR", []*entity.Account{cash, dollars}, nil)

	paid := newTx(cash, march, 300000, true)
	paid.CategoryID = idPtr(salary.ID)
	rentTx := newTx(cash, march, 120000, false)
	rentTx.CategoryID = idPtr(rent.ID)
	refund := newTx(cash, march, 20000, true)
	refund.CategoryID = idPtr(rent.ID)
	invest := newTx(cash, march, 50000, false)
	invest.CategoryID = idPtr(stocks.ID)
	uncategorised := newTx(cash, march, 999, false)
	noRate := newTx(dollars, march, 1000, false)
	noRate.CategoryID = idPtr(rent.ID)

	actual, missing := v.PeriodActuals([]*entity.Transaction{paid, rentTx, refund, invest, uncategorised, noRate}, categories)
	if actual.Income != 300000 {
		t.Errorf("expected income 300000, got %d", actual.Income)
	}
	if actual.Expenses != 100000 {
		t.Errorf("expected expenses 100000, got %d", actual.Expenses)
	}
	if missing != 1 {
		t.Errorf("expected 1 missing rate, got %d", missing)
	}
}

func TestAccountBalance(t *testing.T) {
	periods := generatePeriods(2024, 2024)
	march := periods[2]
	cash := entity.NewAccount("Cash", "EUR", entity.AccountTypeBudget, 0)
	savings := entity.NewAccount("Savings", "SEK", entity.AccountTypeBudget, 1)

	salary := newTx(cash, march, 100000, true)
	salary.Date = day(2024, time.March, 1)
	shop := newTx(cash, march, 2500, false)
	shop.Date = time.Date(2024, time.March, 10, 18, 30, 0, 0, testLoc)
	move := newTx(cash, march, 10000, false)
	move.Date = day(2024, time.March, 15)
	move.Transfer = true
	move.ToAccountID = idPtr(savings.ID)
	received := int64(110000)
	move.AmountTo = &received
	debt := newTx(cash, march, 4000, false)
	debt.Date = day(2024, time.March, 20)
	debt.Expense = true

	txs := []*entity.Transaction{salary, shop, move, debt}

	tests := []struct {
		name    string
		account *entity.Account
		asOf    time.Time
		want    int64
	}{
		{name: "before any transaction", account: cash, asOf: day(2024, time.February, 28), want: 0},
		{name: "same day ignores time of day", account: cash, asOf: day(2024, time.March, 10), want: 97500},
		{name: "after transfer out", account: cash, asOf: day(2024, time.March, 15), want: 87500},
		{name: "debts leave the account", account: cash, asOf: day(2024, time.March, 31), want: 83500},
		{name: "transfer destination receives amount to", account: savings, asOf: day(2024, time.March, 31), want: 110000},
		{name: "destination before transfer", account: savings, asOf: day(2024, time.March, 14), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AccountBalance(tt.account.ID, txs, tt.asOf, testLoc); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestDebtBalance(t *testing.T) {
	periods := generatePeriods(2024, 2024)
	march := periods[2]
	cash := entity.NewAccount("Cash", "EUR", entity.AccountTypeBudget, 0)
	alice := entity.NewPayee("Alice", 0)
	bob := entity.NewPayee("Bob", 1)

	lent := newTx(cash, march, 4000, false)
	lent.Expense = true
	lent.DebtorID = idPtr(alice.ID)
	settled := newTx(cash, march, 4000, true)
	settled.Expense = true
	settled.DebtorID = idPtr(alice.ID)
	bobLent := newTx(cash, march, 1500, false)
	bobLent.Expense = true
	bobLent.DebtorID = idPtr(bob.ID)
	txs := []*entity.Transaction{lent, settled, bobLent}

	if got := DebtBalance(alice.ID, txs, march.End(), testLoc); got != 0 {
		t.Errorf("expected Alice to owe 0, got %d", got)
	}
	if got := DebtBalance(bob.ID, txs, march.End(), testLoc); got != 1500 {
		t.Errorf("expected Bob to owe 1500, got %d", got)
	}
	if got := DebtBalance(bob.ID, txs, periods[1].End(), testLoc); got != 0 {
		t.Errorf("expected no debt before March, got %d", got)
	}
}

func TestBudgetTotal_Accumulates(t *testing.T) {
	periods := generatePeriods(2024, 2024)
	march := periods[2]
	food := entity.NewCategory("Food", entity.CategoryTypeExpense, nil, 0)
	salary := entity.NewCategory("Salary", entity.CategoryTypeIncome, nil, 1)

	budgets := []*entity.Budget{
		entity.NewBudget(march.ID, food.ID, 1000),
		entity.NewBudget(march.ID, food.ID, 500),
		entity.NewBudget(march.ID, food.ID, -200),
		entity.NewBudget(march.ID, salary.ID, 250000),
	}

	if got := BudgetTotal(food.ID, budgets); got != 1300 {
		t.Errorf("expected 1300, got %d", got)
	}

	income, expenses := PeriodBudgets(budgets, map[uuid.UUID]*entity.Category{food.ID: food, salary.ID: salary})
	if income != 250000 || expenses != 1300 {
		t.Errorf("expected income 250000 and expenses 1300, got %d and %d", income, expenses)
	}
}
