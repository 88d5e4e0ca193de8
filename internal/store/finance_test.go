// ABOUTME: Tests for transaction, savings, and month balance operations.
// ABOUTME: Amounts are unsigned in storage; Signed applies the type.
package store

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/lifedash/internal/models"
)

func txOn(name string, amount float64, txType models.TxType, date time.Time) *models.Transaction {
	tx := models.NewTransaction(name, amount, txType)
	tx.Date = date
	return tx
}

func TestAddTransactionPrepends(t *testing.T) {
	s := newTestStore(t, newMemStore())

	s.AddTransaction(models.NewTransaction("salary", 3000, models.TxIncome))
	s.AddTransaction(models.NewTransaction("rent", 1200, models.TxExpense))

	got := s.Transactions()
	if got[0].Name != "rent" || got[1].Name != "salary" {
		t.Fatalf("newest transaction should read first, got %+v", got)
	}
}

func TestNewTransactionStoresMagnitude(t *testing.T) {
	tx := models.NewTransaction("refund", -42.50, models.TxExpense)
	if tx.Amount != 42.50 {
		t.Fatalf("amount should be stored unsigned, got %v", tx.Amount)
	}
	if tx.Signed() != -42.50 {
		t.Fatalf("expense sign comes from the type, got %v", tx.Signed())
	}
}

func TestMonthBalance(t *testing.T) {
	s := newTestStore(t, newMemStore())

	aug := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	jul := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)

	s.AddTransaction(txOn("salary", 3000, models.TxIncome, aug))
	s.AddTransaction(txOn("rent", 1200, models.TxExpense, aug))
	s.AddTransaction(txOn("groceries", 300, models.TxExpense, aug))
	s.AddTransaction(txOn("old rent", 1200, models.TxExpense, jul))

	balance, expenses := s.MonthBalance(2026, time.August)
	if balance != 1500 {
		t.Errorf("balance = %v, want 1500", balance)
	}
	if expenses != 1500 {
		t.Errorf("expenses = %v, want 1500", expenses)
	}

	balance, expenses = s.MonthBalance(2026, time.June)
	if balance != 0 || expenses != 0 {
		t.Errorf("empty month should be zero, got %v/%v", balance, expenses)
	}
}

func TestUpdateTransactionPreservesID(t *testing.T) {
	s := newTestStore(t, newMemStore())
	tx := models.NewTransaction("coffe", 4, models.TxExpense)
	s.AddTransaction(tx)

	s.UpdateTransaction(tx.ID, func(cur *models.Transaction) {
		cur.Name = "coffee"
		cur.ID = uuid.New()
	})

	got := s.Transactions()[0]
	if got.Name != "coffee" || got.ID != tx.ID {
		t.Fatalf("patch should apply with id intact, got %+v", got)
	}
}

func TestDeleteTransaction(t *testing.T) {
	s := newTestStore(t, newMemStore())
	tx := models.NewTransaction("oops", 10, models.TxExpense)
	s.AddTransaction(tx)

	s.DeleteTransaction(tx.ID)
	if got := s.Transactions(); len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}

func TestSavingsRoundTrip(t *testing.T) {
	db := newMemStore()
	s := newTestStore(t, db)

	s.SetSavings(models.Savings{CurrentAmount: 400, GoalAmount: 5000})
	s.Close()

	s2 := newTestStore(t, db)
	if got := s2.Savings(); got.CurrentAmount != 400 || got.GoalAmount != 5000 {
		t.Fatalf("savings should survive restart, got %+v", got)
	}
}
