// ABOUTME: Transaction and savings operations plus budget read helpers.
// ABOUTME: Transactions are prepended; savings is a singleton record.
package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/lifedash/internal/models"
)

// Transactions returns a copy of the transaction list, newest first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Transaction(nil), s.transactions...)
}

// AddTransaction prepends a transaction to the list.
func (s *Store) AddTransaction(tx *models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]models.Transaction{*tx}, s.transactions...)
	s.persist(sliceTransactions, s.transactions)
}

// UpdateTransaction merges a patch into the transaction with the given id.
// Unknown ids are a no-op.
func (s *Store) UpdateTransaction(id uuid.UUID, patch func(*models.Transaction)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			patch(&s.transactions[i])
			s.transactions[i].ID = id
			s.persist(sliceTransactions, s.transactions)
			return
		}
	}
}

// DeleteTransaction removes the transaction with the given id.
func (s *Store) DeleteTransaction(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.persist(sliceTransactions, s.transactions)
			return
		}
	}
}

// Savings returns the savings singleton.
func (s *Store) Savings() models.Savings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.savings
}

// SetSavings replaces the savings singleton.
func (s *Store) SetSavings(sv models.Savings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savings = sv
	s.persist(sliceSavings, s.savings)
}

// MonthBalance sums the signed amounts of all transactions in the given
// month, alongside the month's total expenses.
func (s *Store) MonthBalance(year int, month time.Month) (balance, expenses float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.transactions {
		if tx.Date.Year() != year || tx.Date.Month() != month {
			continue
		}
		balance += tx.Signed()
		if tx.Type == models.TxExpense {
			expenses += tx.Amount
		}
	}
	return balance, expenses
}
