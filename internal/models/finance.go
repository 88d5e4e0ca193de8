// ABOUTME: Transaction and Savings models for the finance slices.
// ABOUTME: Amounts are stored unsigned; the sign is implied by the type.
package models

import (
	"time"

	"github.com/google/uuid"
)

// TxType classifies a transaction as money in or money out.
type TxType string

const (
	TxIncome  TxType = "income"
	TxExpense TxType = "expense"
)

// IsValidTxType checks if a string is a valid transaction type.
func IsValidTxType(s string) bool {
	return s == string(TxIncome) || s == string(TxExpense)
}

// Transaction is a single income or expense entry.
type Transaction struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Amount   float64   `json:"amount"`
	Type     TxType    `json:"type"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
	Icon     string    `json:"icon,omitempty"`
}

// NewTransaction creates a transaction dated now. Negative amounts are
// stored as their magnitude; Type carries the sign.
func NewTransaction(name string, amount float64, txType TxType) *Transaction {
	if amount < 0 {
		amount = -amount
	}
	return &Transaction{
		ID:     uuid.New(),
		Name:   name,
		Amount: amount,
		Type:   txType,
		Date:   time.Now(),
	}
}

// Signed returns the amount with the sign implied by the type.
func (t *Transaction) Signed() float64 {
	if t.Type == TxExpense {
		return -t.Amount
	}
	return t.Amount
}

// NormalizeTransactions repairs a decoded transaction snapshot.
func NormalizeTransactions(txs []Transaction) []Transaction {
	if txs == nil {
		return []Transaction{}
	}
	for i := range txs {
		if txs[i].Amount < 0 {
			txs[i].Amount = -txs[i].Amount
		}
		if txs[i].Type != TxIncome && txs[i].Type != TxExpense {
			txs[i].Type = TxExpense
		}
	}
	return txs
}

// Savings is the singleton savings-goal record.
type Savings struct {
	CurrentAmount float64 `json:"current_amount"`
	GoalAmount    float64 `json:"goal_amount"`
}

// DefaultSavings returns the zero-progress savings record.
func DefaultSavings() Savings {
	return Savings{CurrentAmount: 0, GoalAmount: 1000}
}
