// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a ledger entry.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeGoal    TransactionType = "goal"
)

// Transaction is an immutable, append-only ledger entry recording actual
// money movement. Amount is always positive; the direction is implied by
// Type. Reversals are modeled as new transactions with the opposite effect.
type Transaction struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	CycleID uuid.UUID
	Type    TransactionType
	Amount  decimal.Decimal
	// CategoryName links back to a BudgetItem label or a Goal name.
	CategoryName string
	// IsReversal marks balancing entries created to cancel out prior
	// transactions, e.g. when an already-paid item is removed.
	IsReversal bool
	// SourceItemID is set on entries recorded by settling a budget item
	// (and on their reversals). User-logged entries leave it nil, so the
	// two kinds stay distinguishable even when labels collide.
	SourceItemID *uuid.UUID
	TransactedAt time.Time
	CreatedAt    time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	cycleID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	categoryName string,
	transactedAt time.Time,
) *Transaction {
	return &Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		CycleID:      cycleID,
		Type:         transactionType,
		Amount:       amount,
		CategoryName: categoryName,
		TransactedAt: transactedAt,
		CreatedAt:    time.Now().UTC(),
	}
}

// NewReversalTransaction creates the balancing entry that cancels out the
// given transaction. The original is never edited or deleted.
func NewReversalTransaction(original *Transaction) *Transaction {
	reversal := NewTransaction(
		original.UserID,
		original.CycleID,
		OppositeTransactionType(original.Type),
		original.Amount,
		original.CategoryName,
		time.Now().UTC(),
	)
	reversal.IsReversal = true
	reversal.SourceItemID = original.SourceItemID
	return reversal
}

// OppositeTransactionType returns the type that cancels out t in the
// ledger. Goal movements reverse as goal movements.
func OppositeTransactionType(t TransactionType) TransactionType {
	switch t {
	case TransactionTypeIncome:
		return TransactionTypeExpense
	case TransactionTypeExpense:
		return TransactionTypeIncome
	default:
		return TransactionTypeGoal
	}
}
