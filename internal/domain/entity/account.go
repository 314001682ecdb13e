// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of real-world account linked by a user.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

// Account is a real-world checking or savings balance linked by the user,
// mutated by transfer actions. It is not owned by any single budget cycle.
type Account struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Type        AccountType
	Institution string
	Balance     decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAccount creates a new linked Account entity.
func NewAccount(userID uuid.UUID, name string, accountType AccountType, institution string, balance decimal.Decimal) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Type:        accountType,
		Institution: institution,
		Balance:     balance,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Deposit credits the account balance.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
	a.UpdatedAt = time.Now().UTC()
}

// Withdraw debits the account balance.
func (a *Account) Withdraw(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
	a.UpdatedAt = time.Now().UTC()
}
