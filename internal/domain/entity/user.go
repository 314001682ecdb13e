// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user of the Check2Check system.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CurrencyCode string // ISO 4217, used only for display formatting
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// DefaultCurrencyCode is the currency applied when the user picks none.
const DefaultCurrencyCode = "USD"

// NewUser creates a new User entity.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CurrencyCode: DefaultCurrencyCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
