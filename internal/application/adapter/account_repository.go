// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/domain/entity"
)

// AccountRepository defines the interface for linked account persistence.
type AccountRepository interface {
	// Create links a new account.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUser retrieves all accounts linked by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)

	// Update saves changes to a single account.
	Update(ctx context.Context, account *entity.Account) error

	// UpdatePair saves both sides of a transfer atomically.
	UpdatePair(ctx context.Context, from, to *entity.Account) error

	// Delete unlinks an account.
	Delete(ctx context.Context, id uuid.UUID) error
}
