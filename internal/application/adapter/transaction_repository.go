// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger persistence.
// The ledger is append-only: there is deliberately no update operation,
// and Delete exists solely for owner-gated remove actions.
type TransactionRepository interface {
	// Create appends a new transaction to the ledger.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByCycle retrieves all transactions of a cycle in insertion order.
	FindByCycle(ctx context.Context, cycleID uuid.UUID) ([]*entity.Transaction, error)

	// FindByCycleAndCategory retrieves a cycle's transactions matching a
	// category name (an item label or goal name).
	FindByCycleAndCategory(ctx context.Context, cycleID uuid.UUID, categoryName string) ([]*entity.Transaction, error)

	// Delete removes a transaction. Owner-gated; ordinary reversals are
	// modeled as new balancing transactions instead.
	Delete(ctx context.Context, id uuid.UUID) error
}
