// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/domain/entity"
)

// CycleRepository defines the interface for budget cycle persistence operations.
type CycleRepository interface {
	// Create creates a new budget cycle.
	Create(ctx context.Context, cycle *entity.BudgetCycle) error

	// FindByID retrieves a cycle, with its items loaded, by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetCycle, error)

	// FindActiveByUser retrieves the user's single active cycle, with its
	// items loaded. Returns domain ErrNoActiveCycle when none exists.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.BudgetCycle, error)

	// HasActiveCycle reports whether the user already has an active cycle.
	HasActiveCycle(ctx context.Context, userID uuid.UUID) (bool, error)

	// Update saves cycle-level changes (status, final summary).
	Update(ctx context.Context, cycle *entity.BudgetCycle) error

	// ListCompletedByUser retrieves the user's closed cycles, newest first.
	ListCompletedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetCycle, error)

	// AddItem appends a budget item to a cycle.
	AddItem(ctx context.Context, item *entity.BudgetItem) error

	// UpdateItem saves changes to an existing budget item.
	UpdateItem(ctx context.Context, item *entity.BudgetItem) error

	// RemoveItem deletes a budget item. Only items without recorded
	// payments are physically removed; paid items are cancelled by
	// balancing transactions instead.
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
}
