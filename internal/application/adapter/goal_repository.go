// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUser retrieves all goals for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindActiveByUser retrieves the user's active goals.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindByName retrieves a user's goal by its exact name.
	// Returns nil without error when absent.
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Goal, error)

	// Update saves changes to an existing goal.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete soft-deletes a goal.
	Delete(ctx context.Context, id uuid.UUID) error
}
