// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
	"github.com/check2check/backend/internal/integration/persistence/model"
)

// cycleRepository implements the adapter.CycleRepository interface.
type cycleRepository struct {
	db *gorm.DB
}

// NewCycleRepository creates a new budget cycle repository instance.
func NewCycleRepository(db *gorm.DB) adapter.CycleRepository {
	return &cycleRepository{
		db: db,
	}
}

// Create creates a new budget cycle in the database.
func (r *cycleRepository) Create(ctx context.Context, cycle *entity.BudgetCycle) error {
	cycleModel := model.BudgetCycleFromEntity(cycle)
	result := r.db.WithContext(ctx).Create(cycleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a cycle with its items by ID.
func (r *cycleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetCycle, error) {
	var cycleModel model.BudgetCycleModel
	result := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&cycleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewCycleError(
				domainerror.ErrCodeCycleNotFound,
				"budget cycle not found",
				domainerror.ErrCycleNotFound,
			)
		}
		return nil, result.Error
	}
	return cycleModel.ToEntity(), nil
}

// FindActiveByUser retrieves the user's single active cycle with its items.
func (r *cycleRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.BudgetCycle, error) {
	var cycleModel model.BudgetCycleModel
	result := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("user_id = ? AND status = ?", userID, string(entity.CycleStatusActive)).
		First(&cycleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewCycleError(
				domainerror.ErrCodeNoActiveCycle,
				"no active budget cycle",
				domainerror.ErrNoActiveCycle,
			)
		}
		return nil, result.Error
	}
	return cycleModel.ToEntity(), nil
}

// HasActiveCycle reports whether the user already has an active cycle.
func (r *cycleRepository) HasActiveCycle(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.BudgetCycleModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.CycleStatusActive)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update saves cycle-level changes (status, final summary).
func (r *cycleRepository) Update(ctx context.Context, cycle *entity.BudgetCycle) error {
	cycleModel := model.BudgetCycleFromEntity(cycle)
	result := r.db.WithContext(ctx).
		Model(&model.BudgetCycleModel{}).
		Where("id = ?", cycle.ID).
		Updates(map[string]interface{}{
			"status":           cycleModel.Status,
			"planned_income":   cycleModel.PlannedIncome,
			"actual_income":    cycleModel.ActualIncome,
			"planned_expenses": cycleModel.PlannedExpenses,
			"actual_expenses":  cycleModel.ActualExpenses,
			"actual_surplus":   cycleModel.ActualSurplus,
			"closed_at":        cycleModel.ClosedAt,
			"updated_at":       cycleModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCycleNotFound
	}
	return nil
}

// ListCompletedByUser retrieves the user's closed cycles, newest first.
func (r *cycleRepository) ListCompletedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetCycle, error) {
	var cycleModels []model.BudgetCycleModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.CycleStatusCompleted)).
		Order("end_date DESC").
		Find(&cycleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cycles := make([]*entity.BudgetCycle, len(cycleModels))
	for i := range cycleModels {
		cycles[i] = cycleModels[i].ToEntity()
	}
	return cycles, nil
}

// AddItem appends a budget item to a cycle.
func (r *cycleRepository) AddItem(ctx context.Context, item *entity.BudgetItem) error {
	itemModel := model.BudgetItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateItem saves changes to an existing budget item.
func (r *cycleRepository) UpdateItem(ctx context.Context, item *entity.BudgetItem) error {
	itemModel := model.BudgetItemFromEntity(item)
	result := r.db.WithContext(ctx).Save(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// RemoveItem deletes a budget item by ID.
func (r *cycleRepository) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetItemModel{}, "id = ?", itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrItemNotFound
	}
	return nil
}
