// Package cycle contains budget-cycle-related use cases.
package cycle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/budget"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// ItemSpec describes one budget line supplied by the onboarding wizard or
// the add-item form. Amount is the raw decimal string from the client;
// empty means not yet pledged.
type ItemSpec struct {
	Label    string
	Type     entity.BudgetItemType
	Category entity.ExpenseCategory
	Amount   string
	DueDay   *int

	// Debt fields, collected only for loan and credit-card categories.
	PrincipalBalance string
	InterestRate     string
	MaturityDate     *time.Time
	SpendingLimit    string
}

// StartCycleInput represents the input for starting a budget cycle.
type StartCycleInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	// Items seeds the plan; usually produced by the onboarding wizard.
	Items []ItemSpec
}

// StartCycleOutput represents the output of starting a budget cycle.
type StartCycleOutput struct {
	Cycle *entity.BudgetCycle
}

// StartCycleUseCase handles budget cycle creation logic.
type StartCycleUseCase struct {
	cycleRepo adapter.CycleRepository
}

// NewStartCycleUseCase creates a new StartCycleUseCase instance.
func NewStartCycleUseCase(cycleRepo adapter.CycleRepository) *StartCycleUseCase {
	return &StartCycleUseCase{
		cycleRepo: cycleRepo,
	}
}

// Execute starts a new active cycle for the user. Exactly one active
// cycle may exist per user at a time.
func (uc *StartCycleUseCase) Execute(ctx context.Context, input StartCycleInput) (*StartCycleOutput, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, domainerror.NewCycleError(
			domainerror.ErrCodeInvalidCycleDates,
			"end date must be after start date",
			domainerror.ErrInvalidCycleDates,
		)
	}

	active, err := uc.cycleRepo.HasActiveCycle(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for active cycle: %w", err)
	}
	if active {
		return nil, domainerror.NewCycleError(
			domainerror.ErrCodeActiveCycleExists,
			"an active budget cycle already exists",
			domainerror.ErrActiveCycleExists,
		)
	}

	newCycle := entity.NewBudgetCycle(input.UserID, input.StartDate, input.EndDate)

	if err := uc.cycleRepo.Create(ctx, newCycle); err != nil {
		return nil, fmt.Errorf("failed to create cycle: %w", err)
	}

	for _, spec := range input.Items {
		item, err := buildItem(newCycle, spec)
		if err != nil {
			return nil, err
		}
		if err := uc.cycleRepo.AddItem(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to add item %q: %w", spec.Label, err)
		}
		attachItem(newCycle, item)
	}

	return &StartCycleOutput{Cycle: newCycle}, nil
}

// buildItem validates an ItemSpec against the cycle and converts it into
// a BudgetItem entity.
func buildItem(c *entity.BudgetCycle, spec ItemSpec) (*entity.BudgetItem, error) {
	if spec.Label == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingItemFields,
			"item label is required",
			nil,
		)
	}

	switch spec.Type {
	case entity.ItemTypeIncome, entity.ItemTypeRecurring, entity.ItemTypeVariable:
	default:
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidItemType,
			"type must be 'income', 'recurring', or 'variable'",
			domainerror.ErrInvalidItemType,
		)
	}

	if spec.DueDay != nil && (*spec.DueDay < 1 || *spec.DueDay > 31) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
		)
	}

	// Labels are the natural key: unique per type within a cycle.
	if c.HasItemWithLabel(spec.Type, spec.Label) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeDuplicateItemLabel,
			fmt.Sprintf("an item labeled %q already exists for this type", spec.Label),
			domainerror.ErrDuplicateItemLabel,
		)
	}

	amount, err := budget.ParseAmount(spec.Amount)
	if err != nil {
		return nil, err
	}

	item := entity.NewBudgetItem(c.ID, spec.Label, spec.Type, spec.Category, amount, spec.DueDay)

	if entity.IsDebtCategory(item.Category) {
		if item.PrincipalBalance, err = budget.ParseAmount(spec.PrincipalBalance); err != nil {
			return nil, err
		}
		if item.InterestRate, err = budget.ParseAmount(spec.InterestRate); err != nil {
			return nil, err
		}
		if item.SpendingLimit, err = budget.ParseAmount(spec.SpendingLimit); err != nil {
			return nil, err
		}
		item.MaturityDate = spec.MaturityDate
	}

	return item, nil
}

// attachItem places a freshly created item into the loaded cycle.
func attachItem(c *entity.BudgetCycle, item *entity.BudgetItem) {
	if item.Type == entity.ItemTypeIncome {
		c.IncomeItems = append(c.IncomeItems, item)
	} else {
		c.ExpenseItems = append(c.ExpenseItems, item)
	}
}
