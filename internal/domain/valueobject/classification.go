// Package valueobject contains domain value objects for the Check2Check system.
package valueobject

import (
	"github.com/check2check/backend/internal/domain/entity"
)

// CategoryGroup holds the recurring items of one expense category.
type CategoryGroup struct {
	Category entity.ExpenseCategory
	Items    []*entity.BudgetItem
}

// Classification is the result of partitioning a cycle's expense items.
// GroupedRecurring lists categories in alphabetical order, the order in
// which they are displayed.
type Classification struct {
	Recurring        []*entity.BudgetItem
	Variable         []*entity.BudgetItem
	GroupedRecurring []CategoryGroup
}

// GroupFor returns the recurring group for a category, or nil when the
// classification holds no items of that category.
func (c Classification) GroupFor(category entity.ExpenseCategory) *CategoryGroup {
	for i := range c.GroupedRecurring {
		if c.GroupedRecurring[i].Category == category {
			return &c.GroupedRecurring[i]
		}
	}
	return nil
}
