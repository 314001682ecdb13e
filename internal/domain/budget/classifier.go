// Package budget implements the pure budget computations: expense
// classification, cycle aggregation, and debt payoff planning. Every
// function here is a pure function of its inputs so that repeated or
// concurrent calls are safe and re-derivable at any time.
package budget

import (
	"sort"

	"github.com/check2check/backend/internal/domain/entity"
	"github.com/check2check/backend/internal/domain/valueobject"
)

// ClassifyExpenses partitions a cycle's flat expense list into recurring
// and variable items, then groups the recurring items by category with
// alphabetical category ordering. Items with an unknown or missing
// category are treated as "other". Items without a pledged amount are
// kept; they render in an "input pending" state.
func ClassifyExpenses(items []*entity.BudgetItem) valueobject.Classification {
	classification := valueobject.Classification{
		Recurring: make([]*entity.BudgetItem, 0, len(items)),
		Variable:  make([]*entity.BudgetItem, 0),
	}

	byCategory := make(map[entity.ExpenseCategory][]*entity.BudgetItem)

	for _, item := range items {
		switch item.Type {
		case entity.ItemTypeVariable:
			classification.Variable = append(classification.Variable, item)
		case entity.ItemTypeRecurring:
			classification.Recurring = append(classification.Recurring, item)
			category := entity.NormalizeCategory(item.Category)
			byCategory[category] = append(byCategory[category], item)
		}
	}

	categories := make([]entity.ExpenseCategory, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i] < categories[j]
	})

	classification.GroupedRecurring = make([]valueobject.CategoryGroup, 0, len(categories))
	for _, category := range categories {
		classification.GroupedRecurring = append(classification.GroupedRecurring, valueobject.CategoryGroup{
			Category: category,
			Items:    byCategory[category],
		})
	}

	return classification
}
