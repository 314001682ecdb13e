package cycle

import (
	"context"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// fakeCycleRepository is an in-memory CycleRepository for use case tests.
type fakeCycleRepository struct {
	cycles map[uuid.UUID]*entity.BudgetCycle
}

func newFakeCycleRepository() *fakeCycleRepository {
	return &fakeCycleRepository{cycles: make(map[uuid.UUID]*entity.BudgetCycle)}
}

func (r *fakeCycleRepository) Create(_ context.Context, c *entity.BudgetCycle) error {
	r.cycles[c.ID] = c
	return nil
}

func (r *fakeCycleRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.BudgetCycle, error) {
	c, ok := r.cycles[id]
	if !ok {
		return nil, domainerror.NewCycleError(
			domainerror.ErrCodeCycleNotFound,
			"cycle not found",
			domainerror.ErrCycleNotFound,
		)
	}
	return c, nil
}

func (r *fakeCycleRepository) FindActiveByUser(_ context.Context, userID uuid.UUID) (*entity.BudgetCycle, error) {
	for _, c := range r.cycles {
		if c.UserID == userID && c.IsActive() {
			return c, nil
		}
	}
	return nil, domainerror.NewCycleError(
		domainerror.ErrCodeNoActiveCycle,
		"no active cycle",
		domainerror.ErrNoActiveCycle,
	)
}

func (r *fakeCycleRepository) HasActiveCycle(_ context.Context, userID uuid.UUID) (bool, error) {
	for _, c := range r.cycles {
		if c.UserID == userID && c.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCycleRepository) Update(_ context.Context, c *entity.BudgetCycle) error {
	r.cycles[c.ID] = c
	return nil
}

func (r *fakeCycleRepository) ListCompletedByUser(_ context.Context, userID uuid.UUID) ([]*entity.BudgetCycle, error) {
	var out []*entity.BudgetCycle
	for _, c := range r.cycles {
		if c.UserID == userID && !c.IsActive() {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCycleRepository) AddItem(_ context.Context, item *entity.BudgetItem) error {
	c := r.cycles[item.CycleID]
	if item.Type == entity.ItemTypeIncome {
		c.IncomeItems = append(c.IncomeItems, item)
	} else {
		c.ExpenseItems = append(c.ExpenseItems, item)
	}
	return nil
}

func (r *fakeCycleRepository) UpdateItem(_ context.Context, _ *entity.BudgetItem) error {
	// Items are shared pointers with the stored cycle; nothing to do.
	return nil
}

func (r *fakeCycleRepository) RemoveItem(_ context.Context, itemID uuid.UUID) error {
	for _, c := range r.cycles {
		c.IncomeItems = withoutItem(c.IncomeItems, itemID)
		c.ExpenseItems = withoutItem(c.ExpenseItems, itemID)
	}
	return nil
}

func withoutItem(items []*entity.BudgetItem, itemID uuid.UUID) []*entity.BudgetItem {
	out := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			out = append(out, item)
		}
	}
	return out
}

// fakeTransactionRepository is an in-memory TransactionRepository.
type fakeTransactionRepository struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, transaction := range r.transactions {
		if transaction.ID == id {
			return transaction, nil
		}
	}
	return nil, domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}

func (r *fakeTransactionRepository) FindByCycle(_ context.Context, cycleID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, transaction := range r.transactions {
		if transaction.CycleID == cycleID {
			out = append(out, transaction)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepository) FindByCycleAndCategory(_ context.Context, cycleID uuid.UUID, categoryName string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, transaction := range r.transactions {
		if transaction.CycleID == cycleID && transaction.CategoryName == categoryName {
			out = append(out, transaction)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	for i, transaction := range r.transactions {
		if transaction.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}
