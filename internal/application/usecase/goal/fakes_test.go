package goal

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

type fakeGoalRepository struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepository() *fakeGoalRepository {
	return &fakeGoalRepository{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *fakeGoalRepository) Create(_ context.Context, g *entity.Goal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	return g, nil
}

func (r *fakeGoalRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepository) FindActiveByUser(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID && g.Status == entity.GoalStatusActive {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepository) FindByName(_ context.Context, userID uuid.UUID, name string) (*entity.Goal, error) {
	for _, g := range r.goals {
		if g.UserID == userID && g.Name == name {
			return g, nil
		}
	}
	return nil, nil
}

func (r *fakeGoalRepository) Update(_ context.Context, g *entity.Goal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

type fakeCycleRepository struct {
	active        *entity.BudgetCycle
	findActiveErr error
}

func (r *fakeCycleRepository) Create(_ context.Context, _ *entity.BudgetCycle) error { return nil }

func (r *fakeCycleRepository) FindByID(_ context.Context, _ uuid.UUID) (*entity.BudgetCycle, error) {
	return r.active, nil
}

func (r *fakeCycleRepository) FindActiveByUser(_ context.Context, _ uuid.UUID) (*entity.BudgetCycle, error) {
	if r.findActiveErr != nil {
		return nil, r.findActiveErr
	}
	if r.active == nil {
		return nil, domainerror.NewCycleError(
			domainerror.ErrCodeNoActiveCycle,
			"no active cycle",
			domainerror.ErrNoActiveCycle,
		)
	}
	return r.active, nil
}

func (r *fakeCycleRepository) HasActiveCycle(_ context.Context, _ uuid.UUID) (bool, error) {
	return r.active != nil, nil
}

func (r *fakeCycleRepository) Update(_ context.Context, _ *entity.BudgetCycle) error { return nil }

func (r *fakeCycleRepository) ListCompletedByUser(_ context.Context, _ uuid.UUID) ([]*entity.BudgetCycle, error) {
	return nil, nil
}

func (r *fakeCycleRepository) AddItem(_ context.Context, _ *entity.BudgetItem) error    { return nil }
func (r *fakeCycleRepository) UpdateItem(_ context.Context, _ *entity.BudgetItem) error { return nil }
func (r *fakeCycleRepository) RemoveItem(_ context.Context, _ uuid.UUID) error          { return nil }

type fakeTransactionRepository struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepository) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
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

func (r *fakeTransactionRepository) FindByCycleAndCategory(_ context.Context, _ uuid.UUID, _ string) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeAdvisor struct {
	explanation string
	err         error
	calls       int
}

func (a *fakeAdvisor) ExplainPayoffPlan(_ context.Context, _ adapter.PayoffExplanationInput) (string, error) {
	a.calls++
	if a.err != nil {
		return "", a.err
	}
	return a.explanation, nil
}

var errAdvisorDown = errors.New("advisor unavailable")
