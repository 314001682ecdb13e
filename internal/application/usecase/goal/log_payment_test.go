package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

func mustDecimal(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", raw, err)
	}
	return d
}

func activeCycleFor(userID uuid.UUID) *entity.BudgetCycle {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return entity.NewBudgetCycle(userID, start, start.AddDate(0, 1, 0))
}

func TestLogPaymentUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("should pay down a debt goal and record a goal entry", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		cycleRepo := &fakeCycleRepository{active: activeCycleFor(userID)}
		transactionRepo := &fakeTransactionRepository{}

		rate := mustDecimal(t, "22.9")
		g := entity.NewDebtGoal(userID, "Visa", mustDecimal(t, "1000"), &rate, entity.StrategyAvalanche)
		goalRepo.goals[g.ID] = g

		uc := NewLogPaymentUseCase(goalRepo, cycleRepo, transactionRepo)
		output, err := uc.Execute(ctx, LogPaymentInput{UserID: userID, GoalID: g.ID, Amount: "300"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !output.Applied.Equal(mustDecimal(t, "300")) {
			t.Errorf("expected applied 300, got %s", output.Applied)
		}
		if !output.Goal.CurrentAmount.Equal(mustDecimal(t, "700")) {
			t.Errorf("expected remaining 700, got %s", output.Goal.CurrentAmount)
		}
		if output.Goal.Status != entity.GoalStatusActive {
			t.Errorf("expected goal to stay active, got %s", output.Goal.Status)
		}
		if output.Transaction == nil {
			t.Fatal("expected a ledger entry")
		}
		if output.Transaction.Type != entity.TransactionTypeGoal {
			t.Errorf("expected goal-type entry, got %s", output.Transaction.Type)
		}
		if output.Transaction.CategoryName != "Pay Off: Visa" {
			t.Errorf("unexpected category name %q", output.Transaction.CategoryName)
		}
	})

	t.Run("should cap the payment at the remaining need", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		cycleRepo := &fakeCycleRepository{active: activeCycleFor(userID)}
		transactionRepo := &fakeTransactionRepository{}

		g := entity.NewDebtGoal(userID, "Visa", mustDecimal(t, "120"), nil, entity.StrategySnowball)
		goalRepo.goals[g.ID] = g

		uc := NewLogPaymentUseCase(goalRepo, cycleRepo, transactionRepo)
		output, err := uc.Execute(ctx, LogPaymentInput{UserID: userID, GoalID: g.ID, Amount: "500"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !output.Applied.Equal(mustDecimal(t, "120")) {
			t.Errorf("expected applied capped at 120, got %s", output.Applied)
		}
		// Only the applied amount lands in the ledger.
		if !output.Transaction.Amount.Equal(mustDecimal(t, "120")) {
			t.Errorf("expected ledger amount 120, got %s", output.Transaction.Amount)
		}
	})

	t.Run("should complete the goal when the need reaches zero", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		cycleRepo := &fakeCycleRepository{active: activeCycleFor(userID)}

		g := entity.NewDebtGoal(userID, "Visa", mustDecimal(t, "250"), nil, entity.StrategyAvalanche)
		goalRepo.goals[g.ID] = g

		uc := NewLogPaymentUseCase(goalRepo, cycleRepo, &fakeTransactionRepository{})
		output, err := uc.Execute(ctx, LogPaymentInput{UserID: userID, GoalID: g.ID, Amount: "250"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.Goal.Status != entity.GoalStatusCompleted {
			t.Errorf("expected completed status, got %s", output.Goal.Status)
		}
		if output.Goal.CompletedAt == nil {
			t.Error("expected CompletedAt to be set")
		}
	})

	t.Run("should grow a savings goal toward its target", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		cycleRepo := &fakeCycleRepository{active: activeCycleFor(userID)}

		g := entity.NewSavingsGoal(userID, "Emergency Fund", mustDecimal(t, "3000"))
		goalRepo.goals[g.ID] = g

		uc := NewLogPaymentUseCase(goalRepo, cycleRepo, &fakeTransactionRepository{})
		output, err := uc.Execute(ctx, LogPaymentInput{UserID: userID, GoalID: g.ID, Amount: "400"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !output.Goal.CurrentAmount.Equal(mustDecimal(t, "400")) {
			t.Errorf("expected saved 400, got %s", output.Goal.CurrentAmount)
		}
		if output.Goal.Status != entity.GoalStatusActive {
			t.Errorf("expected goal to stay active, got %s", output.Goal.Status)
		}
	})

	t.Run("should reject payments against a completed goal", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		cycleRepo := &fakeCycleRepository{active: activeCycleFor(userID)}

		g := entity.NewDebtGoal(userID, "Visa", mustDecimal(t, "100"), nil, entity.StrategyAvalanche)
		g.ApplyPayment(mustDecimal(t, "100"))
		goalRepo.goals[g.ID] = g

		uc := NewLogPaymentUseCase(goalRepo, cycleRepo, &fakeTransactionRepository{})
		_, err := uc.Execute(ctx, LogPaymentInput{UserID: userID, GoalID: g.ID, Amount: "10"})
		if !errors.Is(err, domainerror.ErrGoalCompleted) {
			t.Errorf("expected ErrGoalCompleted, got %v", err)
		}
	})

	t.Run("should update the goal even without an active cycle", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		cycleRepo := &fakeCycleRepository{}

		g := entity.NewDebtGoal(userID, "Visa", mustDecimal(t, "1000"), nil, entity.StrategyAvalanche)
		goalRepo.goals[g.ID] = g

		uc := NewLogPaymentUseCase(goalRepo, cycleRepo, &fakeTransactionRepository{})
		output, err := uc.Execute(ctx, LogPaymentInput{UserID: userID, GoalID: g.ID, Amount: "100"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Transaction != nil {
			t.Error("expected no ledger entry without an active cycle")
		}
		if !output.Goal.CurrentAmount.Equal(mustDecimal(t, "900")) {
			t.Errorf("expected remaining 900, got %s", output.Goal.CurrentAmount)
		}
	})

	t.Run("should surface cycle lookup failures instead of skipping the ledger", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		lookupErr := errors.New("connection refused")
		cycleRepo := &fakeCycleRepository{findActiveErr: lookupErr}

		g := entity.NewDebtGoal(userID, "Visa", mustDecimal(t, "1000"), nil, entity.StrategyAvalanche)
		goalRepo.goals[g.ID] = g

		uc := NewLogPaymentUseCase(goalRepo, cycleRepo, &fakeTransactionRepository{})
		_, err := uc.Execute(ctx, LogPaymentInput{UserID: userID, GoalID: g.ID, Amount: "100"})
		if !errors.Is(err, lookupErr) {
			t.Errorf("expected the lookup failure to propagate, got %v", err)
		}
	})

	t.Run("should reject another user's goal", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		g := entity.NewDebtGoal(userID, "Visa", mustDecimal(t, "1000"), nil, entity.StrategyAvalanche)
		goalRepo.goals[g.ID] = g

		uc := NewLogPaymentUseCase(goalRepo, &fakeCycleRepository{}, &fakeTransactionRepository{})
		_, err := uc.Execute(ctx, LogPaymentInput{UserID: uuid.New(), GoalID: g.ID, Amount: "10"})
		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Errorf("expected ErrUnauthorizedGoalAccess, got %v", err)
		}
	})
}

func TestWithdrawUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("should withdraw from a savings goal", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		cycleRepo := &fakeCycleRepository{active: activeCycleFor(userID)}
		transactionRepo := &fakeTransactionRepository{}

		g := entity.NewSavingsGoal(userID, "Emergency Fund", mustDecimal(t, "3000"))
		g.ApplyPayment(mustDecimal(t, "500"))
		goalRepo.goals[g.ID] = g

		uc := NewWithdrawUseCase(goalRepo, cycleRepo, transactionRepo)
		output, err := uc.Execute(ctx, WithdrawInput{UserID: userID, GoalID: g.ID, Amount: "200"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !output.Goal.CurrentAmount.Equal(mustDecimal(t, "300")) {
			t.Errorf("expected saved 300, got %s", output.Goal.CurrentAmount)
		}
		if output.Transaction == nil || !output.Transaction.IsReversal {
			t.Error("expected a reversal-flagged goal entry")
		}
	})

	t.Run("should reject withdrawing from a debt goal", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		g := entity.NewDebtGoal(userID, "Visa", mustDecimal(t, "1000"), nil, entity.StrategyAvalanche)
		goalRepo.goals[g.ID] = g

		uc := NewWithdrawUseCase(goalRepo, &fakeCycleRepository{}, &fakeTransactionRepository{})
		_, err := uc.Execute(ctx, WithdrawInput{UserID: userID, GoalID: g.ID, Amount: "10"})
		if !errors.Is(err, domainerror.ErrNotSavingsGoal) {
			t.Errorf("expected ErrNotSavingsGoal, got %v", err)
		}
	})

	t.Run("should reject overdrawing", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		g := entity.NewSavingsGoal(userID, "Emergency Fund", mustDecimal(t, "3000"))
		g.ApplyPayment(mustDecimal(t, "100"))
		goalRepo.goals[g.ID] = g

		uc := NewWithdrawUseCase(goalRepo, &fakeCycleRepository{}, &fakeTransactionRepository{})
		_, err := uc.Execute(ctx, WithdrawInput{UserID: userID, GoalID: g.ID, Amount: "101"})
		if !errors.Is(err, domainerror.ErrInsufficientSavings) {
			t.Errorf("expected ErrInsufficientSavings, got %v", err)
		}
	})

	t.Run("should surface cycle lookup failures instead of skipping the ledger", func(t *testing.T) {
		goalRepo := newFakeGoalRepository()
		lookupErr := errors.New("connection refused")
		g := entity.NewSavingsGoal(userID, "Emergency Fund", mustDecimal(t, "3000"))
		g.ApplyPayment(mustDecimal(t, "500"))
		goalRepo.goals[g.ID] = g

		uc := NewWithdrawUseCase(goalRepo, &fakeCycleRepository{findActiveErr: lookupErr}, &fakeTransactionRepository{})
		_, err := uc.Execute(ctx, WithdrawInput{UserID: userID, GoalID: g.ID, Amount: "100"})
		if !errors.Is(err, lookupErr) {
			t.Errorf("expected the lookup failure to propagate, got %v", err)
		}
	})
}
