package cycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

func TestRemoveItemUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("should remove an unpaid item without touching the ledger", func(t *testing.T) {
		cycleRepo := newFakeCycleRepository()
		transactionRepo := &fakeTransactionRepository{}
		c := seedCycle(cycleRepo, userID, start, end)

		rent := mustDecimal(t, "800")
		item := entity.NewBudgetItem(c.ID, "Rent", entity.ItemTypeRecurring, entity.CategoryHousing, &rent, nil)
		c.ExpenseItems = append(c.ExpenseItems, item)

		uc := NewRemoveItemUseCase(cycleRepo, transactionRepo)
		output, err := uc.Execute(ctx, RemoveItemInput{UserID: userID, CycleID: c.ID, Key: item.Key()})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(output.Reversals) != 0 {
			t.Errorf("expected no reversals, got %d", len(output.Reversals))
		}
		if c.FindItem(item.Key()) != nil {
			t.Error("expected item to be removed from the plan")
		}
		if len(transactionRepo.transactions) != 0 {
			t.Errorf("expected empty ledger, got %d entries", len(transactionRepo.transactions))
		}
	})

	t.Run("should balance a paid item with a single net reversal", func(t *testing.T) {
		cycleRepo := newFakeCycleRepository()
		transactionRepo := &fakeTransactionRepository{}
		c := seedCycle(cycleRepo, userID, start, end)

		rent := mustDecimal(t, "800")
		item := entity.NewBudgetItem(c.ID, "Rent", entity.ItemTypeRecurring, entity.CategoryHousing, &rent, nil)
		c.ExpenseItems = append(c.ExpenseItems, item)

		settleUC := NewSettleItemUseCase(cycleRepo, transactionRepo)
		if _, err := settleUC.Execute(ctx, SettleItemInput{UserID: userID, CycleID: c.ID, Key: item.Key()}); err != nil {
			t.Fatalf("settle failed: %v", err)
		}

		uc := NewRemoveItemUseCase(cycleRepo, transactionRepo)
		output, err := uc.Execute(ctx, RemoveItemInput{UserID: userID, CycleID: c.ID, Key: item.Key()})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(output.Reversals) != 1 {
			t.Fatalf("expected 1 reversal, got %d", len(output.Reversals))
		}
		reversal := output.Reversals[0]
		if reversal.Type != entity.TransactionTypeIncome {
			t.Errorf("expected income reversal, got %s", reversal.Type)
		}
		if !reversal.Amount.Equal(rent) {
			t.Errorf("expected reversal amount 800, got %s", reversal.Amount)
		}
		if !reversal.IsReversal {
			t.Error("expected reversal flag to be set")
		}
		// Settle entry plus balancing entry; nothing deleted.
		if len(transactionRepo.transactions) != 2 {
			t.Errorf("expected 2 ledger entries, got %d", len(transactionRepo.transactions))
		}
	})

	t.Run("should not reverse anything after a settle and undo pair", func(t *testing.T) {
		cycleRepo := newFakeCycleRepository()
		transactionRepo := &fakeTransactionRepository{}
		c := seedCycle(cycleRepo, userID, start, end)

		rent := mustDecimal(t, "800")
		item := entity.NewBudgetItem(c.ID, "Rent", entity.ItemTypeRecurring, entity.CategoryHousing, &rent, nil)
		c.ExpenseItems = append(c.ExpenseItems, item)

		settleUC := NewSettleItemUseCase(cycleRepo, transactionRepo)
		undoUC := NewUndoSettleUseCase(cycleRepo, transactionRepo)
		if _, err := settleUC.Execute(ctx, SettleItemInput{UserID: userID, CycleID: c.ID, Key: item.Key()}); err != nil {
			t.Fatalf("settle failed: %v", err)
		}
		if _, err := undoUC.Execute(ctx, UndoSettleInput{UserID: userID, CycleID: c.ID, Key: item.Key()}); err != nil {
			t.Fatalf("undo failed: %v", err)
		}

		uc := NewRemoveItemUseCase(cycleRepo, transactionRepo)
		output, err := uc.Execute(ctx, RemoveItemInput{UserID: userID, CycleID: c.ID, Key: item.Key()})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(output.Reversals) != 0 {
			t.Errorf("expected no extra reversal for a net-zero item, got %d", len(output.Reversals))
		}
	})

	t.Run("should reject removing from a completed cycle", func(t *testing.T) {
		cycleRepo := newFakeCycleRepository()
		c := seedCycle(cycleRepo, userID, start, end)
		c.Close(entity.FinalSummary{ClosedAt: end})

		uc := NewRemoveItemUseCase(cycleRepo, &fakeTransactionRepository{})
		_, err := uc.Execute(ctx, RemoveItemInput{
			UserID:  userID,
			CycleID: c.ID,
			Key:     entity.ItemKey{Type: entity.ItemTypeRecurring, Category: entity.CategoryHousing, Label: "Rent"},
		})
		if !errors.Is(err, domainerror.ErrCycleCompleted) {
			t.Errorf("expected ErrCycleCompleted, got %v", err)
		}
	})
}
