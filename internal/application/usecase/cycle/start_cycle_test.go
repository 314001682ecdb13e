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

func TestStartCycleUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)

	t.Run("should create a cycle seeded with wizard items", func(t *testing.T) {
		cycleRepo := newFakeCycleRepository()
		uc := NewStartCycleUseCase(cycleRepo)

		dueDay := 5
		output, err := uc.Execute(ctx, StartCycleInput{
			UserID:    userID,
			StartDate: start,
			EndDate:   end,
			Items: []ItemSpec{
				{Label: "Salary", Type: entity.ItemTypeIncome, Amount: "2500"},
				{Label: "Rent", Type: entity.ItemTypeRecurring, Category: entity.CategoryHousing, Amount: "900", DueDay: &dueDay},
				{Label: "Groceries", Type: entity.ItemTypeVariable, Category: entity.CategoryVariable, Amount: ""},
				{
					Label: "Car Loan", Type: entity.ItemTypeRecurring, Category: entity.CategoryLoan,
					Amount: "310", PrincipalBalance: "11200", InterestRate: "6.4",
				},
			},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		c := output.Cycle
		if !c.IsActive() {
			t.Error("expected new cycle to be active")
		}
		if len(c.IncomeItems) != 1 || len(c.ExpenseItems) != 3 {
			t.Fatalf("expected 1 income and 3 expense items, got %d and %d", len(c.IncomeItems), len(c.ExpenseItems))
		}

		groceries := c.FindItem(entity.ItemKey{Type: entity.ItemTypeVariable, Category: entity.CategoryVariable, Label: "Groceries"})
		if groceries == nil {
			t.Fatal("expected Groceries item")
		}
		if groceries.HasAmount() {
			t.Error("expected blank amount to stay unset")
		}

		carLoan := c.FindItem(entity.ItemKey{Type: entity.ItemTypeRecurring, Category: entity.CategoryLoan, Label: "Car Loan"})
		if carLoan == nil {
			t.Fatal("expected Car Loan item")
		}
		if carLoan.PrincipalBalance == nil || !carLoan.PrincipalBalance.Equal(mustDecimal(t, "11200")) {
			t.Error("expected principal balance 11200 on debt item")
		}
		if carLoan.InterestRate == nil || !carLoan.InterestRate.Equal(mustDecimal(t, "6.4")) {
			t.Error("expected interest rate 6.4 on debt item")
		}
	})

	t.Run("should reject a second active cycle", func(t *testing.T) {
		cycleRepo := newFakeCycleRepository()
		seedCycle(cycleRepo, userID, start, end)

		uc := NewStartCycleUseCase(cycleRepo)
		_, err := uc.Execute(ctx, StartCycleInput{UserID: userID, StartDate: start, EndDate: end})
		if !errors.Is(err, domainerror.ErrActiveCycleExists) {
			t.Errorf("expected ErrActiveCycleExists, got %v", err)
		}
	})

	t.Run("should reject duplicate labels within a type", func(t *testing.T) {
		cycleRepo := newFakeCycleRepository()
		uc := NewStartCycleUseCase(cycleRepo)

		_, err := uc.Execute(ctx, StartCycleInput{
			UserID:    userID,
			StartDate: start,
			EndDate:   end,
			Items: []ItemSpec{
				{Label: "Rent", Type: entity.ItemTypeRecurring, Category: entity.CategoryHousing, Amount: "900"},
				{Label: "Rent", Type: entity.ItemTypeRecurring, Category: entity.CategoryOther, Amount: "100"},
			},
		})
		if !errors.Is(err, domainerror.ErrDuplicateItemLabel) {
			t.Errorf("expected ErrDuplicateItemLabel, got %v", err)
		}
	})

	t.Run("should allow the same label across types", func(t *testing.T) {
		cycleRepo := newFakeCycleRepository()
		uc := NewStartCycleUseCase(cycleRepo)

		_, err := uc.Execute(ctx, StartCycleInput{
			UserID:    userID,
			StartDate: start,
			EndDate:   end,
			Items: []ItemSpec{
				{Label: "Freelance", Type: entity.ItemTypeIncome, Amount: "400"},
				{Label: "Freelance", Type: entity.ItemTypeVariable, Category: entity.CategoryVariable, Amount: "50"},
			},
		})
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("should reject inverted dates", func(t *testing.T) {
		uc := NewStartCycleUseCase(newFakeCycleRepository())
		_, err := uc.Execute(ctx, StartCycleInput{UserID: userID, StartDate: end, EndDate: start})
		if !errors.Is(err, domainerror.ErrInvalidCycleDates) {
			t.Errorf("expected ErrInvalidCycleDates, got %v", err)
		}
	})
}
