package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
)

// ListAccountsInput represents the input for listing linked accounts.
type ListAccountsInput struct {
	UserID uuid.UUID
}

// ListAccountsOutput represents the output of listing linked accounts.
type ListAccountsOutput struct {
	Accounts []*entity.Account
	// TotalBalance sums all linked balances.
	TotalBalance decimal.Decimal
}

// ListAccountsUseCase handles the linked accounts overview.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute lists the user's linked accounts with their combined balance.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}

	return &ListAccountsOutput{Accounts: accounts, TotalBalance: total}, nil
}
