// Package account contains linked-account use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// LinkAccountInput represents the input for linking an account.
type LinkAccountInput struct {
	UserID      uuid.UUID
	Name        string
	Type        entity.AccountType
	Institution string
	Balance     string
}

// LinkAccountOutput represents the output of linking an account.
type LinkAccountOutput struct {
	Account *entity.Account
}

// LinkAccountUseCase handles linking a real-world account.
type LinkAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewLinkAccountUseCase creates a new LinkAccountUseCase instance.
func NewLinkAccountUseCase(accountRepo adapter.AccountRepository) *LinkAccountUseCase {
	return &LinkAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute validates the input and links the account.
func (uc *LinkAccountUseCase) Execute(ctx context.Context, input LinkAccountInput) (*LinkAccountOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeMissingAccountFields,
			"account name is required",
			nil,
		)
	}

	switch input.Type {
	case entity.AccountTypeChecking, entity.AccountTypeSavings:
	default:
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"type must be 'checking' or 'savings'",
			domainerror.ErrInvalidAccountType,
		)
	}

	balance := decimal.Zero
	if input.Balance != "" {
		parsed, err := decimal.NewFromString(input.Balance)
		if err != nil || parsed.IsNegative() {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeMissingAccountFields,
				fmt.Sprintf("balance %q must be a non-negative decimal", input.Balance),
				nil,
			)
		}
		balance = parsed
	}

	newAccount := entity.NewAccount(input.UserID, input.Name, input.Type, input.Institution, balance)
	if err := uc.accountRepo.Create(ctx, newAccount); err != nil {
		return nil, fmt.Errorf("failed to link account: %w", err)
	}

	return &LinkAccountOutput{Account: newAccount}, nil
}
