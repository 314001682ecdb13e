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

// TransferInput represents the input for moving money between accounts.
type TransferInput struct {
	UserID        uuid.UUID
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        string
}

// TransferOutput represents the output of a transfer.
type TransferOutput struct {
	From *entity.Account
	To   *entity.Account
}

// TransferUseCase handles moving money between two linked accounts, for
// example sweeping surplus from checking into savings at cycle close.
type TransferUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewTransferUseCase creates a new TransferUseCase instance.
func NewTransferUseCase(accountRepo adapter.AccountRepository) *TransferUseCase {
	return &TransferUseCase{
		accountRepo: accountRepo,
	}
}

// Execute validates and applies the transfer, persisting both balances
// atomically.
func (uc *TransferUseCase) Execute(ctx context.Context, input TransferInput) (*TransferOutput, error) {
	if input.FromAccountID == input.ToAccountID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeSameAccountTransfer,
			"cannot transfer an account into itself",
			domainerror.ErrSameAccountTransfer,
		)
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeMissingAccountFields,
			fmt.Sprintf("amount %q must be a positive decimal", input.Amount),
			nil,
		)
	}

	from, err := uc.loadOwnedAccount(ctx, input.FromAccountID, input.UserID)
	if err != nil {
		return nil, err
	}
	to, err := uc.loadOwnedAccount(ctx, input.ToAccountID, input.UserID)
	if err != nil {
		return nil, err
	}

	if amount.GreaterThan(from.Balance) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInsufficientFunds,
			fmt.Sprintf("account %q holds %s, cannot transfer %s", from.Name, from.Balance, amount),
			domainerror.ErrInsufficientFunds,
		)
	}

	from.Withdraw(amount)
	to.Deposit(amount)

	if err := uc.accountRepo.UpdatePair(ctx, from, to); err != nil {
		return nil, fmt.Errorf("failed to persist transfer: %w", err)
	}

	return &TransferOutput{From: from, To: to}, nil
}

func (uc *TransferUseCase) loadOwnedAccount(ctx context.Context, accountID, userID uuid.UUID) (*entity.Account, error) {
	a, err := uc.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if a.UserID != userID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeUnauthorizedAccount,
			"account does not belong to the authenticated user",
			domainerror.ErrUnauthorizedAccountAccess,
		)
	}
	return a, nil
}
