package dto

import (
	"time"

	"github.com/check2check/backend/internal/application/usecase/account"
	"github.com/check2check/backend/internal/domain/entity"
)

// LinkAccountRequest represents the request body for linking an account.
type LinkAccountRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Type        string `json:"type" binding:"required,oneof=checking savings"`
	Institution string `json:"institution,omitempty" binding:"omitempty,max=100"`
	Balance     string `json:"balance" binding:"required"`
}

// TransferRequest represents the request body for moving money between
// two linked accounts.
type TransferRequest struct {
	FromAccountID string `json:"from_account_id" binding:"required"`
	ToAccountID   string `json:"to_account_id" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
}

// AccountResponse represents a linked account in API responses.
type AccountResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Institution string    `json:"institution,omitempty"`
	Balance     string    `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing linked accounts.
type AccountListResponse struct {
	Accounts     []AccountResponse `json:"accounts"`
	TotalBalance string            `json:"total_balance"`
}

// TransferResponse represents the post-transfer state of both accounts.
type TransferResponse struct {
	From AccountResponse `json:"from"`
	To   AccountResponse `json:"to"`
}

// ToAccountResponse converts an Account entity to its response DTO.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Type:        string(a.Type),
		Institution: a.Institution,
		Balance:     a.Balance.String(),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToAccountListResponse converts a ListAccountsOutput to its response DTO.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	accounts := make([]AccountResponse, len(output.Accounts))
	for i, a := range output.Accounts {
		accounts[i] = ToAccountResponse(a)
	}
	return AccountListResponse{
		Accounts:     accounts,
		TotalBalance: output.TotalBalance.String(),
	}
}
