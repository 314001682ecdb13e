package dto

import (
	"time"

	"github.com/check2check/backend/internal/domain/entity"
)

// LogTransactionRequest represents the request body for logging a ledger entry.
type LogTransactionRequest struct {
	Type         string  `json:"type" binding:"required,oneof=income expense goal"`
	Amount       string  `json:"amount" binding:"required"`
	CategoryName string  `json:"category_name" binding:"required,min=1,max=100"`
	TransactedAt *string `json:"transacted_at,omitempty"`
}

// TransactionResponse represents a single ledger entry in API responses.
type TransactionResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CycleID      string    `json:"cycle_id"`
	Type         string    `json:"type"`
	Amount       string    `json:"amount"`
	CategoryName string    `json:"category_name"`
	IsReversal   bool      `json:"is_reversal"`
	TransactedAt time.Time `json:"transacted_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing a cycle's ledger.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a Transaction entity to its response DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           txn.ID.String(),
		UserID:       txn.UserID.String(),
		CycleID:      txn.CycleID.String(),
		Type:         string(txn.Type),
		Amount:       txn.Amount.String(),
		CategoryName: txn.CategoryName,
		IsReversal:   txn.IsReversal,
		TransactedAt: txn.TransactedAt,
		CreatedAt:    txn.CreatedAt,
	}
}

// ToTransactionListResponse converts ledger entries to a list response.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{Transactions: responses}
}
