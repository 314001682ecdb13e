package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/usecase/transaction"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
	"github.com/check2check/backend/internal/integration/entrypoint/dto"
	"github.com/check2check/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles ledger endpoints.
type TransactionController struct {
	logUseCase    *transaction.LogTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	removeUseCase *transaction.RemoveTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	logUseCase *transaction.LogTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	removeUseCase *transaction.RemoveTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		logUseCase:    logUseCase,
		listUseCase:   listUseCase,
		removeUseCase: removeUseCase,
	}
}

// Log handles POST /transactions requests. The entry attaches to the
// user's active cycle.
func (c *TransactionController) Log(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.LogTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input := transaction.LogTransactionInput{
		UserID:       userID,
		Type:         entity.TransactionType(req.Type),
		Amount:       req.Amount,
		CategoryName: req.CategoryName,
	}
	if req.TransactedAt != nil {
		transactedAt, err := time.Parse(time.RFC3339, *req.TransactedAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid transacted_at, expected RFC 3339",
				Code:  string(domainerror.ErrCodeMissingTransactionFields),
			})
			return
		}
		input.TransactedAt = &transactedAt
	}

	output, err := c.logUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /cycles/:id/transactions requests. An optional
// category query narrows the listing to one item or goal.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	cycleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid cycle ID format",
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID:       userID,
		CycleID:      cycleID,
		CategoryName: ctx.Query("category"),
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Remove handles DELETE /transactions/:id requests.
func (c *TransactionController) Remove(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	_, err = c.removeUseCase.Execute(ctx.Request.Context(), transaction.RemoveTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTransactionError maps ledger errors to HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var cycleErr *domainerror.CycleError
	if errors.As(err, &cycleErr) {
		statusCode := http.StatusInternalServerError
		switch cycleErr.Code {
		case domainerror.ErrCodeNoActiveCycle, domainerror.ErrCodeCycleNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeUnauthorizedCycle:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: cycleErr.Message,
			Code:  string(cycleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP
// status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTransactionImmutable:
		return http.StatusConflict
	case domainerror.ErrCodeNotAuthorizedToRemove:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
