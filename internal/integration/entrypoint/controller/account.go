package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/usecase/account"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
	"github.com/check2check/backend/internal/integration/entrypoint/dto"
	"github.com/check2check/backend/internal/integration/entrypoint/middleware"
)

// AccountController handles linked account endpoints.
type AccountController struct {
	linkUseCase     *account.LinkAccountUseCase
	listUseCase     *account.ListAccountsUseCase
	transferUseCase *account.TransferUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	linkUseCase *account.LinkAccountUseCase,
	listUseCase *account.ListAccountsUseCase,
	transferUseCase *account.TransferUseCase,
) *AccountController {
	return &AccountController{
		linkUseCase:     linkUseCase,
		listUseCase:     listUseCase,
		transferUseCase: transferUseCase,
	}
}

// Link handles POST /accounts requests.
func (c *AccountController) Link(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.LinkAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAccountFields),
		})
		return
	}

	output, err := c.linkUseCase.Execute(ctx.Request.Context(), account.LinkAccountInput{
		UserID:      userID,
		Name:        req.Name,
		Type:        entity.AccountType(req.Type),
		Institution: req.Institution,
		Balance:     req.Balance,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve accounts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output))
}

// Transfer handles POST /accounts/transfers requests.
func (c *AccountController) Transfer(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.TransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAccountFields),
		})
		return
	}

	fromID, err := uuid.Parse(req.FromAccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid source account ID format",
		})
		return
	}
	toID, err := uuid.Parse(req.ToAccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid destination account ID format",
		})
		return
	}

	output, err := c.transferUseCase.Execute(ctx.Request.Context(), account.TransferInput{
		UserID:        userID,
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        req.Amount,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TransferResponse{
		From: dto.ToAccountResponse(output.From),
		To:   dto.ToAccountResponse(output.To),
	})
}

// handleAccountError maps account errors to HTTP responses.
func (c *AccountController) handleAccountError(ctx *gin.Context, err error) {
	var accountErr *domainerror.AccountError
	if errors.As(err, &accountErr) {
		ctx.JSON(c.getStatusCodeForAccountError(accountErr.Code), dto.ErrorResponse{
			Error: accountErr.Message,
			Code:  string(accountErr.Code),
		})
		return
	}

	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) && budgetErr.Code == domainerror.ErrCodeInvalidAmount {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAccountError maps account error codes to HTTP status codes.
func (c *AccountController) getStatusCodeForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInsufficientFunds:
		return http.StatusConflict
	case domainerror.ErrCodeUnauthorizedAccount:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidAccountType,
		domainerror.ErrCodeSameAccountTransfer,
		domainerror.ErrCodeMissingAccountFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
