package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/usecase/goal"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
	"github.com/check2check/backend/internal/integration/entrypoint/dto"
	"github.com/check2check/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles goal and payoff planning endpoints.
type GoalController struct {
	createUseCase     *goal.CreateGoalUseCase
	listUseCase       *goal.ListGoalsUseCase
	rankDebtsUseCase  *goal.RankDebtsUseCase
	logPaymentUseCase *goal.LogPaymentUseCase
	withdrawUseCase   *goal.WithdrawUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createUseCase *goal.CreateGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	rankDebtsUseCase *goal.RankDebtsUseCase,
	logPaymentUseCase *goal.LogPaymentUseCase,
	withdrawUseCase *goal.WithdrawUseCase,
) *GoalController {
	return &GoalController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		rankDebtsUseCase:  rankDebtsUseCase,
		logPaymentUseCase: logPaymentUseCase,
		withdrawUseCase:   withdrawUseCase,
	}
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:       userID,
		GoalType:     entity.GoalType(req.GoalType),
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		DebtLabel:    req.DebtLabel,
		Balance:      req.Balance,
		InterestRate: req.InterestRate,
		Strategy:     entity.PayoffStrategy(req.Strategy),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// List handles GET /goals requests. The active_only query excludes
// completed goals.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{
		UserID:     userID,
		ActiveOnly: ctx.Query("active_only") == "true",
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve goals",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// RankDebts handles GET /goals/payoff-plan requests. The strategy query
// selects the ordering; explain=true asks for a plain-language summary.
func (c *GoalController) RankDebts(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	strategy := entity.PayoffStrategy(ctx.DefaultQuery("strategy", string(entity.StrategyAvalanche)))

	output, err := c.rankDebtsUseCase.Execute(ctx.Request.Context(), goal.RankDebtsInput{
		UserID:   userID,
		Strategy: strategy,
		Explain:  ctx.Query("explain") == "true",
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayoffPlanResponse(strategy, output))
}

// LogPayment handles POST /goals/:id/payments requests.
func (c *GoalController) LogPayment(ctx *gin.Context) {
	userID, goalID, ok := c.userAndGoalID(ctx)
	if !ok {
		return
	}

	var req dto.LogPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.logPaymentUseCase.Execute(ctx.Request.Context(), goal.LogPaymentInput{
		UserID: userID,
		GoalID: goalID,
		Amount: req.Amount,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	response := dto.PaymentResponse{
		Goal:    dto.ToGoalResponse(output.Goal),
		Applied: output.Applied.String(),
	}
	if output.Transaction != nil {
		txn := dto.ToTransactionResponse(output.Transaction)
		response.Transaction = &txn
	}
	ctx.JSON(http.StatusOK, response)
}

// Withdraw handles POST /goals/:id/withdrawals requests.
func (c *GoalController) Withdraw(ctx *gin.Context) {
	userID, goalID, ok := c.userAndGoalID(ctx)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.withdrawUseCase.Execute(ctx.Request.Context(), goal.WithdrawInput{
		UserID: userID,
		GoalID: goalID,
		Amount: req.Amount,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	response := dto.WithdrawResponse{Goal: dto.ToGoalResponse(output.Goal)}
	if output.Transaction != nil {
		txn := dto.ToTransactionResponse(output.Transaction)
		response.Transaction = &txn
	}
	ctx.JSON(http.StatusOK, response)
}

// userAndGoalID extracts the authenticated user and the :id URL param.
func (c *GoalController) userAndGoalID(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, uuid.Nil, false
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, goalID, true
}

// handleGoalError maps goal errors to HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := http.StatusInternalServerError
		if budgetErr.Code == domainerror.ErrCodeInvalidAmount {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalAlreadyExists,
		domainerror.ErrCodeGoalCompleted,
		domainerror.ErrCodeInsufficientSavings:
		return http.StatusConflict
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidStrategy,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeNotSavingsGoal:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
