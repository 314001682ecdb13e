// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/usecase/cycle"
	domainerror "github.com/check2check/backend/internal/domain/error"
	"github.com/check2check/backend/internal/integration/entrypoint/dto"
	"github.com/check2check/backend/internal/integration/entrypoint/middleware"
)

// CycleController handles budget cycle endpoints.
type CycleController struct {
	startUseCase         *cycle.StartCycleUseCase
	getActiveUseCase     *cycle.GetActiveCycleUseCase
	listCompletedUseCase *cycle.ListCompletedCyclesUseCase
	closeUseCase         *cycle.CloseCycleUseCase
	addItemUseCase       *cycle.AddItemUseCase
	updateItemUseCase    *cycle.UpdateItemUseCase
	removeItemUseCase    *cycle.RemoveItemUseCase
	settleItemUseCase    *cycle.SettleItemUseCase
	undoSettleUseCase    *cycle.UndoSettleUseCase
}

// NewCycleController creates a new cycle controller instance.
func NewCycleController(
	startUseCase *cycle.StartCycleUseCase,
	getActiveUseCase *cycle.GetActiveCycleUseCase,
	listCompletedUseCase *cycle.ListCompletedCyclesUseCase,
	closeUseCase *cycle.CloseCycleUseCase,
	addItemUseCase *cycle.AddItemUseCase,
	updateItemUseCase *cycle.UpdateItemUseCase,
	removeItemUseCase *cycle.RemoveItemUseCase,
	settleItemUseCase *cycle.SettleItemUseCase,
	undoSettleUseCase *cycle.UndoSettleUseCase,
) *CycleController {
	return &CycleController{
		startUseCase:         startUseCase,
		getActiveUseCase:     getActiveUseCase,
		listCompletedUseCase: listCompletedUseCase,
		closeUseCase:         closeUseCase,
		addItemUseCase:       addItemUseCase,
		updateItemUseCase:    updateItemUseCase,
		removeItemUseCase:    removeItemUseCase,
		settleItemUseCase:    settleItemUseCase,
		undoSettleUseCase:    undoSettleUseCase,
	}
}

// Start handles POST /cycles requests.
func (c *CycleController) Start(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.StartCycleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCycleFields),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidCycleDates),
		})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidCycleDates),
		})
		return
	}

	input := cycle.StartCycleInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Items:     make([]cycle.ItemSpec, len(req.Items)),
	}
	for i, itemReq := range req.Items {
		spec, err := itemReq.ToItemSpec()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid maturity date for item " + itemReq.Label + ", expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingItemFields),
			})
			return
		}
		input.Items[i] = spec
	}

	output, err := c.startUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCycleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCycleResponse(output.Cycle))
}

// GetActive handles GET /cycles/active requests.
func (c *CycleController) GetActive(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getActiveUseCase.Execute(ctx.Request.Context(), cycle.GetActiveCycleInput{
		UserID: userID,
	})
	if err != nil {
		c.handleCycleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActiveCycleResponse(output))
}

// ListCompleted handles GET /cycles/completed requests.
func (c *CycleController) ListCompleted(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listCompletedUseCase.Execute(ctx.Request.Context(), cycle.ListCompletedCyclesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve cycles",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCycleListResponse(output.Cycles))
}

// Close handles POST /cycles/:id/close requests.
func (c *CycleController) Close(ctx *gin.Context) {
	userID, cycleID, ok := c.userAndCycleID(ctx)
	if !ok {
		return
	}

	output, err := c.closeUseCase.Execute(ctx.Request.Context(), cycle.CloseCycleInput{
		UserID:  userID,
		CycleID: cycleID,
	})
	if err != nil {
		c.handleCycleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinalSummaryResponse(output.Summary))
}

// AddItem handles POST /cycles/:id/items requests.
func (c *CycleController) AddItem(ctx *gin.Context) {
	userID, cycleID, ok := c.userAndCycleID(ctx)
	if !ok {
		return
	}

	var req dto.ItemSpecRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingItemFields),
		})
		return
	}

	spec, err := req.ToItemSpec()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid maturity date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingItemFields),
		})
		return
	}

	output, err := c.addItemUseCase.Execute(ctx.Request.Context(), cycle.AddItemInput{
		UserID:  userID,
		CycleID: cycleID,
		Item:    spec,
	})
	if err != nil {
		c.handleCycleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetItemResponse(output.Item))
}

// UpdateItem handles PATCH /cycles/:id/items requests. The item is
// addressed by its natural key in the request body.
func (c *CycleController) UpdateItem(ctx *gin.Context) {
	userID, cycleID, ok := c.userAndCycleID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingItemFields),
		})
		return
	}

	output, err := c.updateItemUseCase.Execute(ctx.Request.Context(), cycle.UpdateItemInput{
		UserID:           userID,
		CycleID:          cycleID,
		Key:              req.Key.ToItemKey(),
		Amount:           req.Amount,
		DueDay:           req.DueDay,
		PrincipalBalance: req.PrincipalBalance,
		InterestRate:     req.InterestRate,
	})
	if err != nil {
		c.handleCycleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetItemResponse(output.Item))
}

// RemoveItem handles DELETE /cycles/:id/items requests.
func (c *CycleController) RemoveItem(ctx *gin.Context) {
	userID, cycleID, ok := c.userAndCycleID(ctx)
	if !ok {
		return
	}

	var req dto.ItemKeyBodyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingItemFields),
		})
		return
	}

	output, err := c.removeItemUseCase.Execute(ctx.Request.Context(), cycle.RemoveItemInput{
		UserID:  userID,
		CycleID: cycleID,
		Key:     req.Key.ToItemKey(),
	})
	if err != nil {
		c.handleCycleError(ctx, err)
		return
	}

	reversals := make([]dto.TransactionResponse, len(output.Reversals))
	for i, txn := range output.Reversals {
		reversals[i] = dto.ToTransactionResponse(txn)
	}
	ctx.JSON(http.StatusOK, dto.RemoveItemResponse{Reversals: reversals})
}

// SettleItem handles POST /cycles/:id/items/settle requests.
func (c *CycleController) SettleItem(ctx *gin.Context) {
	userID, cycleID, ok := c.userAndCycleID(ctx)
	if !ok {
		return
	}

	var req dto.ItemKeyBodyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingItemFields),
		})
		return
	}

	output, err := c.settleItemUseCase.Execute(ctx.Request.Context(), cycle.SettleItemInput{
		UserID:  userID,
		CycleID: cycleID,
		Key:     req.Key.ToItemKey(),
	})
	if err != nil {
		c.handleCycleError(ctx, err)
		return
	}

	response := dto.SettleItemResponse{Item: dto.ToBudgetItemResponse(output.Item)}
	if output.Transaction != nil {
		txn := dto.ToTransactionResponse(output.Transaction)
		response.Transaction = &txn
	}
	ctx.JSON(http.StatusOK, response)
}

// UndoSettle handles POST /cycles/:id/items/unsettle requests.
func (c *CycleController) UndoSettle(ctx *gin.Context) {
	userID, cycleID, ok := c.userAndCycleID(ctx)
	if !ok {
		return
	}

	var req dto.ItemKeyBodyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingItemFields),
		})
		return
	}

	output, err := c.undoSettleUseCase.Execute(ctx.Request.Context(), cycle.UndoSettleInput{
		UserID:  userID,
		CycleID: cycleID,
		Key:     req.Key.ToItemKey(),
	})
	if err != nil {
		c.handleCycleError(ctx, err)
		return
	}

	response := dto.SettleItemResponse{Item: dto.ToBudgetItemResponse(output.Item)}
	if output.Reversal != nil {
		txn := dto.ToTransactionResponse(output.Reversal)
		response.Transaction = &txn
	}
	ctx.JSON(http.StatusOK, response)
}

// userAndCycleID extracts the authenticated user and the :id URL param.
func (c *CycleController) userAndCycleID(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, uuid.Nil, false
	}

	cycleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid cycle ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, cycleID, true
}

// handleCycleError maps cycle and item errors to HTTP responses.
func (c *CycleController) handleCycleError(ctx *gin.Context, err error) {
	var cycleErr *domainerror.CycleError
	if errors.As(err, &cycleErr) {
		ctx.JSON(c.getStatusCodeForCycleError(cycleErr.Code), dto.ErrorResponse{
			Error: cycleErr.Message,
			Code:  string(cycleErr.Code),
		})
		return
	}

	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(c.getStatusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCycleError maps cycle error codes to HTTP status codes.
func (c *CycleController) getStatusCodeForCycleError(code domainerror.CycleErrorCode) int {
	switch code {
	case domainerror.ErrCodeCycleNotFound, domainerror.ErrCodeNoActiveCycle:
		return http.StatusNotFound
	case domainerror.ErrCodeActiveCycleExists,
		domainerror.ErrCodeCycleNotEnded,
		domainerror.ErrCodeCycleCompleted:
		return http.StatusConflict
	case domainerror.ErrCodeUnauthorizedCycle:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidCycleDates, domainerror.ErrCodeMissingCycleFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForBudgetError maps item error codes to HTTP status codes.
func (c *CycleController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateItemLabel,
		domainerror.ErrCodeItemAlreadySettled,
		domainerror.ErrCodeItemNotSettled:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidItemType,
		domainerror.ErrCodeInvalidDueDay,
		domainerror.ErrCodeMissingItemFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
