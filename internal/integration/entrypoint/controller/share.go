package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/usecase/share"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
	"github.com/check2check/backend/internal/integration/entrypoint/dto"
	"github.com/check2check/backend/internal/integration/entrypoint/middleware"
)

// ShareController handles shared budget endpoints.
type ShareController struct {
	inviteUseCase      *share.InviteMemberUseCase
	acceptUseCase      *share.AcceptInviteUseCase
	submitUseCase      *share.SubmitActionRequestUseCase
	reviewUseCase      *share.ReviewActionRequestUseCase
	listPendingUseCase *share.ListPendingRequestsUseCase
}

// NewShareController creates a new share controller instance.
func NewShareController(
	inviteUseCase *share.InviteMemberUseCase,
	acceptUseCase *share.AcceptInviteUseCase,
	submitUseCase *share.SubmitActionRequestUseCase,
	reviewUseCase *share.ReviewActionRequestUseCase,
	listPendingUseCase *share.ListPendingRequestsUseCase,
) *ShareController {
	return &ShareController{
		inviteUseCase:      inviteUseCase,
		acceptUseCase:      acceptUseCase,
		submitUseCase:      submitUseCase,
		reviewUseCase:      reviewUseCase,
		listPendingUseCase: listPendingUseCase,
	}
}

// Invite handles POST /share/invites requests.
func (c *ShareController) Invite(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.InviteMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingShareFields),
		})
		return
	}

	output, err := c.inviteUseCase.Execute(ctx.Request.Context(), share.InviteMemberInput{
		OwnerID: userID,
		Email:   req.Email,
	})
	if err != nil {
		c.handleShareError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInviteResponse(output.Invite))
}

// Accept handles POST /share/accept requests.
func (c *ShareController) Accept(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AcceptInviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingShareFields),
		})
		return
	}

	output, err := c.acceptUseCase.Execute(ctx.Request.Context(), share.AcceptInviteInput{
		MemberID: userID,
		Token:    req.Token,
	})
	if err != nil {
		c.handleShareError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShareResponse(output.Share))
}

// SubmitRequest handles POST /share/requests requests. Members propose
// edits to the owner's active cycle; the owner reviews them.
func (c *ShareController) SubmitRequest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SubmitActionRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingShareFields),
		})
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid owner ID format",
		})
		return
	}

	output, err := c.submitUseCase.Execute(ctx.Request.Context(), share.SubmitActionRequestInput{
		MemberID:  userID,
		OwnerID:   ownerID,
		Kind:      entity.ActionRequestKind(req.Kind),
		ItemType:  entity.BudgetItemType(req.ItemType),
		ItemLabel: req.ItemLabel,
		Payload:   req.Payload,
	})
	if err != nil {
		c.handleShareError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToActionRequestResponse(output.Request))
}

// ListPending handles GET /share/requests requests for the budget owner.
func (c *ShareController) ListPending(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listPendingUseCase.Execute(ctx.Request.Context(), share.ListPendingRequestsInput{
		OwnerID: userID,
	})
	if err != nil {
		c.handleShareError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActionRequestListResponse(output.Requests))
}

// ReviewRequest handles POST /share/requests/:id/review requests.
func (c *ShareController) ReviewRequest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	requestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request ID format",
		})
		return
	}

	var req dto.ReviewActionRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingShareFields),
		})
		return
	}

	output, err := c.reviewUseCase.Execute(ctx.Request.Context(), share.ReviewActionRequestInput{
		OwnerID:   userID,
		RequestID: requestID,
		Approve:   *req.Approve,
	})
	if err != nil {
		c.handleShareError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActionRequestResponse(output.Request))
}

// handleShareError maps sharing errors to HTTP responses.
func (c *ShareController) handleShareError(ctx *gin.Context, err error) {
	var shareErr *domainerror.ShareError
	if errors.As(err, &shareErr) {
		ctx.JSON(c.getStatusCodeForShareError(shareErr.Code), dto.ErrorResponse{
			Error: shareErr.Message,
			Code:  string(shareErr.Code),
		})
		return
	}

	var cycleErr *domainerror.CycleError
	if errors.As(err, &cycleErr) {
		statusCode := http.StatusInternalServerError
		if cycleErr.Code == domainerror.ErrCodeNoActiveCycle {
			statusCode = http.StatusNotFound
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

// getStatusCodeForShareError maps share error codes to HTTP status codes.
func (c *ShareController) getStatusCodeForShareError(code domainerror.ShareErrorCode) int {
	switch code {
	case domainerror.ErrCodeInviteNotFound, domainerror.ErrCodeActionRequestNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInviteExpired,
		domainerror.ErrCodeInviteAlreadyAccepted,
		domainerror.ErrCodeAlreadyMember,
		domainerror.ErrCodeActionRequestReviewed:
		return http.StatusConflict
	case domainerror.ErrCodeNotBudgetOwner, domainerror.ErrCodeNotBudgetMember:
		return http.StatusForbidden
	case domainerror.ErrCodeSelfInvite, domainerror.ErrCodeMissingShareFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
