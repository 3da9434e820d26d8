package functions

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerpos/ledgerpos/internal/application/admin"
	"github.com/ledgerpos/ledgerpos/internal/application/admin/dto"
	"github.com/ledgerpos/ledgerpos/internal/application/admin/usecases"
	"github.com/ledgerpos/ledgerpos/internal/shared/constants"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

type checkSuperAdminUseCase interface {
	Execute(ctx context.Context, caller usecases.Caller) *dto.SuperAdminStatusDTO
}

type listSessionsUseCase interface {
	Execute(ctx context.Context, caller usecases.Caller) ([]*dto.SessionDTO, error)
}

type revokeSessionsUseCase interface {
	Execute(ctx context.Context, cmd usecases.RevokeSessionsCommand) (*dto.RevokeResultDTO, error)
}

type AdminFunctionHandler struct {
	checkUC  checkSuperAdminUseCase
	listUC   listSessionsUseCase
	revokeUC revokeSessionsUseCase
	logger   logger.Interface
}

func NewAdminFunctionHandler(
	checkUC checkSuperAdminUseCase,
	listUC listSessionsUseCase,
	revokeUC revokeSessionsUseCase,
	logger logger.Interface,
) *AdminFunctionHandler {
	return &AdminFunctionHandler{
		checkUC:  checkUC,
		listUC:   listUC,
		revokeUC: revokeUC,
		logger:   logger,
	}
}

type adminFunctionRequest struct {
	Action string `json:"action" binding:"required"`
	Params struct {
		UserID string `json:"user_id"`
	} `json:"params"`
}

// Handle dispatches POST /functions/v1/admin by action. The caller comes
// from the verified bearer token, never from the body.
func (h *AdminFunctionHandler) Handle(c *gin.Context) {
	caller := usecases.Caller{
		UserID:    c.GetString(constants.ContextKeyUserID),
		SessionID: c.GetString(constants.ContextKeySessionID),
	}

	var req adminFunctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	action, err := admin.ParseAction(req.Action)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Unknown action")
		return
	}

	ctx := c.Request.Context()
	switch action {
	case admin.ActionCheckSuperAdmin:
		c.JSON(http.StatusOK, h.checkUC.Execute(ctx, caller))

	case admin.ActionList:
		sessions, err := h.listUC.Execute(ctx, caller)
		if err != nil {
			respondAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessions": sessions})

	default:
		result, err := h.revokeUC.Execute(ctx, usecases.RevokeSessionsCommand{
			Caller:       caller,
			Action:       action,
			TargetUserID: req.Params.UserID,
		})
		if err != nil {
			respondAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
