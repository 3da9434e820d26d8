package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/domain/upgrade"
	apperrors "github.com/ledgerpos/ledgerpos/internal/shared/errors"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/utils"
)

type UpgradeHandler struct {
	coordinator upgradeCoordinator
	logger      logger.Interface
}

func NewUpgradeHandler(coordinator upgradeCoordinator, logger logger.Interface) *UpgradeHandler {
	return &UpgradeHandler{coordinator: coordinator, logger: logger}
}

type OpenUpgradeRequest struct {
	Reason       string   `json:"reason"`
	FeatureKey   string   `json:"feature_key"`
	RequiredPlan string   `json:"required_plan"`
	Title        string   `json:"title"`
	Message      string   `json:"message"`
	Highlights   []string `json:"highlights"`
}

type ConfirmUpgradeResponse struct {
	Destination string `json:"destination"`
	Navigated   bool   `json:"navigated"`
}

func (h *UpgradeHandler) GetState(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.coordinator.State())
}

func (h *UpgradeHandler) Open(c *gin.Context) {
	var req OpenUpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for open upgrade", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}

	args := upgrade.OpenArgs{
		Title:      req.Title,
		Message:    req.Message,
		Highlights: req.Highlights,
	}
	if req.Reason != "" {
		reason, err := upgrade.ParseReason(req.Reason)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
			return
		}
		args.Reason = reason
	}
	if req.FeatureKey != "" {
		feature, err := plan.ParseFeatureKey(req.FeatureKey)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
			return
		}
		args.FeatureKey = feature
	}
	if req.RequiredPlan != "" {
		required, err := plan.ParseName(req.RequiredPlan)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
			return
		}
		args.RequiredPlan = required
	}

	utils.SuccessResponse(c, http.StatusOK, "", h.coordinator.Open(args))
}

func (h *UpgradeHandler) Close(c *gin.Context) {
	h.coordinator.Close()
	utils.SuccessResponse(c, http.StatusOK, "", h.coordinator.State())
}

// Confirm is "Upgrade now". The prompt closes either way; when no UI stream
// took the navigation the client navigates to the returned destination.
func (h *UpgradeHandler) Confirm(c *gin.Context) {
	err := h.coordinator.UpgradeNow(c.Request.Context())
	utils.SuccessResponse(c, http.StatusOK, "", ConfirmUpgradeResponse{
		Destination: h.coordinator.Destination(),
		Navigated:   err == nil,
	})
}

// Dismiss is "Not now".
func (h *UpgradeHandler) Dismiss(c *gin.Context) {
	h.coordinator.NotNow()
	utils.SuccessResponse(c, http.StatusOK, "", h.coordinator.State())
}
