package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ledgerpos/ledgerpos/internal/application/featuregate"
	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
	"github.com/ledgerpos/ledgerpos/internal/domain/upgrade"
	apperrors "github.com/ledgerpos/ledgerpos/internal/shared/errors"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/utils"
)

type PlanHandler struct {
	access planAccess
	logger logger.Interface
}

func NewPlanHandler(access planAccess, logger logger.Interface) *PlanHandler {
	return &PlanHandler{access: access, logger: logger}
}

type AccessResponse struct {
	Plan           plan.Name         `json:"plan"`
	DisplayName    string            `json:"display_name"`
	Features       []plan.FeatureKey `json:"features"`
	Limits         plan.Limits       `json:"limits"`
	ComplianceMode bool              `json:"compliance_mode"`
}

func toAccessResponse(a *plan.Access) AccessResponse {
	return AccessResponse{
		Plan:           a.PlanName(),
		DisplayName:    a.DisplayName(),
		Features:       a.Features(),
		Limits:         a.Limits(),
		ComplianceMode: a.IsComplianceMode(),
	}
}

func (h *PlanHandler) GetAccess(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", toAccessResponse(h.access.Access(c.Request.Context())))
}

// RefreshAccess re-reads the subscription from the backend. On failure the
// previous access is kept and returned alongside the error message.
func (h *PlanHandler) RefreshAccess(c *gin.Context) {
	access, err := h.access.Refresh(c.Request.Context())
	if err != nil {
		h.logger.Warnw("plan refresh failed", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewUnavailableError("could not refresh plan", err.Error()))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "plan refreshed", toAccessResponse(access))
}

// GetGate evaluates a feature gate without side effects; the UI opens the
// prompt itself through the upgrade endpoints.
func (h *PlanHandler) GetGate(c *gin.Context) {
	feature, err := plan.ParseFeatureKey(c.Param("feature"))
	if err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	gate := featuregate.Gate{
		Feature:      feature,
		RequiredPlan: plan.Name(c.Query("required_plan")),
		Message:      c.Query("message"),
	}
	if gate.RequiredPlan != "" && !gate.RequiredPlan.IsValid() {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid required_plan"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gate.Evaluate(h.access.Access(c.Request.Context())))
}

type LimitCheckResponse struct {
	Key     plan.LimitKey  `json:"key"`
	Limit   *int           `json:"limit"`
	Current int            `json:"current"`
	Allowed bool           `json:"allowed"`
	Reason  upgrade.Reason `json:"reason,omitempty"`
}

// CheckLimit reports whether one more item fits under the plan cap. When it
// does not, Reason is what the UI passes to the upgrade prompt.
func (h *PlanHandler) CheckLimit(c *gin.Context) {
	key := plan.LimitKey(c.Param("key"))
	if !key.IsValid() {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("unknown limit: "+string(key)))
		return
	}

	current, err := strconv.Atoi(c.DefaultQuery("current", "0"))
	if err != nil || current < 0 {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("current must be a non-negative integer"))
		return
	}

	access := h.access.Access(c.Request.Context())
	resp := LimitCheckResponse{
		Key:     key,
		Current: current,
		Allowed: access.WithinLimit(key, current),
	}
	if limit, ok := access.Limit(key); ok {
		resp.Limit = &limit
	}
	if !resp.Allowed {
		resp.Reason = upgrade.ReasonLimit
		if key == plan.LimitDevices {
			resp.Reason = upgrade.ReasonDevices
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
